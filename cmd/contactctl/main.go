package main

import (
	"context"
	"errors"
	"fmt"
	"go-portfolio-backend/internal/client"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var form client.Form

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "Submit messages to the portfolio contact form",
	Long: `contactctl validates and submits contact form messages from the command line,
applying the same field rules as the web page.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger.Init(logger.Options{Level: level})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate form fields without sending",
	Long: `Validate the fields against the contact form rules and print the first failing rule.

Example:
  contactctl check --name Al --email al@x.com --message "Hello there friend"`,
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New("", &printNotifier{})
		if err := c.Validate(&form); err != nil {
			printFieldErrors(err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Validate and send a contact message",
	Long: `Validate the fields and post them once to the contact endpoint.

Example:
  contactctl send --endpoint http://localhost:8080/api/contact \
    --name Al --email al@x.com --message "Hello there friend"`,
	Run: func(cmd *cobra.Command, args []string) {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		notifier := &printNotifier{}
		if err := client.New(endpoint, notifier).Submit(ctx, &form); err != nil {
			printFieldErrors(err)
			os.Exit(1)
		}
		if notifier.failed {
			os.Exit(1)
		}
	},
}

type printNotifier struct {
	failed bool
}

func (n *printNotifier) Success(message string) {
	fmt.Println(message)
}

func (n *printNotifier) Failure(message string) {
	n.failed = true
	fmt.Fprintln(os.Stderr, message)
}

func printFieldErrors(err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", fieldErr.Field, fieldErr.Message)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	for _, cmd := range []*cobra.Command{checkCmd, sendCmd} {
		cmd.Flags().StringVar(&form.Name, "name", "", "Sender name")
		cmd.Flags().StringVar(&form.Email, "email", "", "Sender email address")
		cmd.Flags().StringVar(&form.Message, "message", "", "Message body")
	}

	sendCmd.Flags().String("endpoint", "http://localhost:8080/api/contact", "Contact endpoint URL")
	sendCmd.Flags().Duration("timeout", 30*time.Second, "Give up waiting for the endpoint after this long")

	rootCmd.AddCommand(checkCmd, sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
