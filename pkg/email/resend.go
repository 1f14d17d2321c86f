package email

import (
	"context"
	"strings"

	"github.com/resend/resend-go/v3"

	"go-portfolio-backend/pkg/logger"
)

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		apiKey: apiKey,
	}
}

func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	resp, err := s.client.Emails.SendWithContext(ctx, buildSendRequest(msg))
	if err != nil {
		return &ProviderError{
			Provider: "resend",
			Message:  providerMessage(err),
			Err:      err,
		}
	}

	logger.Log.Debug("Resend accepted email", "email_id", resp.Id)
	return nil
}

func buildSendRequest(msg *Message) *resend.SendEmailRequest {
	return &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		ReplyTo: msg.ReplyTo,
		Text:    msg.Text,
	}
}

// providerMessage strips the client's "[ERROR]: " decoration from API error text.
func providerMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	msg = strings.TrimPrefix(msg, "[ERROR]:")
	return strings.TrimSpace(msg)
}
