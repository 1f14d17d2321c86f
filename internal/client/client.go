// Package client submits the contact form to the site's contact endpoint the
// same way the browser script does: validate locally, post once, report the outcome.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	SuccessMessage = "Message sent successfully!"
	FailureMessage = "Failed to send message. Please try again."
)

var ErrSubmitInProgress = errors.New("client: a submission is already in progress")

// Form holds the raw field values and the message shown next to each invalid field.
type Form struct {
	Name    string
	Email   string
	Message string

	Errors map[string]string
}

// Reset clears the fields and any field errors.
func (f *Form) Reset() {
	f.Name, f.Email, f.Message = "", "", ""
	f.Errors = nil
}

func (f *Form) request() *domain.ContactRequest {
	return &domain.ContactRequest{Name: f.Name, Email: f.Email, Message: f.Message}
}

// Notifier surfaces the outcome of a submission to the user.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

type Client struct {
	endpoint   string
	http       *http.Client
	validate   *validation.Validator
	notifier   Notifier
	submitting atomic.Bool
}

func New(endpoint string, notifier Notifier, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		validate: validation.NewContact(),
		notifier: notifier,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submitting reports whether an attempt is awaiting the endpoint.
func (c *Client) Submitting() bool {
	return c.submitting.Load()
}

// Validate records the first failing rule against its field. It returns nil when the form is valid.
func (c *Client) Validate(form *Form) error {
	form.Errors = nil

	err := c.validate.First(form.request())
	if err == nil {
		return nil
	}

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		form.Errors = map[string]string{fieldErr.Field: fieldErr.Message}
	}
	return err
}

// Submit validates form and, if valid, posts it once. An invalid form is never sent and the
// returned error is the *validation.FieldError. Endpoint and transport failures are reported
// through the Notifier only, and leave the form untouched.
func (c *Client) Submit(ctx context.Context, form *Form) error {
	if err := c.Validate(form); err != nil {
		return err
	}

	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer c.submitting.Store(false)

	if err := c.post(ctx, form.request()); err != nil {
		logger.Log.Warn("Contact submission failed", "endpoint", c.endpoint, "error", err)
		c.notifier.Failure(failureMessage(err))
		return nil
	}

	form.Reset()
	c.notifier.Success(SuccessMessage)
	return nil
}

// endpointError is a non-success response from the contact endpoint.
type endpointError struct {
	Status  int
	Message string
}

func (e *endpointError) Error() string {
	return fmt.Sprintf("contact endpoint returned %d: %s", e.Status, e.Message)
}

func (c *Client) post(ctx context.Context, req *domain.ContactRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp struct {
		Error string `json:"error"`
	}
	// body may not be JSON, e.g. from a proxy
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	return &endpointError{Status: resp.StatusCode, Message: errResp.Error}
}

func failureMessage(err error) string {
	var epErr *endpointError
	if errors.As(err, &epErr) && epErr.Message != "" {
		return epErr.Message
	}
	return FailureMessage
}
