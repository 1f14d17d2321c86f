package email

import (
	"context"
	"errors"
	"strings"
)

// ErrNotConfigured is returned by senders that lack provider credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// Message is a fully prepared plain-text email.
type Message struct {
	From    string
	To      []string
	Subject string
	ReplyTo string
	Text    string
}

// Sender delivers prepared messages through a transactional email provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	IsConfigured() bool
}

// ProviderError is a send the provider rejected or failed. Message is the provider's own text.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ContactEmailData holds the fields of a contact form submission.
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// ContactBody renders the plain-text body sent to the site owner.
func ContactBody(data ContactEmailData) string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(data.SenderName)
	b.WriteString("\nEmail: ")
	b.WriteString(data.SenderEmail)
	b.WriteString("\n\nMessage:\n")
	b.WriteString(data.Message)
	return b.String()
}
