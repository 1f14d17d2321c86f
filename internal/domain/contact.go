package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message" validate:"min=10"`
}

// ContactSettings holds the fixed envelope of every contact email
type ContactSettings struct {
	From    string
	To      string
	Subject string
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// CheckConfigured fails with a configuration error when delivery cannot be attempted
	CheckConfigured() error
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
