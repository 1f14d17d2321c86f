package usecase

import (
	"context"
	"errors"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/validation"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var errNoRecipient = errors.New("contact recipient is not configured")

type contactUsecase struct {
	sender   email.Sender
	validate *validation.Validator
	settings domain.ContactSettings
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validation.Validator, settings domain.ContactSettings) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		settings: settings,
	}
}

func (uc *contactUsecase) CheckConfigured() error {
	if !uc.sender.IsConfigured() {
		return apperror.Config(email.ErrNotConfigured)
	}
	if uc.settings.To == "" {
		return apperror.Config(errNoRecipient)
	}
	return nil
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.CheckConfigured(); err != nil {
		metrics.RecordContactSubmission(metrics.OutcomeConfigError)
		logger.Log.Error("Contact email delivery is not configured", "error", errors.Unwrap(err))
		return err
	}

	if err := uc.validate.First(req); err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			metrics.RecordContactSubmission(metrics.OutcomeInvalid)
			return apperror.Validation(fieldErr.Message)
		}
		return apperror.Internal(err)
	}

	msg := &email.Message{
		From:    uc.settings.From,
		To:      []string{uc.settings.To},
		Subject: uc.settings.Subject,
		ReplyTo: req.Email,
		Text: email.ContactBody(email.ContactEmailData{
			SenderName:  req.Name,
			SenderEmail: req.Email,
			Message:     req.Message,
		}),
	}

	ctx, span := otel.Tracer("go-portfolio-backend/usecase").Start(ctx, "email.send")
	defer span.End()

	start := time.Now()
	err := uc.sender.Send(ctx, msg)
	metrics.ObserveEmailSend(time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		metrics.RecordContactSubmission(metrics.OutcomeDeliveryError)
		logger.Log.Error("Failed to send contact email", "error", err)
		return deliveryError(err)
	}

	metrics.RecordContactSubmission(metrics.OutcomeSent)
	logger.Log.Info("Contact email sent")
	return nil
}

func deliveryError(err error) error {
	if errors.Is(err, email.ErrNotConfigured) {
		return apperror.Config(err)
	}

	var providerErr *email.ProviderError
	if errors.As(err, &providerErr) {
		return apperror.Delivery(providerErr.Message, err)
	}
	return apperror.Delivery(err.Error(), err)
}
