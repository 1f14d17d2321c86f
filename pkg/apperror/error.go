package apperror

import "net/http"

// Kind classifies an AppError for logging and metrics.
type Kind string

const (
	KindBadRequest Kind = "bad_request"
	KindValidation Kind = "validation"
	KindConfig     Kind = "config"
	KindDelivery   Kind = "delivery"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

// Validation reports a rule the submitted fields violated. The message is shown to the user as is.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Config(err error) *AppError {
	return New(http.StatusInternalServerError, KindConfig, "Server configuration error", err)
}

// Delivery carries the email provider's message back to the caller.
func Delivery(message string, err error) *AppError {
	if message == "" {
		message = "Failed to send message"
	}
	return New(http.StatusInternalServerError, KindDelivery, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Failed to send message", err)
}
