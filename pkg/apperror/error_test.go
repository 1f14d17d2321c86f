package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name    string
		err     *AppError
		code    int
		kind    Kind
		message string
	}{
		{"bad request", BadRequest("Invalid request body"), http.StatusBadRequest, KindBadRequest, "Invalid request body"},
		{"validation", Validation("Invalid email address"), http.StatusBadRequest, KindValidation, "Invalid email address"},
		{"config", Config(cause), http.StatusInternalServerError, KindConfig, "Server configuration error"},
		{"delivery", Delivery("domain is not verified", cause), http.StatusInternalServerError, KindDelivery, "domain is not verified"},
		{"delivery without message", Delivery("", cause), http.StatusInternalServerError, KindDelivery, "Failed to send message"},
		{"internal", Internal(cause), http.StatusInternalServerError, KindInternal, "Failed to send message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("missing key")
	wrapped := fmt.Errorf("submit: %w", Config(cause))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, KindConfig, appErr.Kind)
	assert.ErrorIs(t, wrapped, cause)
}
