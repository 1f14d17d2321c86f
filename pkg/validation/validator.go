package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is the first rule a value broke, with the message shown to the user.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Validator wraps a validator instance that reports JSON field names and rule messages.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

// New builds a Validator whose messages come from the given rule tables.
func New(tables ...[]Rule) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	messages := make(map[string]string)
	for _, rules := range tables {
		for _, r := range rules {
			messages[messageKey(r.Field, r.Tag)] = r.Message
		}
	}

	return &Validator{validate: v, messages: messages}
}

// NewContact returns a Validator loaded with ContactRules.
func NewContact() *Validator {
	return New(ContactRules)
}

// First validates s and returns the first violated rule in field order, or nil.
func (v *Validator) First(s any) error {
	errs, err := v.fieldErrors(s)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// Fields validates s and returns the first message per failing field, keyed by JSON name.
func (v *Validator) Fields(s any) (map[string]string, error) {
	errs, err := v.fieldErrors(s)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out, nil
}

func (v *Validator) fieldErrors(s any) ([]*FieldError, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validation: %w", err)
	}

	out := make([]*FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, &FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: v.message(e),
		})
	}
	return out, nil
}

func (v *Validator) message(e validator.FieldError) string {
	if msg, ok := v.messages[messageKey(e.Field(), e.Tag())]; ok {
		return msg
	}

	label := formatLabel(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "email":
		return "Invalid email address"
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func messageKey(field, tag string) string {
	return field + "." + tag
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// formatLabel turns "message" or "replyTo" into "Message" / "Reply To".
func formatLabel(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 {
			result.WriteString(strings.ToUpper(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
