package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message" validate:"min=10"`
}

func TestFirst(t *testing.T) {
	v := NewContact()

	tests := []struct {
		name    string
		form    contactForm
		wantMsg string
		field   string
	}{
		{
			name: "valid",
			form: contactForm{Name: "Al", Email: "al@x.com", Message: "Hello there friend"},
		},
		{
			name:    "short name",
			form:    contactForm{Name: "A", Email: "al@x.com", Message: "Hello there friend"},
			wantMsg: "Name must be at least 2 characters",
			field:   "name",
		},
		{
			name:    "empty name",
			form:    contactForm{Email: "al@x.com", Message: "Hello there friend"},
			wantMsg: "Name must be at least 2 characters",
			field:   "name",
		},
		{
			name:    "bad email",
			form:    contactForm{Name: "Al", Email: "al-at-x.com", Message: "Hello there friend"},
			wantMsg: "Invalid email address",
			field:   "email",
		},
		{
			name:    "empty email",
			form:    contactForm{Name: "Al", Message: "Hello there friend"},
			wantMsg: "Invalid email address",
			field:   "email",
		},
		{
			name:    "short message",
			form:    contactForm{Name: "Al", Email: "al@x.com", Message: "Hi"},
			wantMsg: "Message must be at least 10 characters",
			field:   "message",
		},
		{
			name:    "name reported before email and message",
			form:    contactForm{Name: "A", Email: "nope", Message: "short"},
			wantMsg: "Name must be at least 2 characters",
			field:   "name",
		},
		{
			name:    "email reported before message",
			form:    contactForm{Name: "Al", Email: "nope", Message: "short"},
			wantMsg: "Invalid email address",
			field:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.First(tt.form)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantMsg, fe.Message)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestFirstCountsRunes(t *testing.T) {
	v := NewContact()

	// two runes, four bytes
	err := v.First(contactForm{Name: "Зо", Email: "al@x.com", Message: strings.Repeat("ü", 10)})
	assert.NoError(t, err)

	err = v.First(contactForm{Name: "Al", Email: "al@x.com", Message: strings.Repeat("ü", 9)})
	assert.EqualError(t, err, "Message must be at least 10 characters")
}

func TestFields(t *testing.T) {
	v := NewContact()

	fields, err := v.Fields(contactForm{Name: "A", Email: "bad", Message: "Hello there friend"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":  "Name must be at least 2 characters",
		"email": "Invalid email address",
	}, fields)

	fields, err = v.Fields(contactForm{Name: "Al", Email: "al@x.com", Message: "Hello there friend"})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFallbackMessages(t *testing.T) {
	type profile struct {
		DisplayName string `json:"displayName" validate:"required"`
		Bio         string `json:"bio" validate:"max=5"`
	}

	v := New()
	fields, err := v.Fields(profile{Bio: "far too long"})
	require.NoError(t, err)
	assert.Equal(t, "Display Name is required", fields["displayName"])
	assert.Equal(t, "Bio must be at most 5 characters", fields["bio"])
}

func TestNonStructInput(t *testing.T) {
	err := NewContact().First("not a struct")
	require.Error(t, err)

	var fe *FieldError
	assert.NotErrorAs(t, err, &fe)
}

func TestRule(t *testing.T) {
	assert.Equal(t, 2, ContactRules[0].MinLength())
	assert.Equal(t, "min=2", ContactRules[0].TagString())
	assert.Equal(t, 0, ContactRules[1].MinLength())
	assert.Equal(t, "email", ContactRules[1].TagString())
	assert.Equal(t, 10, ContactRules[2].MinLength())
}
