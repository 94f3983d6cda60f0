package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"pasta", "chicken-curry", "30-minute-meals", "a", "b2"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "Pasta", "chicken curry", "-pasta", "pasta-", "double--hyphen", "café"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chicken Curry", "chicken-curry"},
		{"  30 Minute Meals  ", "30-minute-meals"},
		{"Crème Brûlée!", "cr-me-br-l-e"},
		{"already-a-slug", "already-a-slug"},
		{"___", ""},
	}
	for _, tt := range tests {
		got := Slugify(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if got != "" {
			assert.True(t, IsValidSlug(got))
		}
	}
}

func TestSlugRule(t *testing.T) {
	InitValidator()

	type payload struct {
		Slug string `validate:"required,slug"`
	}

	require.NoError(t, Validate.Struct(payload{Slug: "chicken-curry"}))
	assert.Error(t, Validate.Struct(payload{Slug: "Chicken Curry"}))
	assert.Error(t, Validate.Struct(payload{Slug: ""}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	type payload struct {
		Title string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := Validate.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "is required", fields["Title"])
	assert.Equal(t, "must be a valid email address", fields["Email"])
}

func TestFormatValidationErrorNested(t *testing.T) {
	InitValidator()

	type step struct {
		Description string `validate:"required"`
	}
	type payload struct {
		Steps []step `validate:"dive"`
	}

	err := Validate.Struct(payload{Steps: []step{{Description: "chop"}, {}}})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "is required", fields["Steps[1].Description"])
}
