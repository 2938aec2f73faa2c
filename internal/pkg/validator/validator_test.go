package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("budi@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@sub.domain.co.id"))

	assert.False(t, IsValidEmail("budi@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("budi example.com"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
}

func TestIsValidChatID(t *testing.T) {
	assert.True(t, IsValidChatID("123456789"))
	assert.True(t, IsValidChatID("-100123456789")) // group chat

	assert.False(t, IsValidChatID("abc"))
	assert.False(t, IsValidChatID("12-34"))
	assert.False(t, IsValidChatID(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "must be a valid email"},
		{Field: "password", Message: "is required"},
	}

	assert.Equal(t, "email: must be a valid email; password: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email",
		"password": "is required",
	}, errs.ToMap())
}
