package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Email           string  `validate:"required,email"`
	Password        string  `validate:"required,min=6"`
	ConfirmPassword string  `validate:"required,eqfield=Password"`
	Amount          float64 `validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleForm{
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Amount:          10,
	})
	assert.Empty(t, errs)
}

func TestValidateStructFailures(t *testing.T) {
	errs := ValidateStruct(sampleForm{
		Email:           "not-an-email",
		Password:        "abc",
		ConfirmPassword: "different",
		Amount:          0,
	})

	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Password")
	assert.Contains(t, errs, "ConfirmPassword")
	assert.Contains(t, errs, "Amount")
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", msg)

	assert.Empty(t, FormatValidationErrors(nil))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("30/08/2026")
	assert.Error(t, err)
}
