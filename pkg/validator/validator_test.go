package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contains=@"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(customerForm{Name: "Jane Doe", Email: "jane@example.com"})
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(customerForm{Email: "jane@example.com"})

	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "Name")
	assert.Contains(t, vErr.Error(), "is required")
}

func TestValidate_ContainsTag(t *testing.T) {
	err := Validate(customerForm{Name: "Jane Doe", Email: "not-an-email"})

	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "Email")
	assert.Contains(t, vErr.Error(), `must contain "@"`)
}

func TestValidationError_Fields(t *testing.T) {
	err := Validate(customerForm{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := vErr.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "is required", fields["Email"])
}
