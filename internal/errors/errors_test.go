package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("invalid request", ValidationDetail{
		Field:   "limit",
		Message: "limit must be positive",
	})

	assert.Equal(t, "invalid request", err.Error())
	assert.Len(t, err.Details, 1)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ve)
}

func TestIsValidationError_OtherError(t *testing.T) {
	_, ok := IsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("state XX not found")

	assert.Equal(t, "state XX not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, err, nfe)
}

func TestEmptyResultError(t *testing.T) {
	err := NewEmptyResultError("no rows after filtering")

	assert.Equal(t, "no rows after filtering", err.Error())

	ere, ok := IsEmptyResultError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ere)

	_, ok = IsEmptyResultError(errors.New("boom"))
	assert.False(t, ok)
}

func TestInternalError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := NewInternalError("loading dataset", cause)

	assert.Equal(t, "loading dataset: disk on fire", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_NoCause(t *testing.T) {
	err := NewInternalError("loading dataset", nil)
	assert.Equal(t, "loading dataset", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
