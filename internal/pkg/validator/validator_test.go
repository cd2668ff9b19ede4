package validator

import (
	"testing"

	"github.com/pattaya-dashboard/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Hour *int `query:"hour" validate:"omitempty,min=0,max=23"`
}

func TestValidate(t *testing.T) {
	ok := 5
	assert.NoError(t, Validate(&sample{Hour: &ok}))
	assert.NoError(t, Validate(&sample{}))

	bad := 24
	err := Validate(&sample{Hour: &bad})
	require.Error(t, err)

	appErr, isApp := err.(*errors.AppError)
	require.True(t, isApp)
	assert.Equal(t, "INVALID_QUERY", appErr.Code)
	assert.Equal(t, "max=23", appErr.Details["hour"])
}
