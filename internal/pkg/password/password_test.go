//go:build unit

package password_test

import (
	"testing"

	"gear-rental/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	tests := []struct {
		name  string
		hash  string
		input string
		errIs error
	}{
		{name: "success: matching password", hash: hash, input: "password123"},
		{name: "error: wrong password", hash: hash, input: "password124", errIs: password.ErrComparisonFailed},
		{name: "error: empty input", hash: hash, input: "", errIs: password.ErrInvalidPassword},
		{name: "error: empty hash", hash: "", input: "password123", errIs: password.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.ComparePassword(tt.hash, tt.input)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestCompareUnknown(t *testing.T) {
	assert.ErrorIs(t, password.CompareUnknown("password123"), password.ErrComparisonFailed)
}
