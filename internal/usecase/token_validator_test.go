//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/pkg/jwt"
	"gear-rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("validator-secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)
	id := uuid.New()

	t.Run("returns identity and role", func(t *testing.T) {
		token, err := svc.GenerateToken(id, user.RoleOperator)
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleOperator, role)
	})

	t.Run("unknown role is an invalid token", func(t *testing.T) {
		token, err := svc.GenerateToken(id, user.Role("ghost"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, _, err := validator.ValidateToken("garbage")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
