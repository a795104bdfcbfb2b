package usecase

import (
	"gear-rental/internal/domain/user"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token into the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateToken rejects a well-signed token whose role this build no longer
// knows, so a renamed role cannot keep old sessions alive.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(jwt.ErrInvalidToken, "token role %q", claims.Role)
	}
	return claims.UserID, role, nil
}
