//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/pkg/config"
	"gear-rental/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token the server configured with cfg accepts. A
// negative lifetime yields a token that expired that long ago, past the
// validation leeway when it exceeds a minute.
func IssueToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role, lifetime time.Duration) string {
	t.Helper()
	token, err := jwt.NewService(cfg.Secret, lifetime).GenerateToken(userID, role)
	require.NoError(t, err, "issue token")
	return token
}

// SessionToken issues a token with the configured session length.
func SessionToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()
	lifetime, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err, "JWT duration %q", cfg.Duration)
	return IssueToken(t, cfg, userID, role, lifetime)
}
