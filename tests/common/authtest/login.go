//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"gear-rental/internal/handler/dto/request"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/cookie"
	"gear-rental/tests/common/dbtest"
	"gear-rental/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// LoginUser signs in through the API and returns the session cookie value.
func LoginUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "login set no session cookie")
	require.NotEmpty(t, session.Value, "session cookie is empty")
	return session.Value
}

// CreateAndLogin seeds a staff user with the fixture password and signs in.
func CreateAndLogin(t *testing.T, db dbq.DBTX, router http.Handler, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router http.Handler, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, "", httptest.WithCookies(cookies...))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
