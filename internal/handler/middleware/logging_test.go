//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := middleware.NewAuthMiddleware(stubValidator{role: user.RoleOperator})

	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.RequestLogger(logger), middleware.ErrorHandler())
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/silent", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/rentals/:id", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	return line
}

func TestRequestLogger(t *testing.T) {
	t.Run("success: logs the route and the authenticated staff member", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/rentals/"+id, nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		line := decodeLine(t, &buf)
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, "/api/rentals/:id", line["route"])
		assert.Equal(t, "/api/rentals/"+id, line["path"])
		assert.Equal(t, "operator", line["role"])
		assert.NotEmpty(t, line["user_id"])
		assert.Equal(t, w.Header().Get("X-Request-ID"), line["request_id"])
	})

	t.Run("success: a UUID request id from the client is kept", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		rid := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", rid)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.Equal(t, rid, w.Header().Get("X-Request-ID"))
		line := decodeLine(t, &buf)
		assert.Equal(t, "DEBUG", line["level"])
		assert.Equal(t, "/health", line["route"])
	})

	t.Run("success: a free-form request id is replaced", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "<script>")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("error: unauthenticated requests log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rentals/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		line := decodeLine(t, &buf)
		assert.Equal(t, "WARN", line["level"])
		assert.Nil(t, line["user_id"])
	})
}

func TestErrorHandler_HandlerWroteNothing(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/silent", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	line := decodeLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
}

func TestCustomRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
