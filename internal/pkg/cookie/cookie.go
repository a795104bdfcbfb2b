package cookie

import (
	"net/http"
	"strings"
	"time"

	"gear-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the staff token in an HttpOnly cookie that expires with the token.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	http.SetCookie(c.Writer, accessCookie(cfg, accessToken, int(expiry.Seconds()), time.Now().Add(expiry)))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, accessCookie(cfg, "", -1, time.Unix(0, 0)))
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func accessCookie(cfg config.CookieConfig, value string, maxAge int, expires time.Time) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	// browsers drop SameSite=None cookies that are not Secure
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Expires:  expires.UTC(),
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
