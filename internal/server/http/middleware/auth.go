package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/foodstall/internal/pkg/auth"
	"github.com/polkiloo/foodstall/internal/server/http/dto"
)

const (
	// StaffContextKey is a gin context key for the authenticated staff subject.
	StaffContextKey = "staff"
	authCookieName  = "foodstall_staff_token"
)

// TokenParser validates staff tokens.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// StaffRequired ensures the request carries a valid staff token.
func StaffRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "staff login required"})
			return
		}

		subject, err := parser.ParseToken(token)
		switch {
		case errors.Is(err, pkgAuth.ErrInvalidToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "staff token expired or invalid"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
			return
		}

		c.Set(StaffContextKey, subject)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie hands the staff token back both as a session cookie for the
// kitchen screen and as a header for API clients.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
