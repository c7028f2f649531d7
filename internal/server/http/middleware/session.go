package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodstall/internal/session"
)

const (
	// SessionContextKey is a gin context key for the customer session.
	SessionContextKey = "session"
	// SessionCookieName carries the session id between requests.
	SessionCookieName = "foodstall_session"
)

// SessionLoader resolves or starts a customer session.
type SessionLoader interface {
	Session(ctx context.Context, id, table string) (*session.Session, error)
}

// SessionRequired attaches the customer session to the request. The optional
// table query parameter binds the session to a table, as scanned from the
// table QR code.
func SessionRequired(loader SessionLoader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookieName)

		sess, err := loader.Session(c.Request.Context(), id, c.Query("table"))
		if err != nil {
			logger.Error("session load failed", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if sess.ID != id {
			c.SetCookie(SessionCookieName, sess.ID, 0, "/", "", false, true)
		}
		c.Set(SessionContextKey, sess)
		c.Next()
	}
}
