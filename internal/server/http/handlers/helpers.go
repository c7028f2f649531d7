package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/server/http/dto"
	"github.com/polkiloo/foodstall/internal/server/http/middleware"
	"github.com/polkiloo/foodstall/internal/session"
)

// CurrentSession extracts the customer session attached by middleware.
func CurrentSession(c *gin.Context) *session.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*session.Session)
	return sess
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidPrice),
		errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInvalidDineOption),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidPaymentMethod),
		errors.Is(err, domainErrors.ErrInvalidOrderID):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrUnknownMenuItem), errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrDuplicateOrderID),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func requireSession(c *gin.Context) (*session.Session, bool) {
	sess := CurrentSession(c)
	if sess == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}
