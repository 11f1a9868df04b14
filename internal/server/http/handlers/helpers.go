package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	pkgAuth "github.com/polkiloo/tareffa/internal/pkg/auth"
	"github.com/polkiloo/tareffa/internal/server/http/middleware"
)

// CurrentIdentity extracts authenticated identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	identity, _ := middleware.Identity(c)
	return identity
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidOrder),
		errors.Is(err, domainErrors.ErrInvalidServiceType),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidComment),
		errors.Is(err, domainErrors.ErrInvalidAttachment):
		return http.StatusBadRequest
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatus(statusFor(err))
}
