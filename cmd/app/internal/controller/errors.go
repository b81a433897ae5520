package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esg-maturity-backend/internal/service"
	"esg-maturity-backend/utilities"
)

// statusFor maps service errors to HTTP statuses. Anything unknown is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAssessmentFinalized), errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrEmptyPassword):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utilities.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requester builds the service requester from the token claims.
func requester(c *gin.Context) (service.Requester, bool) {
	uid, ok := utilities.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return service.Requester{}, false
	}
	return service.Requester{UserID: uid, Role: c.GetString(utilities.ContextRole)}, true
}
