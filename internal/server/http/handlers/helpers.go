package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/server/http/middleware"
)

// CurrentParticipantID extracts authenticated participant identifier from context.
func CurrentParticipantID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.ParticipantIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// writeDomainError maps ledger errors onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNoValue), errors.Is(err, domainErrors.ErrInvalidAmount):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrOrderNotFound), errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrNotAdministrator), errors.Is(err, domainErrors.ErrNotYourOrder):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrAlreadyDelivered), errors.Is(err, domainErrors.ErrDriverNotAssigned):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrClaimTooEarly):
		c.Status(http.StatusTooEarly)
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		c.Status(http.StatusPaymentRequired)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
