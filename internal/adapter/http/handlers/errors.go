package handlers

import (
	"errors"
	"net/http"
	"strings"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderOrganizationID carries the caller's tenant on admin routes. Session
// handling lives in front of this service.
const HeaderOrganizationID = "X-Organization-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errLinkInvalid    = pkg.NewDomainErrorSimple("LINK_INVALID", "This link is invalid or has expired", http.StatusNotFound)
)

// mapError classifies admin-facing failures by error kind. Validation details
// are safe to echo to an authenticated admin.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return errInvalidPayload.WithDetails(err.Error())
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound).WithDetails(err.Error())
	case errors.Is(err, entities.ErrTenantMismatch):
		return pkg.NewDomainErrorSimple("TENANT_MISMATCH", "Resource belongs to another organization", http.StatusForbidden)
	case errors.Is(err, entities.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Operation not allowed in the current state", http.StatusConflict).WithDetails(err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapPublicError never distinguishes unknown from invalid tokens and never
// echoes internal messages.
func mapPublicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return errLinkInvalid
	case errors.Is(err, entities.ErrStateConflict):
		return pkg.NewDomainErrorSimple("NOT_APPROVABLE", "This estimate can no longer be approved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func organizationID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderOrganizationID))
}
