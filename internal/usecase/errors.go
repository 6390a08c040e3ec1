package usecase

import (
	"fmt"

	"estimate_engine/internal/domain/entities"
)

var (
	ErrEstimateNotFound      = fmt.Errorf("%w: estimate not found", entities.ErrNotFound)
	ErrLineItemNotFound      = fmt.Errorf("%w: line item not found", entities.ErrNotFound)
	ErrPaymentNotFound       = fmt.Errorf("%w: payment not found", entities.ErrNotFound)
	ErrInvalidEstimateID     = fmt.Errorf("%w: invalid estimate id", entities.ErrValidation)
	ErrInvalidOrganizationID = fmt.Errorf("%w: invalid organization id", entities.ErrValidation)
	ErrInvalidPaymentID      = fmt.Errorf("%w: invalid payment id", entities.ErrValidation)
	ErrEstimateOtherTenant   = fmt.Errorf("%w: estimate belongs to another organization", entities.ErrTenantMismatch)
	ErrPaymentOtherTenant    = fmt.Errorf("%w: payment organization does not match estimate", entities.ErrTenantMismatch)
	ErrTokenGeneration       = fmt.Errorf("%w: could not allocate a unique public token", entities.ErrStateConflict)
	ErrRendererNotConfigured = fmt.Errorf("document renderer not configured")
)
