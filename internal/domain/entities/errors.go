package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain and use case error wraps exactly one of them so the
// transport layer can classify failures with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrStateConflict  = errors.New("state conflict")
	ErrTenantMismatch = errors.New("tenant mismatch")
)

var (
	ErrMissingOrganizationID = fmt.Errorf("%w: organization_id is required", ErrValidation)
	ErrMissingClientName     = fmt.Errorf("%w: client_name is required", ErrValidation)
	ErrMissingItemDesc       = fmt.Errorf("%w: line item description is required", ErrValidation)
	ErrNegativeQuantity      = fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	ErrNegativeUnitPrice     = fmt.Errorf("%w: unit_price must be >= 0", ErrValidation)
	ErrInvalidTaxRate        = fmt.Errorf("%w: tax_rate must be between 0 and 100", ErrValidation)
	ErrNegativeDiscount      = fmt.Errorf("%w: discount_amount must be >= 0", ErrValidation)
	ErrNegativeTotal         = fmt.Errorf("%w: total_amount must not be negative", ErrValidation)

	ErrInvalidPaymentAmount  = fmt.Errorf("%w: payment amount must be > 0", ErrValidation)
	ErrInvalidPaymentMethod  = fmt.Errorf("%w: unsupported payment method", ErrValidation)
	ErrPaymentExceedsBalance = fmt.Errorf("%w: payment exceeds balance due", ErrValidation)

	// ErrAlreadyApproved is benign: callers report the current state as success.
	ErrAlreadyApproved   = fmt.Errorf("%w: estimate already approved", ErrStateConflict)
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrStateConflict)
)
