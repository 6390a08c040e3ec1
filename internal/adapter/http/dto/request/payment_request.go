package request

import (
	"strings"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"
)

// AppendPaymentRequest records money received. Amount and method rules are
// enforced by the ledger so that every rejection carries the same error kind.
type AppendPaymentRequest struct {
	Amount         float64    `json:"amount"`
	PaymentMethod  string     `json:"payment_method" binding:"required"`
	Reference      string     `json:"reference"`
	PaymentDate    *time.Time `json:"payment_date"`
	OrganizationID string     `json:"organization_id"`
}

func (r AppendPaymentRequest) ToInput() usecase.AppendPaymentInput {
	return usecase.AppendPaymentInput{
		Amount:         r.Amount,
		Method:         entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		Reference:      r.Reference,
		PaymentDate:    r.PaymentDate,
		OrganizationID: r.OrganizationID,
	}
}
