package response

import (
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"
)

type PaymentResponse struct {
	ID             string    `json:"id"`
	EstimateID     string    `json:"estimate_id"`
	OrganizationID string    `json:"organization_id"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"payment_method"`
	Reference      string    `json:"reference,omitempty"`
	PaymentDate    time.Time `json:"payment_date"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		EstimateID:     p.EstimateID,
		OrganizationID: p.OrganizationID,
		Amount:         round2(p.Amount),
		PaymentMethod:  string(p.Method),
		Reference:      p.Reference,
		PaymentDate:    p.PaymentDate,
		CreatedAt:      p.CreatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

type LedgerResponse struct {
	Payment  PaymentResponse  `json:"payment"`
	Estimate EstimateResponse `json:"estimate"`
}

func FromLedgerResult(r usecase.LedgerResult, publicBaseURL string) LedgerResponse {
	return LedgerResponse{Payment: FromPayment(r.Payment), Estimate: FromEstimate(r.Estimate, publicBaseURL)}
}
