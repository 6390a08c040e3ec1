package response

import (
	"math"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type EstimateResponse struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organization_id"`
	ClientName     string             `json:"client_name"`
	ClientEmail    string             `json:"client_email"`
	ClientPhone    string             `json:"client_phone"`
	AddressLine1   string             `json:"address_line1"`
	AddressLine2   string             `json:"address_line2"`
	City           string             `json:"city"`
	State          string             `json:"state"`
	PostalCode     string             `json:"postal_code"`
	ProjectType    string             `json:"project_type"`
	Status         string             `json:"status"`
	Items          []LineItemResponse `json:"items"`
	Subtotal       float64            `json:"subtotal"`
	TaxRate        float64            `json:"tax_rate"`
	TaxAmount      float64            `json:"tax_amount"`
	DiscountAmount float64            `json:"discount_amount"`
	TotalAmount    float64            `json:"total_amount"`
	AmountPaid     float64            `json:"amount_paid"`
	BalanceDue     float64            `json:"balance_due"`
	PaymentStatus  string             `json:"payment_status"`
	Notes          string             `json:"notes"`
	Terms          string             `json:"terms"`
	PublicToken    string             `json:"public_token"`
	PublicURL      string             `json:"public_url"`
	ValidUntil     *time.Time         `json:"valid_until,omitempty"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Version        int64              `json:"version"`
}

// PublicURL is the client-facing link for a token.
func PublicURL(baseURL, token string) string {
	return baseURL + "/e/" + token
}

func FromEstimate(e entities.Estimate, publicBaseURL string) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		ClientName:     e.ClientName,
		ClientEmail:    e.ClientEmail,
		ClientPhone:    e.ClientPhone,
		AddressLine1:   e.AddressLine1,
		AddressLine2:   e.AddressLine2,
		City:           e.City,
		State:          e.State,
		PostalCode:     e.PostalCode,
		ProjectType:    e.ProjectType,
		Status:         string(e.Status),
		Items:          fromItems(e.Items),
		Subtotal:       round2(e.Subtotal),
		TaxRate:        e.TaxRate,
		TaxAmount:      round2(e.TaxAmount),
		DiscountAmount: round2(e.DiscountAmount),
		TotalAmount:    round2(e.TotalAmount),
		AmountPaid:     round2(e.AmountPaid),
		BalanceDue:     round2(e.BalanceDue),
		PaymentStatus:  string(e.PaymentStatus),
		Notes:          e.Notes,
		Terms:          e.Terms,
		PublicToken:    e.PublicToken,
		PublicURL:      PublicURL(publicBaseURL, e.PublicToken),
		ValidUntil:     e.ValidUntil,
		SentAt:         e.SentAt,
		ApprovedAt:     e.ApprovedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		Version:        e.Version,
	}
}

func FromEstimates(list []entities.Estimate, publicBaseURL string) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e, publicBaseURL))
	}
	return out
}

// PublicEstimateResponse is what the public link renders.
type PublicEstimateResponse struct {
	ClientName     string             `json:"client_name"`
	ClientEmail    string             `json:"client_email"`
	ClientPhone    string             `json:"client_phone"`
	AddressLine1   string             `json:"address_line1"`
	AddressLine2   string             `json:"address_line2"`
	City           string             `json:"city"`
	State          string             `json:"state"`
	PostalCode     string             `json:"postal_code"`
	ProjectType    string             `json:"project_type"`
	Status         string             `json:"status"`
	Items          []LineItemResponse `json:"items"`
	Subtotal       float64            `json:"subtotal"`
	TaxRate        float64            `json:"tax_rate"`
	TaxAmount      float64            `json:"tax_amount"`
	DiscountAmount float64            `json:"discount_amount"`
	TotalAmount    float64            `json:"total_amount"`
	AmountPaid     float64            `json:"amount_paid"`
	BalanceDue     float64            `json:"balance_due"`
	PaymentStatus  string             `json:"payment_status"`
	Terms          string             `json:"terms"`
	ValidUntil     *time.Time         `json:"valid_until,omitempty"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func FromPublicView(v usecase.PublicEstimateView) PublicEstimateResponse {
	return PublicEstimateResponse{
		ClientName:     v.ClientName,
		ClientEmail:    v.ClientEmail,
		ClientPhone:    v.ClientPhone,
		AddressLine1:   v.AddressLine1,
		AddressLine2:   v.AddressLine2,
		City:           v.City,
		State:          v.State,
		PostalCode:     v.PostalCode,
		ProjectType:    v.ProjectType,
		Status:         string(v.Status),
		Items:          fromItems(v.Items),
		Subtotal:       round2(v.Subtotal),
		TaxRate:        v.TaxRate,
		TaxAmount:      round2(v.TaxAmount),
		DiscountAmount: round2(v.DiscountAmount),
		TotalAmount:    round2(v.TotalAmount),
		AmountPaid:     round2(v.AmountPaid),
		BalanceDue:     round2(v.BalanceDue),
		PaymentStatus:  string(v.PaymentStatus),
		Terms:          v.Terms,
		ValidUntil:     v.ValidUntil,
		SentAt:         v.SentAt,
		ApprovedAt:     v.ApprovedAt,
		CreatedAt:      v.CreatedAt,
	}
}

type ApprovalResponse struct {
	Estimate        PublicEstimateResponse `json:"estimate"`
	AlreadyApproved bool                   `json:"already_approved"`
}

func FromApproval(r usecase.ApprovalResult) ApprovalResponse {
	return ApprovalResponse{Estimate: FromPublicView(r.View), AlreadyApproved: r.AlreadyApproved}
}

func fromItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   round2(it.UnitPrice),
			TotalPrice:  round2(it.TotalPrice),
		})
	}
	return out
}

// round2 is display rounding only; stored values keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
