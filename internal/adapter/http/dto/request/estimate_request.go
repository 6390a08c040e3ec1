package request

import (
	"strings"
	"time"

	"estimate_engine/internal/usecase"
)

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		Description: strings.TrimSpace(r.Description),
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

type UpdateLineItemRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,gte=0"`
	UnitPrice   *float64 `json:"unit_price" binding:"omitempty,gte=0"`
}

func (r UpdateLineItemRequest) ToInput() usecase.UpdateLineItemInput {
	return usecase.UpdateLineItemInput{Description: r.Description, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}

type ReplaceItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"dive"`
}

func (r ReplaceItemsRequest) ToInput() []usecase.LineItemInput {
	return toItemInputs(r.Items)
}

type LeadRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Description string `json:"description"`
}

// CreateEstimateRequest is the admin payload for a new draft. client_name may be
// omitted when a lead supplies it.
type CreateEstimateRequest struct {
	ClientName     string            `json:"client_name"`
	ClientEmail    string            `json:"client_email"`
	ClientPhone    string            `json:"client_phone"`
	AddressLine1   string            `json:"address_line1"`
	AddressLine2   string            `json:"address_line2"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	PostalCode     string            `json:"postal_code"`
	ProjectType    string            `json:"project_type"`
	Notes          string            `json:"notes"`
	Terms          *string           `json:"terms"`
	TaxRate        *float64          `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	DiscountAmount float64           `json:"discount_amount" binding:"gte=0"`
	ValidUntil     *time.Time        `json:"valid_until"`
	Items          []LineItemRequest `json:"items" binding:"dive"`
	Lead           *LeadRequest      `json:"lead"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	in := usecase.CreateEstimateInput{
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		AddressLine1:   r.AddressLine1,
		AddressLine2:   r.AddressLine2,
		City:           r.City,
		State:          r.State,
		PostalCode:     r.PostalCode,
		ProjectType:    r.ProjectType,
		Notes:          r.Notes,
		Terms:          r.Terms,
		TaxRate:        r.TaxRate,
		DiscountAmount: r.DiscountAmount,
		ValidUntil:     r.ValidUntil,
		Items:          toItemInputs(r.Items),
	}
	if r.Lead != nil {
		in.Lead = &usecase.LeadPrefill{
			ClientName:  r.Lead.ClientName,
			ClientEmail: r.Lead.ClientEmail,
			ClientPhone: r.Lead.ClientPhone,
			Description: r.Lead.Description,
		}
	}
	return in
}

type UpdateDetailsRequest struct {
	ClientName   *string    `json:"client_name"`
	ClientEmail  *string    `json:"client_email"`
	ClientPhone  *string    `json:"client_phone"`
	AddressLine1 *string    `json:"address_line1"`
	AddressLine2 *string    `json:"address_line2"`
	City         *string    `json:"city"`
	State        *string    `json:"state"`
	PostalCode   *string    `json:"postal_code"`
	ProjectType  *string    `json:"project_type"`
	Notes        *string    `json:"notes"`
	Terms        *string    `json:"terms"`
	ValidUntil   *time.Time `json:"valid_until"`
}

func (r UpdateDetailsRequest) ToInput() usecase.UpdateDetailsInput {
	return usecase.UpdateDetailsInput{
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		ClientPhone:  r.ClientPhone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		ProjectType:  r.ProjectType,
		Notes:        r.Notes,
		Terms:        r.Terms,
		ValidUntil:   r.ValidUntil,
	}
}

type PricingRequest struct {
	TaxRate        *float64 `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	DiscountAmount *float64 `json:"discount_amount" binding:"omitempty,gte=0"`
}

func (r PricingRequest) ToInput() usecase.PricingInput {
	return usecase.PricingInput{TaxRate: r.TaxRate, DiscountAmount: r.DiscountAmount}
}

func toItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToInput())
	}
	return out
}
