package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (quote sent to a client).
//
// Domain notes:
//   - Draft, Sent, Viewed, Approved, Rejected and Expired form the approval axis.
//   - Paid and Partially_Paid are the payment overlay; once money moves it takes
//     display precedence over the approval axis.
type EstimateStatus string

const (
	EstimateStatusDraft         EstimateStatus = "draft"
	EstimateStatusSent          EstimateStatus = "sent"
	EstimateStatusViewed        EstimateStatus = "viewed"
	EstimateStatusApproved      EstimateStatus = "approved"
	EstimateStatusRejected      EstimateStatus = "rejected"
	EstimateStatusExpired       EstimateStatus = "expired"
	EstimateStatusPaid          EstimateStatus = "paid"
	EstimateStatusPartiallyPaid EstimateStatus = "partially_paid"
)

// PaymentStatus is the payment-progress classification of an estimate.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
)

// LineItem is one billable row of an estimate.
//
// TotalPrice is derived from Quantity and UnitPrice. Use SetQuantity/SetUnitPrice
// or Estimate.Recalculate to keep it consistent.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// NewLineItem builds a line item with its total already computed.
func NewLineItem(id, description string, quantity, unitPrice float64) LineItem {
	it := LineItem{ID: id, Description: description, Quantity: quantity, UnitPrice: unitPrice}
	it.normalize()
	return it
}

func (it *LineItem) SetQuantity(q float64) {
	it.Quantity = q
	it.normalize()
}

func (it *LineItem) SetUnitPrice(p float64) {
	it.UnitPrice = p
	it.normalize()
}

func (it *LineItem) normalize() {
	it.TotalPrice = it.Quantity * it.UnitPrice
}

// Estimate is the aggregate persisted by the estimate service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (public_token-index): public_token
//   - GSI2 (organization_id-index): organization_id
//
// Monetary representation:
//   - Amounts are float64 at full precision. Rounding to cents is a presentation concern.
//   - Subtotal, TaxAmount, TotalAmount, AmountPaid and BalanceDue are derived; TaxRate and
//     DiscountAmount are the only free pricing inputs.
//
// Version is an optimistic concurrency counter bumped on every persisted mutation.
type Estimate struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`

	ClientName   string `json:"client_name"`
	ClientEmail  string `json:"client_email"`
	ClientPhone  string `json:"client_phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ProjectType  string `json:"project_type"`

	Status EstimateStatus `json:"status"`
	Items  []LineItem     `json:"items"`

	Subtotal       float64 `json:"subtotal"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`

	AmountPaid    float64       `json:"amount_paid"`
	BalanceDue    float64       `json:"balance_due"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	PublicToken string `json:"public_token"`
	Notes       string `json:"notes"`
	Terms       string `json:"terms"`

	ValidUntil *time.Time `json:"valid_until,omitempty"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Version int64 `json:"version"`
}

// Item returns the index of the line item with the given id, or -1.
func (e *Estimate) Item(id string) int {
	for i := range e.Items {
		if e.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so callers can mutate items and timestamps freely.
func (e Estimate) Clone() Estimate {
	out := e
	if e.Items != nil {
		out.Items = make([]LineItem, len(e.Items))
		copy(out.Items, e.Items)
	}
	out.ValidUntil = cloneTime(e.ValidUntil)
	out.SentAt = cloneTime(e.SentAt)
	out.ApprovedAt = cloneTime(e.ApprovedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
