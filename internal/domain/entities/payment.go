package entities

import (
	"math"
	"time"
)

// PaymentMethod is the fixed set of accepted payment instruments.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// Payment is an append-only ledger row applied against an estimate.
//
// Storage model (DynamoDB):
//   - PK: estimate_id, SK: id
//   - GSI (id-index): id
type Payment struct {
	ID             string        `json:"id"`
	EstimateID     string        `json:"estimate_id"`
	OrganizationID string        `json:"organization_id"`
	Amount         float64       `json:"amount"`
	Method         PaymentMethod `json:"payment_method"`
	Reference      string        `json:"reference,omitempty"`
	PaymentDate    time.Time     `json:"payment_date"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (p Payment) Validate() error {
	if p.Amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if !p.Method.Valid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// balanceTolerance absorbs float noise when payments add up to the exact total.
const balanceTolerance = 1e-9

// PaymentSummary is the projection of the full payment history onto an estimate.
type PaymentSummary struct {
	AmountPaid    float64
	BalanceDue    float64
	PaymentStatus PaymentStatus
}

// SummarizePayments rebuilds the summary from every recorded payment against the
// given (current) total. It never trusts a previously stored AmountPaid.
func SummarizePayments(totalAmount float64, payments []Payment) PaymentSummary {
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	balance := balanceDue(totalAmount, paid)
	return PaymentSummary{
		AmountPaid:    paid,
		BalanceDue:    balance,
		PaymentStatus: classify(balance, paid),
	}
}

// ApplyPaymentSummary writes the summary and the main status override. The payment
// axis wins once money has moved; ApprovedAt is never cleared.
func (e *Estimate) ApplyPaymentSummary(s PaymentSummary) {
	e.AmountPaid = s.AmountPaid
	e.BalanceDue = s.BalanceDue
	e.PaymentStatus = s.PaymentStatus
	switch {
	case s.BalanceDue <= balanceTolerance:
		e.Status = EstimateStatusPaid
	case s.AmountPaid > 0:
		e.Status = EstimateStatusPartiallyPaid
	}
}

// RefreshPaymentOverlay re-derives payment fields after a pricing edit. Estimates
// with no money recorded keep their approval-axis status.
func (e *Estimate) RefreshPaymentOverlay() {
	balance := balanceDue(e.TotalAmount, e.AmountPaid)
	if e.AmountPaid <= 0 {
		e.BalanceDue = balance
		return
	}
	e.ApplyPaymentSummary(PaymentSummary{
		AmountPaid:    e.AmountPaid,
		BalanceDue:    balance,
		PaymentStatus: classify(balance, e.AmountPaid),
	})
}

// AcceptsPayment rejects non-positive amounts and amounts beyond the balance due.
func (e *Estimate) AcceptsPayment(amount float64) error {
	if amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if e.AmountPaid+amount > e.TotalAmount+balanceTolerance {
		return ErrPaymentExceedsBalance
	}
	return nil
}

// balanceDue snaps float residue inside the tolerance to an exact zero.
func balanceDue(total, paid float64) float64 {
	b := total - paid
	if math.Abs(b) <= balanceTolerance {
		return 0
	}
	return b
}

func classify(balance, paid float64) PaymentStatus {
	switch {
	case balance <= balanceTolerance:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusUnpaid
	}
}
