package entities

import "strings"

// Totals is the output of ComputeTotals.
type Totals struct {
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

// ComputeTotals derives subtotal, tax and grand total. It normalizes every item's
// TotalPrice in place before summing, so callers always get a consistent set back.
// No rounding is applied.
func ComputeTotals(items []LineItem, taxRatePercent, discountAmount float64) Totals {
	var subtotal float64
	for i := range items {
		items[i].normalize()
		subtotal += items[i].TotalPrice
	}
	tax := subtotal * taxRatePercent / 100
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal + tax - discountAmount,
	}
}

// Recalculate refreshes the derived pricing fields and re-derives the balance
// against the amount already paid. Payment status and the payment overlay are
// left to ApplyPaymentSummary.
func (e *Estimate) Recalculate() {
	t := ComputeTotals(e.Items, e.TaxRate, e.DiscountAmount)
	e.Subtotal = t.Subtotal
	e.TaxAmount = t.TaxAmount
	e.TotalAmount = t.TotalAmount
	e.BalanceDue = e.TotalAmount - e.AmountPaid
}

// Validate checks the fields an admin can edit. It runs before any write.
func (e *Estimate) Validate() error {
	if strings.TrimSpace(e.OrganizationID) == "" {
		return ErrMissingOrganizationID
	}
	if strings.TrimSpace(e.ClientName) == "" {
		return ErrMissingClientName
	}
	if e.TaxRate < 0 || e.TaxRate > 100 {
		return ErrInvalidTaxRate
	}
	if e.DiscountAmount < 0 {
		return ErrNegativeDiscount
	}
	for _, it := range e.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	if e.TotalAmount < 0 {
		return ErrNegativeTotal
	}
	return nil
}

func (it LineItem) Validate() error {
	if strings.TrimSpace(it.Description) == "" {
		return ErrMissingItemDesc
	}
	if it.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if it.UnitPrice < 0 {
		return ErrNegativeUnitPrice
	}
	return nil
}
