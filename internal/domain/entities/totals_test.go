package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals_Scenario(t *testing.T) {
	items := []LineItem{NewLineItem("i1", "Gutter cleaning", 2, 100)}

	got := ComputeTotals(items, 10, 20)

	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 20.0, got.TaxAmount)
	assert.Equal(t, 200.0, got.TotalAmount)
}

func TestComputeTotals_NormalizesItemTotals(t *testing.T) {
	items := []LineItem{
		{ID: "a", Description: "Labor", Quantity: 3, UnitPrice: 40, TotalPrice: 999},
		{ID: "b", Description: "Materials", Quantity: 0.5, UnitPrice: 12, TotalPrice: 0},
	}

	got := ComputeTotals(items, 0, 0)

	assert.Equal(t, 120.0, items[0].TotalPrice)
	assert.Equal(t, 6.0, items[1].TotalPrice)
	assert.Equal(t, 126.0, got.Subtotal)
	assert.Equal(t, 126.0, got.TotalAmount)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	base := []LineItem{
		NewLineItem("a", "Roof inspection", 1, 150),
		NewLineItem("b", "Shingles", 24, 3.25),
		NewLineItem("c", "Flashing", 4, 17.5),
	}
	reversed := []LineItem{base[2], base[0], base[1]}

	assert.InDelta(t, ComputeTotals(base, 8.25, 0).Subtotal, ComputeTotals(reversed, 8.25, 0).Subtotal, 1e-9)

	withoutB := []LineItem{base[0], base[2]}
	assert.InDelta(t, 220.0, ComputeTotals(withoutB, 0, 0).Subtotal, 1e-9)
}

func TestComputeTotals_TotalIdentity(t *testing.T) {
	items := []LineItem{NewLineItem("a", "Paint", 3, 33.33), NewLineItem("b", "Primer", 1, 19.99)}
	for _, rate := range []float64{0, 5, 7.75, 100} {
		for _, discount := range []float64{0, 1.5, 50} {
			got := ComputeTotals(items, rate, discount)
			assert.InDelta(t, got.Subtotal+got.TaxAmount-discount, got.TotalAmount, 1e-9)
		}
	}
}

func TestLineItemSetters(t *testing.T) {
	it := NewLineItem("a", "Fence panel", 2, 50)
	require.Equal(t, 100.0, it.TotalPrice)

	it.SetQuantity(3)
	assert.Equal(t, 150.0, it.TotalPrice)

	it.SetUnitPrice(10)
	assert.Equal(t, 30.0, it.TotalPrice)
}

func TestEstimateRecalculate_KeepsBalanceInSync(t *testing.T) {
	e := Estimate{TaxRate: 10, DiscountAmount: 20, AmountPaid: 50, Items: []LineItem{NewLineItem("a", "Deck", 2, 100)}}

	e.Recalculate()

	assert.Equal(t, 200.0, e.TotalAmount)
	assert.Equal(t, 150.0, e.BalanceDue)
}

func TestEstimateValidate(t *testing.T) {
	valid := func() Estimate {
		return Estimate{OrganizationID: "org-1", ClientName: "Jane", TaxRate: 5, Items: []LineItem{NewLineItem("a", "Work", 1, 10)}}
	}

	cases := []struct {
		name   string
		mutate func(e *Estimate)
		want   error
	}{
		{"ok", func(e *Estimate) {}, nil},
		{"missing org", func(e *Estimate) { e.OrganizationID = " " }, ErrMissingOrganizationID},
		{"missing client", func(e *Estimate) { e.ClientName = "" }, ErrMissingClientName},
		{"tax rate above 100", func(e *Estimate) { e.TaxRate = 101 }, ErrInvalidTaxRate},
		{"negative discount", func(e *Estimate) { e.DiscountAmount = -1 }, ErrNegativeDiscount},
		{"empty description", func(e *Estimate) { e.Items[0].Description = "" }, ErrMissingItemDesc},
		{"negative quantity", func(e *Estimate) { e.Items[0].Quantity = -1 }, ErrNegativeQuantity},
		{"negative price", func(e *Estimate) { e.Items[0].UnitPrice = -1 }, ErrNegativeUnitPrice},
		{"negative total", func(e *Estimate) { e.DiscountAmount = 100; e.Recalculate() }, ErrNegativeTotal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid()
			e.Recalculate()
			tc.mutate(&e)
			err := e.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestEstimateClone_IsDeep(t *testing.T) {
	e := Estimate{Items: []LineItem{NewLineItem("a", "Work", 1, 10)}}
	c := e.Clone()
	c.Items[0].Description = "changed"

	assert.Equal(t, "Work", e.Items[0].Description)
	assert.Equal(t, -1, e.Item("missing"))
	assert.Equal(t, 0, e.Item("a"))
}
