package request

import (
	"testing"
	"time"

	"estimate_engine/internal/domain/entities"
)

func TestCreateEstimateRequest_ToInput(t *testing.T) {
	rate := 10.0
	req := CreateEstimateRequest{
		ClientName:     "Dana",
		TaxRate:        &rate,
		DiscountAmount: 20,
		Items: []LineItemRequest{
			{Description: "  Deck boards ", Quantity: 2, UnitPrice: 100},
		},
		Lead: &LeadRequest{Description: "Backyard deck"},
	}

	in := req.ToInput()
	if in.ClientName != "Dana" || in.TaxRate == nil || *in.TaxRate != 10 || in.DiscountAmount != 20 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || in.Items[0].Description != "Deck boards" || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if in.Lead == nil || in.Lead.Description != "Backyard deck" {
		t.Fatalf("unexpected lead: %+v", in.Lead)
	}
}

func TestCreateEstimateRequest_NoLead(t *testing.T) {
	in := CreateEstimateRequest{ClientName: "Dana"}.ToInput()
	if in.Lead != nil || in.Items == nil || len(in.Items) != 0 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAppendPaymentRequest_ToInput(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	in := AppendPaymentRequest{Amount: 150, PaymentMethod: " Bank_Transfer ", PaymentDate: &at}.ToInput()

	if in.Method != entities.PaymentMethodBankTransfer || in.Amount != 150 || !in.PaymentDate.Equal(at) {
		t.Fatalf("unexpected input: %+v", in)
	}
}
