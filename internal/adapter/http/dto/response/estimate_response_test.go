package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		OrganizationID: "org-1",
		ClientName:     "Dana",
		Status:         entities.EstimateStatusSent,
		Items:          []entities.LineItem{entities.NewLineItem("i1", "Paint", 3, 33.333)},
		TaxRate:        8.25,
		PublicToken:    "tok",
		CreatedAt:      now,
		Version:        2,
	}
	e.Recalculate()

	res := FromEstimate(e, "https://estimates.example.com")
	if res.PublicURL != "https://estimates.example.com/e/tok" {
		t.Fatalf("unexpected public url: %s", res.PublicURL)
	}
	if res.Subtotal != 100 || res.TaxAmount != 8.25 || res.TotalAmount != 108.25 {
		t.Fatalf("unexpected rounded totals: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].UnitPrice != 33.33 || res.Items[0].TotalPrice != 100 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Status != "sent" || res.Version != 2 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromPublicView_OmitsInternalFields(t *testing.T) {
	e := entities.Estimate{ID: "est-1", OrganizationID: "org-1", ClientName: "Dana", Notes: "margin 40%", PublicToken: "tok", Version: 3}

	body, err := json.Marshal(FromApproval(usecase.ApprovalResult{View: usecase.NewPublicEstimateView(e), AlreadyApproved: true}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(body)
	for _, leaked := range []string{"notes", "organization_id", "version", "margin 40%", "public_token", "est-1"} {
		if strings.Contains(s, leaked) {
			t.Fatalf("public body leaks %q: %s", leaked, s)
		}
	}
	if !strings.Contains(s, `"already_approved":true`) {
		t.Fatalf("missing already_approved: %s", s)
	}
}

func TestFromLedgerResult(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	res := FromLedgerResult(usecase.LedgerResult{
		Payment:  entities.Payment{ID: "p1", EstimateID: "est-1", Amount: 150, Method: entities.PaymentMethodCash, PaymentDate: at},
		Estimate: entities.Estimate{ID: "est-1", AmountPaid: 150, BalanceDue: 50, PaymentStatus: entities.PaymentStatusPartiallyPaid},
	}, "http://localhost")

	if res.Payment.PaymentMethod != "cash" || res.Payment.Amount != 150 || !res.Payment.PaymentDate.Equal(at) {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if res.Estimate.BalanceDue != 50 || res.Estimate.PaymentStatus != "partially_paid" {
		t.Fatalf("unexpected estimate: %+v", res.Estimate)
	}
}
