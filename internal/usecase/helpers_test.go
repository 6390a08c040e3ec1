package usecase

import (
	"context"
	"testing"
	"time"

	"estimate_engine/internal/adapter/persistence/memory"
	"estimate_engine/internal/domain/entities"
)

var fixedNow = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

// seedEstimate creates a draft of 2 x 100 at 10% tax with a 20 discount (total 200).
func seedEstimate(t *testing.T, store *memory.Store, org string) entities.Estimate {
	t.Helper()
	uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{}, WithClock(fixedClock))
	e, err := uc.Create(context.Background(), org, CreateEstimateInput{
		ClientName:     "Dana Reyes",
		TaxRate:        ptr(10.0),
		DiscountAmount: 20,
		Items:          []LineItemInput{{Description: "Deck boards", Quantity: 2, UnitPrice: 100}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return e
}

// withStatus forces a stored estimate into the given status.
func withStatus(t *testing.T, store *memory.Store, e entities.Estimate, s entities.EstimateStatus) entities.Estimate {
	t.Helper()
	cur, _ := store.Estimates().GetByID(context.Background(), e.ID)
	cur.Status = s
	out, err := store.Estimates().Update(context.Background(), cur)
	if err != nil {
		t.Fatalf("force status: %v", err)
	}
	return out
}
