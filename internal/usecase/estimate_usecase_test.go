package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"estimate_engine/internal/adapter/persistence/memory"
	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"
	mock_interfaces "estimate_engine/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Create(t *testing.T) {
	defaults := CompanyDefaults{TaxRate: 8.25, Terms: "Net 30", ValidityDays: 30}

	t.Run("invalid organization", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaults)
		_, err := uc.Create(context.Background(), "  ", CreateEstimateInput{ClientName: "Dana"})
		if !errors.Is(err, ErrInvalidOrganizationID) {
			t.Fatalf("expected ErrInvalidOrganizationID, got %v", err)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaults)
		cases := map[string]CreateEstimateInput{
			"blank client name": {ClientName: "   "},
			"negative quantity": {ClientName: "Dana", Items: []LineItemInput{{Description: "x", Quantity: -1, UnitPrice: 1}}},
			"negative price":    {ClientName: "Dana", Items: []LineItemInput{{Description: "x", Quantity: 1, UnitPrice: -1}}},
			"missing item desc": {ClientName: "Dana", Items: []LineItemInput{{Quantity: 1, UnitPrice: 1}}},
			"tax over 100":      {ClientName: "Dana", TaxRate: ptr(101.0)},
			"negative discount": {ClientName: "Dana", DiscountAmount: -5},
			"bad email":         {ClientName: "Dana", ClientEmail: "not-an-email"},
			"discount over sum": {ClientName: "Dana", DiscountAmount: 50, Items: []LineItemInput{{Description: "x", Quantity: 1, UnitPrice: 10}}},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), "org-1", in)
				if !errors.Is(err, entities.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})

	t.Run("computes totals and applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaults, WithClock(fixedClock))

		repo.EXPECT().GetByPublicToken(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		e, err := uc.Create(context.Background(), " org-1 ", CreateEstimateInput{
			ClientName:     " Dana Reyes ",
			TaxRate:        ptr(10.0),
			DiscountAmount: 20,
			Items:          []LineItemInput{{Description: "Deck boards", Quantity: 2, UnitPrice: 100}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Subtotal != 200 || e.TaxAmount != 20 || e.TotalAmount != 200 || e.BalanceDue != 200 {
			t.Fatalf("unexpected totals: %+v", e)
		}
		if e.Status != entities.EstimateStatusDraft || e.PaymentStatus != entities.PaymentStatusUnpaid || e.Version != 1 {
			t.Fatalf("unexpected state: %s %s %d", e.Status, e.PaymentStatus, e.Version)
		}
		if e.OrganizationID != "org-1" || e.ClientName != "Dana Reyes" || e.Terms != "Net 30" {
			t.Fatalf("unexpected fields: %+v", e)
		}
		if len(e.PublicToken) != 43 {
			t.Fatalf("expected 43 char token, got %q", e.PublicToken)
		}
		if e.ValidUntil == nil || !e.ValidUntil.Equal(fixedNow.AddDate(0, 0, 30)) {
			t.Fatalf("unexpected valid_until: %v", e.ValidUntil)
		}
		if e.Items[0].ID == "" || e.Items[0].TotalPrice != 200 {
			t.Fatalf("unexpected item: %+v", e.Items[0])
		}
	})

	t.Run("default tax rate when omitted, explicit zero kept", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewEstimateUseCase(store.Estimates(), nil, defaults)

		e, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana"})
		if err != nil || e.TaxRate != 8.25 {
			t.Fatalf("expected default tax, got %v %v", e.TaxRate, err)
		}
		e, err = uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana", TaxRate: ptr(0.0)})
		if err != nil || e.TaxRate != 0 {
			t.Fatalf("expected explicit zero tax, got %v %v", e.TaxRate, err)
		}
	})

	t.Run("lead prefill", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewEstimateUseCase(store.Estimates(), nil, defaults)

		e, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{
			Notes: "Call before visiting",
			Lead:  &LeadPrefill{ClientName: "Sam Lee", ClientEmail: "sam@example.com", Description: "Kitchen remodel"},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.ClientName != "Sam Lee" || e.ClientEmail != "sam@example.com" {
			t.Fatalf("lead not applied: %+v", e)
		}
		if e.Notes != "Call before visiting\n\nKitchen remodel" {
			t.Fatalf("unexpected notes: %q", e.Notes)
		}
	})

	t.Run("token collision retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaults)

		gomock.InOrder(
			repo.EXPECT().GetByPublicToken(gomock.Any(), gomock.Any()).Return(entities.Estimate{ID: "taken"}, nil),
			repo.EXPECT().GetByPublicToken(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil),
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		if _, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("token space exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaults)

		repo.EXPECT().GetByPublicToken(gomock.Any(), gomock.Any()).Return(entities.Estimate{ID: "taken"}, nil).Times(tokenAttempts)

		_, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana"})
		if !errors.Is(err, ErrTokenGeneration) {
			t.Fatalf("expected ErrTokenGeneration, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaults)

		repo.EXPECT().GetByPublicToken(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_CreateNormalizesValidUntil(t *testing.T) {
	store := memory.NewStore()
	uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{ValidityDays: 30}, WithClock(fixedClock))

	local := time.Date(2026, 5, 1, 17, 0, 0, 0, time.FixedZone("EST", -5*3600))
	e, err := uc.Create(context.Background(), "org-1", CreateEstimateInput{ClientName: "Dana", ValidUntil: &local})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.ValidUntil == nil || e.ValidUntil.Location() != time.UTC || !e.ValidUntil.Equal(local) {
		t.Fatalf("expected UTC valid_until equal to %v, got %v", local, e.ValidUntil)
	}

	stored, _ := store.Estimates().GetByID(context.Background(), e.ID)
	if stored.ValidUntil == nil || stored.ValidUntil.Location() != time.UTC {
		t.Fatalf("expected stored valid_until in UTC, got %v", stored.ValidUntil)
	}
}

func TestEstimateUseCase_Scoping(t *testing.T) {
	store := memory.NewStore()
	e := seedEstimate(t, store, "org-1")
	uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{})

	if _, err := uc.GetByID(context.Background(), "org-2", e.ID); !errors.Is(err, ErrEstimateOtherTenant) {
		t.Fatalf("expected ErrEstimateOtherTenant, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "org-1", "missing"); !errors.Is(err, ErrEstimateNotFound) {
		t.Fatalf("expected ErrEstimateNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "org-1", " "); !errors.Is(err, ErrInvalidEstimateID) {
		t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
	}
	if _, err := uc.Send(context.Background(), "org-2", e.ID); !errors.Is(err, entities.ErrTenantMismatch) {
		t.Fatalf("expected tenant mismatch on write, got %v", err)
	}

	seedEstimate(t, store, "org-2")
	list, err := uc.ListByOrganization(context.Background(), "org-1")
	if err != nil || len(list) != 1 || list[0].ID != e.ID {
		t.Fatalf("unexpected list: %v %v", list, err)
	}
	if _, err := uc.ListByOrganization(context.Background(), ""); !errors.Is(err, ErrInvalidOrganizationID) {
		t.Fatalf("expected ErrInvalidOrganizationID, got %v", err)
	}
}

func totalIdentityHolds(e entities.Estimate) bool {
	return math.Abs(e.TotalAmount-(e.Subtotal+e.TaxAmount-e.DiscountAmount)) < 1e-9
}

func TestEstimateUseCase_ItemsAndPricing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	e := seedEstimate(t, store, "org-1")
	uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{})

	e, err := uc.AddItem(ctx, "org-1", e.ID, LineItemInput{Description: "Railing", Quantity: 3, UnitPrice: 50})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(e.Items) != 2 || e.Subtotal != 350 || e.TotalAmount != 365 || !totalIdentityHolds(e) {
		t.Fatalf("unexpected after add: %+v", e)
	}

	railing := e.Items[1].ID
	e, err = uc.UpdateItem(ctx, "org-1", e.ID, railing, UpdateLineItemInput{Quantity: ptr(1.0)})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if e.Items[1].TotalPrice != 50 || e.Subtotal != 250 || !totalIdentityHolds(e) {
		t.Fatalf("unexpected after update: %+v", e)
	}

	if _, err := uc.UpdateItem(ctx, "org-1", e.ID, "nope", UpdateLineItemInput{Quantity: ptr(1.0)}); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
	if _, err := uc.UpdateItem(ctx, "org-1", e.ID, railing, UpdateLineItemInput{UnitPrice: ptr(-1.0)}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	e, err = uc.RemoveItem(ctx, "org-1", e.ID, railing)
	if err != nil || len(e.Items) != 1 || e.TotalAmount != 200 {
		t.Fatalf("unexpected after remove: %+v %v", e, err)
	}

	e, err = uc.UpdatePricing(ctx, "org-1", e.ID, PricingInput{TaxRate: ptr(0.0), DiscountAmount: ptr(0.0)})
	if err != nil || e.TotalAmount != 200 || e.TaxAmount != 0 {
		t.Fatalf("unexpected after pricing: %+v %v", e, err)
	}

	e, err = uc.ReplaceItems(ctx, "org-1", e.ID, []LineItemInput{{Description: "Labor", Quantity: 8, UnitPrice: 45}})
	if err != nil || len(e.Items) != 1 || e.TotalAmount != 360 {
		t.Fatalf("unexpected after replace: %+v %v", e, err)
	}

	before := e
	if _, err := uc.UpdatePricing(ctx, "org-1", e.ID, PricingInput{DiscountAmount: ptr(1000.0)}); !errors.Is(err, entities.ErrNegativeTotal) {
		t.Fatalf("expected ErrNegativeTotal, got %v", err)
	}
	stored, _ := store.Estimates().GetByID(ctx, e.ID)
	if stored.Version != before.Version || stored.DiscountAmount != before.DiscountAmount {
		t.Fatalf("rejected edit must not persist: %+v", stored)
	}
}

func TestEstimateUseCase_UpdateDetails(t *testing.T) {
	store := memory.NewStore()
	e := seedEstimate(t, store, "org-1")
	uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{})

	e, err := uc.UpdateDetails(context.Background(), "org-1", e.ID, UpdateDetailsInput{City: ptr("Austin"), Notes: ptr("gate code 1234")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.City != "Austin" || e.Notes != "gate code 1234" || e.ClientName != "Dana Reyes" {
		t.Fatalf("unexpected details: %+v", e)
	}

	if _, err := uc.UpdateDetails(context.Background(), "org-1", e.ID, UpdateDetailsInput{ClientName: ptr("  ")}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEstimateUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("send once", func(t *testing.T) {
		store := memory.NewStore()
		e := seedEstimate(t, store, "org-1")
		uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{}, WithClock(fixedClock))

		sent, err := uc.Send(ctx, "org-1", e.ID)
		if err != nil || sent.Status != entities.EstimateStatusSent || sent.SentAt == nil {
			t.Fatalf("unexpected send: %+v %v", sent, err)
		}
		again, err := uc.Send(ctx, "org-1", e.ID)
		if err != nil || again.Version != sent.Version || !again.SentAt.Equal(*sent.SentAt) {
			t.Fatalf("resend must be a no-op: %+v %v", again, err)
		}
	})

	t.Run("reject and expire only while open", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewEstimateUseCase(store.Estimates(), nil, CompanyDefaults{})

		e := seedEstimate(t, store, "org-1")
		if got, err := uc.Reject(ctx, "org-1", e.ID); err != nil || got.Status != entities.EstimateStatusRejected {
			t.Fatalf("unexpected reject: %+v %v", got, err)
		}
		if _, err := uc.Expire(ctx, "org-1", e.ID); !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}

		e = withStatus(t, store, seedEstimate(t, store, "org-1"), entities.EstimateStatusViewed)
		if got, err := uc.Expire(ctx, "org-1", e.ID); err != nil || got.Status != entities.EstimateStatusExpired {
			t.Fatalf("unexpected expire: %+v %v", got, err)
		}

		e = withStatus(t, store, seedEstimate(t, store, "org-1"), entities.EstimateStatusApproved)
		if _, err := uc.Reject(ctx, "org-1", e.ID); !errors.Is(err, entities.ErrStateConflict) {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})
}

func TestEstimateUseCase_VersionConflictRetry(t *testing.T) {
	t.Run("retries from a fresh read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, CompanyDefaults{})

		stored := entities.Estimate{ID: "e1", OrganizationID: "org-1", ClientName: "Dana", Status: entities.EstimateStatusDraft, Version: 3}
		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(stored, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrVersionConflict),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
					e.Version++
					return e, nil
				},
			),
		)

		got, err := uc.Send(context.Background(), "org-1", "e1")
		if err != nil || got.Status != entities.EstimateStatusSent || got.Version != 4 {
			t.Fatalf("unexpected: %+v %v", got, err)
		}
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, CompanyDefaults{})

		stored := entities.Estimate{ID: "e1", OrganizationID: "org-1", ClientName: "Dana", Status: entities.EstimateStatusDraft, Version: 3}
		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(stored, nil).Times(maxWriteAttempts)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrVersionConflict).Times(maxWriteAttempts)

		if _, err := uc.Send(context.Background(), "org-1", "e1"); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestEstimateUseCase_RenderDocument(t *testing.T) {
	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, CompanyDefaults{})
		if _, _, err := uc.RenderDocument(context.Background(), "org-1", "e1"); !errors.Is(err, ErrRendererNotConfigured) {
			t.Fatalf("expected ErrRendererNotConfigured, got %v", err)
		}
	})

	t.Run("draft becomes sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		e := seedEstimate(t, store, "org-1")
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewEstimateUseCase(store.Estimates(), renderer, CompanyDefaults{})

		renderer.EXPECT().RenderEstimate(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).Return([]byte("%PDF-1.3"), nil)

		got, doc, err := uc.RenderDocument(context.Background(), "org-1", e.ID)
		if err != nil || string(doc) != "%PDF-1.3" || got.Status != entities.EstimateStatusSent {
			t.Fatalf("unexpected: %+v %q %v", got, doc, err)
		}
	})

	t.Run("render failure leaves draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		e := seedEstimate(t, store, "org-1")
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewEstimateUseCase(store.Estimates(), renderer, CompanyDefaults{})

		renderer.EXPECT().RenderEstimate(gomock.Any(), gomock.Any()).Return(nil, errors.New("font"))

		if _, _, err := uc.RenderDocument(context.Background(), "org-1", e.ID); err == nil {
			t.Fatalf("expected error")
		}
		stored, _ := store.Estimates().GetByID(context.Background(), e.ID)
		if stored.Status != entities.EstimateStatusDraft {
			t.Fatalf("expected draft, got %s", stored.Status)
		}
	})
}
