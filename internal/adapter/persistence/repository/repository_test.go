package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestEstimateItemConversion(t *testing.T) {
	now := time.Date(2026, 2, 3, 4, 5, 6, 7, time.UTC)
	e := entities.Estimate{
		ID:             "est-1",
		OrganizationID: "org-1",
		ClientName:     "Dana",
		Status:         entities.EstimateStatusApproved,
		Items:          []entities.LineItem{entities.NewLineItem("i1", "Boards", 2, 100)},
		TaxRate:        10,
		DiscountAmount: 20,
		PublicToken:    "tok",
		ApprovedAt:     &now,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        4,
	}
	e.Recalculate()

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["sent_at"]; ok {
		t.Fatalf("expected nil sent_at to be omitted")
	}
	got, err := unmarshalEstimate(av)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.TotalAmount != 200 || got.Version != 4 || len(got.Items) != 1 || got.Items[0].TotalPrice != 200 {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if got.ApprovedAt == nil || !got.ApprovedAt.Equal(now) || got.SentAt != nil {
		t.Fatalf("unexpected timestamps: approved=%v sent=%v", got.ApprovedAt, got.SentAt)
	}
}

func TestEstimatePut_BumpsVersion(t *testing.T) {
	put, next, err := estimatePut("estimates", entities.Estimate{ID: "est-1", Version: 7})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if next.Version != 8 {
		t.Fatalf("expected version 8, got %d", next.Version)
	}
	if got := put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; got != "7" {
		t.Fatalf("expected guard on version 7, got %s", got)
	}
	if got := put.Item["version"].(*types.AttributeValueMemberN).Value; got != "8" {
		t.Fatalf("expected stored version 8, got %s", got)
	}
}

func TestClassifyConditionFailure(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		handled, err := classifyConditionFailure(&types.ConditionalCheckFailedException{})
		if !handled || err != nil {
			t.Fatalf("expected handled nil, got %v %v", handled, err)
		}
	})
	t.Run("stale version", func(t *testing.T) {
		cfe := &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "est-1"},
		}}
		handled, err := classifyConditionFailure(fmt.Errorf("put: %w", cfe))
		if !handled || !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected version conflict, got %v %v", handled, err)
		}
	})
	t.Run("other error", func(t *testing.T) {
		boom := errors.New("boom")
		handled, err := classifyConditionFailure(boom)
		if handled || err != boom {
			t.Fatalf("expected passthrough, got %v %v", handled, err)
		}
	})
}

func TestClassifyTransactionFailure(t *testing.T) {
	cancelled := func(item map[string]types.AttributeValue) error {
		return &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed"), Item: item},
		}}
	}

	if err := classifyTransactionFailure(cancelled(nil)); err != nil {
		t.Fatalf("expected nil for missing estimate, got %v", err)
	}
	stale := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "est-1"}}
	if err := classifyTransactionFailure(cancelled(stale)); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	dup := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("ConditionalCheckFailed")},
		{Code: aws.String("None")},
	}}
	if err := classifyTransactionFailure(dup); err != dup {
		t.Fatalf("expected passthrough for duplicate payment, got %v", err)
	}
}

func TestPaymentItemConversion(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p := entities.Payment{ID: "p1", EstimateID: "est-1", OrganizationID: "org-1", Amount: 150, Method: entities.PaymentMethodCheck, Reference: "#1001", PaymentDate: at, CreatedAt: at}

	got := fromPaymentItem(toPaymentItem(p))
	if got.ID != p.ID || got.EstimateID != p.EstimateID || got.Amount != p.Amount || got.Method != p.Method || got.Reference != p.Reference {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
	if !got.PaymentDate.Equal(at) || !got.CreatedAt.Equal(at) {
		t.Fatalf("unexpected dates: %v %v", got.PaymentDate, got.CreatedAt)
	}
}

func TestEstimatePut_GuardsPublicToken(t *testing.T) {
	put, _, err := estimatePut("estimates", entities.Estimate{ID: "est-1", PublicToken: "tok", Version: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := put.ExpressionAttributeValues[":token"].(*types.AttributeValueMemberS).Value; got != "tok" {
		t.Fatalf("expected guard on token tok, got %s", got)
	}
	if put.ExpressionAttributeNames["#public_token"] != "public_token" {
		t.Fatalf("missing public_token name: %v", put.ExpressionAttributeNames)
	}
}

func TestStoredToken(t *testing.T) {
	failure := func(stored entities.Estimate) error {
		av, err := attributevalue.MarshalMap(toEstimateItem(stored))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{Item: av})
	}

	t.Run("caller carried another token", func(t *testing.T) {
		err := failure(entities.Estimate{ID: "est-1", PublicToken: "original", Version: 3})
		token, ok := storedToken(err, entities.Estimate{ID: "est-1", PublicToken: "forged", Version: 3})
		if !ok || token != "original" {
			t.Fatalf("expected stored token original, got %q %v", token, ok)
		}
	})
	t.Run("stale version is not a token mismatch", func(t *testing.T) {
		err := failure(entities.Estimate{ID: "est-1", PublicToken: "original", Version: 4})
		if _, ok := storedToken(err, entities.Estimate{ID: "est-1", PublicToken: "forged", Version: 3}); ok {
			t.Fatalf("expected version conflict to be left to the classifier")
		}
	})
	t.Run("missing row", func(t *testing.T) {
		if _, ok := storedToken(&types.ConditionalCheckFailedException{}, entities.Estimate{ID: "est-1", Version: 1}); ok {
			t.Fatalf("expected no stored token for a missing row")
		}
	})
	t.Run("no error", func(t *testing.T) {
		if _, ok := storedToken(nil, entities.Estimate{}); ok {
			t.Fatalf("expected no stored token without an error")
		}
	})
}
