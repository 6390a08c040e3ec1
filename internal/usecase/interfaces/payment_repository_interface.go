package interfaces

import (
	"context"

	"estimate_engine/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for the append-only payment ledger.
//
// CreateWithEstimate stores the payment and the recomputed estimate in a single
// atomic write. The estimate update carries the same version condition as
// IEstimateRepository.Update; on conflict nothing is written.
type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Payment, error)
	CreateWithEstimate(ctx context.Context, p entities.Payment, e entities.Estimate) (entities.Estimate, error)
}
