package interfaces

import (
	"context"
	"fmt"

	"estimate_engine/internal/domain/entities"
)

// ErrVersionConflict is returned by conditional writes when the stored version no
// longer matches the one the caller read. Callers may reload and retry.
var ErrVersionConflict = fmt.Errorf("%w: estimate was modified concurrently", entities.ErrStateConflict)

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups return a zero-value Estimate (empty ID) when nothing matches.
//
// Update is conditional: it succeeds only when the stored version equals e.Version,
// and persists the record with Version incremented by one.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByPublicToken(ctx context.Context, token string) (entities.Estimate, error)
	ListByOrganizationID(ctx context.Context, organizationID string) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
