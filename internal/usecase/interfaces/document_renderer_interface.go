package interfaces

import (
	"context"

	"estimate_engine/internal/domain/entities"
)

// IDocumentRenderer produces the client-facing document (PDF) for a computed estimate.
type IDocumentRenderer interface {
	RenderEstimate(ctx context.Context, e entities.Estimate) ([]byte, error)
}
