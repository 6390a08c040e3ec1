package usecase

import (
	"context"
	"errors"
	"strings"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"
)

// maxWriteAttempts bounds the reload-and-retry loop on optimistic version conflicts.
const maxWriteAttempts = 3

// mutation edits a working copy. Returning changed=false skips the write.
type mutation func(e *entities.Estimate) (changed bool, err error)

type loader func(ctx context.Context) (entities.Estimate, error)

// loadScoped resolves an estimate by id and enforces tenant ownership.
func loadScoped(ctx context.Context, repo interfaces.IEstimateRepository, organizationID, id string) (entities.Estimate, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return entities.Estimate{}, ErrInvalidOrganizationID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if e.OrganizationID != organizationID {
		return entities.Estimate{}, ErrEstimateOtherTenant
	}
	return e, nil
}

// applyMutation runs load -> mutate -> recalculate -> validate -> conditional update,
// retrying from a fresh read when another writer got there first. The loaded
// record is returned as before even when fn fails, so callers can report the
// current state.
func (d deps) applyMutation(ctx context.Context, repo interfaces.IEstimateRepository, load loader, fn mutation) (before, after entities.Estimate, err error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		before, err = load(ctx)
		if err != nil {
			return entities.Estimate{}, entities.Estimate{}, err
		}

		next := before.Clone()
		changed, err := fn(&next)
		if err != nil {
			return before, entities.Estimate{}, err
		}
		if !changed {
			return before, before, nil
		}

		next.Recalculate()
		next.RefreshPaymentOverlay()
		if err := next.Validate(); err != nil {
			return before, entities.Estimate{}, err
		}
		next.UpdatedAt = d.now()

		after, err = repo.Update(ctx, next)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			d.logger.Debug("estimate version conflict, retrying")
			continue
		}
		if err != nil {
			return before, entities.Estimate{}, err
		}
		if after.ID == "" {
			return before, entities.Estimate{}, ErrEstimateNotFound
		}
		if before.Status != after.Status {
			d.metrics.ObserveTransition(string(before.Status), string(after.Status))
		}
		return before, after, nil
	}
	return before, entities.Estimate{}, interfaces.ErrVersionConflict
}
