// Package memory is the in-process storage driver. It satisfies the same
// repository interfaces as the DynamoDB driver and is selected with
// STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"
)

var errDuplicateID = fmt.Errorf("%w: id already exists", entities.ErrStateConflict)

// Store holds estimates and payments behind one mutex so that a payment and its
// estimate update commit together.
type Store struct {
	mu        sync.RWMutex
	estimates map[string]entities.Estimate
	tokens    map[string]string
	payments  map[string]entities.Payment
	ledger    map[string][]string
}

func NewStore() *Store {
	return &Store{
		estimates: map[string]entities.Estimate{},
		tokens:    map[string]string{},
		payments:  map[string]entities.Payment{},
		ledger:    map[string][]string{},
	}
}

func (s *Store) Estimates() *EstimateRepository { return &EstimateRepository{s: s} }
func (s *Store) Payments() *PaymentRepository   { return &PaymentRepository{s: s} }

type EstimateRepository struct{ s *Store }

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func (r *EstimateRepository) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.estimates[e.ID]; ok {
		return entities.Estimate{}, errDuplicateID
	}
	if _, ok := r.s.tokens[e.PublicToken]; ok {
		return entities.Estimate{}, errDuplicateID
	}
	r.s.estimates[e.ID] = e.Clone()
	r.s.tokens[e.PublicToken] = e.ID
	return e.Clone(), nil
}

func (r *EstimateRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.estimates[id].Clone(), nil
}

func (r *EstimateRepository) GetByPublicToken(_ context.Context, token string) (entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.tokens[token]
	if !ok {
		return entities.Estimate{}, nil
	}
	return r.s.estimates[id].Clone(), nil
}

func (r *EstimateRepository) ListByOrganizationID(_ context.Context, organizationID string) ([]entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Estimate, 0)
	for _, e := range r.s.estimates {
		if e.OrganizationID == organizationID {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *EstimateRepository) Update(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.putEstimateLocked(e)
}

// putEstimateLocked applies the version condition. Callers hold s.mu.
func (s *Store) putEstimateLocked(e entities.Estimate) (entities.Estimate, error) {
	stored, ok := s.estimates[e.ID]
	if !ok {
		return entities.Estimate{}, nil
	}
	if stored.Version != e.Version {
		return entities.Estimate{}, interfaces.ErrVersionConflict
	}
	// The public token is immutable once issued.
	e.PublicToken = stored.PublicToken
	e.Version = stored.Version + 1
	s.estimates[e.ID] = e.Clone()
	return e.Clone(), nil
}

type PaymentRepository struct{ s *Store }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *PaymentRepository) ListByEstimateID(_ context.Context, estimateID string) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.ledger[estimateID]
	out := make([]entities.Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.payments[id])
	}
	return out, nil
}

func (r *PaymentRepository) CreateWithEstimate(_ context.Context, p entities.Payment, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.payments[p.ID]; ok {
		return entities.Estimate{}, errDuplicateID
	}
	updated, err := r.s.putEstimateLocked(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, nil
	}
	r.s.payments[p.ID] = p
	r.s.ledger[p.EstimateID] = append(r.s.ledger[p.EstimateID], p.ID)
	return updated, nil
}
