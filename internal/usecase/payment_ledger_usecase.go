package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppendPaymentInput is a payment recorded by an admin against an estimate.
// OrganizationID is optional; when present it must match the estimate's tenant.
type AppendPaymentInput struct {
	Amount         float64                `json:"amount" validate:"gt=0"`
	Method         entities.PaymentMethod `json:"payment_method" validate:"required,oneof=cash check card bank_transfer"`
	Reference      string                 `json:"reference" validate:"max=120"`
	PaymentDate    *time.Time             `json:"payment_date"`
	OrganizationID string                 `json:"organization_id"`
}

// LedgerResult is the outcome of an append: the stored payment and the estimate
// with its recomputed payment summary.
type LedgerResult struct {
	Payment  entities.Payment
	Estimate entities.Estimate
}

// IPaymentLedgerUseCase records payments and keeps the estimate's payment summary
// consistent with the full payment history.
type IPaymentLedgerUseCase interface {
	Append(ctx context.Context, organizationID, estimateID string, in AppendPaymentInput) (LedgerResult, error)
	ListByEstimateID(ctx context.Context, organizationID, estimateID string) ([]entities.Payment, error)
	GetByID(ctx context.Context, organizationID, id string) (entities.Payment, error)
}

type PaymentLedgerUseCase struct {
	repo         interfaces.IPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	locker       interfaces.ILocker
	deps
}

var _ IPaymentLedgerUseCase = (*PaymentLedgerUseCase)(nil)

func NewPaymentLedgerUseCase(repo interfaces.IPaymentRepository, estimateRepo interfaces.IEstimateRepository, locker interfaces.ILocker, opts ...Option) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{repo: repo, estimateRepo: estimateRepo, locker: locker, deps: newDeps(opts)}
}

// Append validates the payment, then under the estimate's lock rebuilds the
// summary from every recorded payment plus the new one and commits payment and
// estimate together.
func (u *PaymentLedgerUseCase) Append(ctx context.Context, organizationID, estimateID string, in AppendPaymentInput) (LedgerResult, error) {
	estimateID = strings.TrimSpace(estimateID)
	log := u.logger.With(zap.String("estimate_id", estimateID))
	log.Debug("payment append start", zap.Float64("amount", in.Amount), zap.String("payment_method", string(in.Method)))

	if err := validateInput(in); err != nil {
		log.Info("payment rejected", zap.Error(err))
		return LedgerResult{}, err
	}
	if estimateID == "" {
		return LedgerResult{}, ErrInvalidEstimateID
	}
	if org := strings.TrimSpace(in.OrganizationID); org != "" && org != strings.TrimSpace(organizationID) {
		return LedgerResult{}, ErrPaymentOtherTenant
	}

	release, err := u.locker.Acquire(ctx, lockKey(estimateID))
	if err != nil {
		log.Error("payment lock failed", zap.Error(err))
		return LedgerResult{}, err
	}
	defer release()

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		res, err := u.appendOnce(ctx, organizationID, estimateID, in)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Debug("payment append version conflict, retrying", zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			log.Warn("payment append failed", zap.Error(err))
			return LedgerResult{}, err
		}

		u.metrics.ObservePayment(string(res.Payment.Method), res.Payment.Amount)
		log.Info("payment appended",
			zap.String("payment_id", res.Payment.ID),
			zap.Float64("amount_paid", res.Estimate.AmountPaid),
			zap.Float64("balance_due", res.Estimate.BalanceDue),
			zap.String("payment_status", string(res.Estimate.PaymentStatus)),
			zap.String("status", string(res.Estimate.Status)),
		)
		return res, nil
	}
	return LedgerResult{}, interfaces.ErrVersionConflict
}

func (u *PaymentLedgerUseCase) appendOnce(ctx context.Context, organizationID, estimateID string, in AppendPaymentInput) (LedgerResult, error) {
	est, err := loadScoped(ctx, u.estimateRepo, organizationID, estimateID)
	if err != nil {
		return LedgerResult{}, err
	}
	history, err := u.repo.ListByEstimateID(ctx, est.ID)
	if err != nil {
		return LedgerResult{}, err
	}

	// The ledger is authoritative; the stored AmountPaid may be stale.
	est.AmountPaid = entities.SummarizePayments(est.TotalAmount, history).AmountPaid
	if err := est.AcceptsPayment(in.Amount); err != nil {
		return LedgerResult{}, err
	}

	now := u.now()
	p := entities.Payment{
		ID:             uuid.NewString(),
		EstimateID:     est.ID,
		OrganizationID: est.OrganizationID,
		Amount:         in.Amount,
		Method:         in.Method,
		Reference:      strings.TrimSpace(in.Reference),
		PaymentDate:    now,
		CreatedAt:      now,
	}
	if in.PaymentDate != nil {
		p.PaymentDate = in.PaymentDate.UTC()
	}
	if err := p.Validate(); err != nil {
		return LedgerResult{}, err
	}

	before := est.Status
	next := est.Clone()
	next.ApplyPaymentSummary(entities.SummarizePayments(est.TotalAmount, append(history, p)))
	next.UpdatedAt = now

	updated, err := u.repo.CreateWithEstimate(ctx, p, next)
	if err != nil {
		return LedgerResult{}, err
	}
	if updated.ID == "" {
		return LedgerResult{}, ErrEstimateNotFound
	}
	if before != updated.Status {
		u.metrics.ObserveTransition(string(before), string(updated.Status))
	}
	return LedgerResult{Payment: p, Estimate: updated}, nil
}

func (u *PaymentLedgerUseCase) ListByEstimateID(ctx context.Context, organizationID, estimateID string) ([]entities.Payment, error) {
	est, err := loadScoped(ctx, u.estimateRepo, organizationID, estimateID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListByEstimateID(ctx, est.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaymentDate.Before(payments[j].PaymentDate)
	})
	return payments, nil
}

func (u *PaymentLedgerUseCase) GetByID(ctx context.Context, organizationID, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.OrganizationID != strings.TrimSpace(organizationID) {
		return entities.Payment{}, ErrPaymentOtherTenant
	}
	return p, nil
}

func lockKey(estimateID string) string {
	return "estimate:" + estimateID + ":ledger"
}
