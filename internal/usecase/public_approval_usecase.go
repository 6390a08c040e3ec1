package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PublicEstimateView is what a client holding the public token may see. Internal
// notes, the tenant id and the concurrency version never leave the use case.
type PublicEstimateView struct {
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	AddressLine1   string
	AddressLine2   string
	City           string
	State          string
	PostalCode     string
	ProjectType    string
	Status         entities.EstimateStatus
	Items          []entities.LineItem
	Subtotal       float64
	TaxRate        float64
	TaxAmount      float64
	DiscountAmount float64
	TotalAmount    float64
	AmountPaid     float64
	BalanceDue     float64
	PaymentStatus  entities.PaymentStatus
	Terms          string
	ValidUntil     *time.Time
	SentAt         *time.Time
	ApprovedAt     *time.Time
	CreatedAt      time.Time
}

func NewPublicEstimateView(e entities.Estimate) PublicEstimateView {
	c := e.Clone()
	return PublicEstimateView{
		ClientName:     c.ClientName,
		ClientEmail:    c.ClientEmail,
		ClientPhone:    c.ClientPhone,
		AddressLine1:   c.AddressLine1,
		AddressLine2:   c.AddressLine2,
		City:           c.City,
		State:          c.State,
		PostalCode:     c.PostalCode,
		ProjectType:    c.ProjectType,
		Status:         c.Status,
		Items:          c.Items,
		Subtotal:       c.Subtotal,
		TaxRate:        c.TaxRate,
		TaxAmount:      c.TaxAmount,
		DiscountAmount: c.DiscountAmount,
		TotalAmount:    c.TotalAmount,
		AmountPaid:     c.AmountPaid,
		BalanceDue:     c.BalanceDue,
		PaymentStatus:  c.PaymentStatus,
		Terms:          c.Terms,
		ValidUntil:     c.ValidUntil,
		SentAt:         c.SentAt,
		ApprovedAt:     c.ApprovedAt,
		CreatedAt:      c.CreatedAt,
	}
}

// ApprovalResult reports the view after approve. AlreadyApproved is set when the
// estimate was already past approval; the call still succeeds.
type ApprovalResult struct {
	View            PublicEstimateView
	AlreadyApproved bool
}

// IPublicApprovalUseCase is the token-addressable surface used by clients without
// an admin session. Unknown tokens always yield ErrEstimateNotFound.
type IPublicApprovalUseCase interface {
	FetchByToken(ctx context.Context, token string) (PublicEstimateView, error)
	OnView(ctx context.Context, token string) (PublicEstimateView, error)
	Approve(ctx context.Context, token string) (ApprovalResult, error)
}

type PublicApprovalUseCase struct {
	repo interfaces.IEstimateRepository
	deps
}

var _ IPublicApprovalUseCase = (*PublicApprovalUseCase)(nil)

func NewPublicApprovalUseCase(repo interfaces.IEstimateRepository, opts ...Option) *PublicApprovalUseCase {
	return &PublicApprovalUseCase{repo: repo, deps: newDeps(opts)}
}

func (u *PublicApprovalUseCase) FetchByToken(ctx context.Context, token string) (PublicEstimateView, error) {
	e, err := u.load(ctx, token)
	if err != nil {
		return PublicEstimateView{}, err
	}
	return NewPublicEstimateView(e), nil
}

// OnView nudges Sent to Viewed the first time the link is opened. Every other
// status is returned untouched.
func (u *PublicApprovalUseCase) OnView(ctx context.Context, token string) (PublicEstimateView, error) {
	before, after, err := u.applyMutation(ctx, u.repo, u.loader(token), func(e *entities.Estimate) (bool, error) {
		return e.MarkViewed(), nil
	})
	if err != nil {
		return PublicEstimateView{}, err
	}
	if before.Status != after.Status {
		u.logger.Info("estimate viewed", zap.String("estimate_id", after.ID))
	}
	return NewPublicEstimateView(after), nil
}

func (u *PublicApprovalUseCase) Approve(ctx context.Context, token string) (ApprovalResult, error) {
	before, after, err := u.applyMutation(ctx, u.repo, u.loader(token), func(e *entities.Estimate) (bool, error) {
		return true, e.Approve(u.now())
	})
	if errors.Is(err, entities.ErrAlreadyApproved) {
		return ApprovalResult{View: NewPublicEstimateView(before), AlreadyApproved: true}, nil
	}
	if err != nil {
		if before.ID != "" {
			u.logger.Info("estimate approve rejected", zap.String("estimate_id", before.ID), zap.String("status", string(before.Status)), zap.Error(err))
		}
		return ApprovalResult{}, err
	}
	u.logger.Info("estimate approved", zap.String("estimate_id", after.ID), zap.String("status", string(after.Status)))
	return ApprovalResult{View: NewPublicEstimateView(after)}, nil
}

func (u *PublicApprovalUseCase) loader(token string) loader {
	return func(ctx context.Context) (entities.Estimate, error) {
		return u.load(ctx, token)
	}
}

func (u *PublicApprovalUseCase) load(ctx context.Context, token string) (entities.Estimate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	e, err := u.repo.GetByPublicToken(ctx, token)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" || e.PublicToken != token {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
