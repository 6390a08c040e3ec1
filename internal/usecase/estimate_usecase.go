package usecase

import (
	"context"
	"strings"
	"time"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tokenAttempts bounds regeneration when a freshly drawn token is already taken.
const tokenAttempts = 3

// CompanyDefaults are applied once, when an estimate is created. They are never
// re-applied to existing records.
type CompanyDefaults struct {
	TaxRate      float64
	Terms        string
	ValidityDays int
}

// LeadPrefill seeds a new draft from an intake lead. Description is kept as
// internal notes.
type LeadPrefill struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	ClientPhone string `json:"client_phone"`
	Description string `json:"description"`
}

type LineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type UpdateLineItemInput struct {
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice   *float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

type CreateEstimateInput struct {
	ClientName     string          `json:"client_name"`
	ClientEmail    string          `json:"client_email" validate:"omitempty,email"`
	ClientPhone    string          `json:"client_phone"`
	AddressLine1   string          `json:"address_line1"`
	AddressLine2   string          `json:"address_line2"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	PostalCode     string          `json:"postal_code"`
	ProjectType    string          `json:"project_type"`
	Notes          string          `json:"notes"`
	Terms          *string         `json:"terms"`
	TaxRate        *float64        `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	DiscountAmount float64         `json:"discount_amount" validate:"gte=0"`
	ValidUntil     *time.Time      `json:"valid_until"`
	Items          []LineItemInput `json:"items" validate:"dive"`
	Lead           *LeadPrefill    `json:"lead"`
}

type UpdateDetailsInput struct {
	ClientName   *string    `json:"client_name" validate:"omitempty,min=1"`
	ClientEmail  *string    `json:"client_email" validate:"omitempty,email"`
	ClientPhone  *string    `json:"client_phone"`
	AddressLine1 *string    `json:"address_line1"`
	AddressLine2 *string    `json:"address_line2"`
	City         *string    `json:"city"`
	State        *string    `json:"state"`
	PostalCode   *string    `json:"postal_code"`
	ProjectType  *string    `json:"project_type"`
	Notes        *string    `json:"notes"`
	Terms        *string    `json:"terms"`
	ValidUntil   *time.Time `json:"valid_until"`
}

type PricingInput struct {
	TaxRate        *float64 `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	DiscountAmount *float64 `json:"discount_amount" validate:"omitempty,gte=0"`
}

// IEstimateUseCase exposes the admin operations on estimates. Every call is scoped
// to the caller's organization.
type IEstimateUseCase interface {
	Create(ctx context.Context, organizationID string, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, organizationID, id string) (entities.Estimate, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]entities.Estimate, error)
	UpdateDetails(ctx context.Context, organizationID, id string, in UpdateDetailsInput) (entities.Estimate, error)
	UpdatePricing(ctx context.Context, organizationID, id string, in PricingInput) (entities.Estimate, error)
	ReplaceItems(ctx context.Context, organizationID, id string, items []LineItemInput) (entities.Estimate, error)
	AddItem(ctx context.Context, organizationID, id string, item LineItemInput) (entities.Estimate, error)
	UpdateItem(ctx context.Context, organizationID, id, itemID string, in UpdateLineItemInput) (entities.Estimate, error)
	RemoveItem(ctx context.Context, organizationID, id, itemID string) (entities.Estimate, error)
	Send(ctx context.Context, organizationID, id string) (entities.Estimate, error)
	Reject(ctx context.Context, organizationID, id string) (entities.Estimate, error)
	Expire(ctx context.Context, organizationID, id string) (entities.Estimate, error)
	RenderDocument(ctx context.Context, organizationID, id string) (entities.Estimate, []byte, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	renderer interfaces.IDocumentRenderer
	defaults CompanyDefaults
	deps
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, renderer interfaces.IDocumentRenderer, defaults CompanyDefaults, opts ...Option) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, renderer: renderer, defaults: defaults, deps: newDeps(opts)}
}

func (u *EstimateUseCase) Create(ctx context.Context, organizationID string, in CreateEstimateInput) (entities.Estimate, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return entities.Estimate{}, ErrInvalidOrganizationID
	}
	if err := validateInput(in); err != nil {
		return entities.Estimate{}, err
	}
	if in.Lead != nil {
		if err := validateInput(*in.Lead); err != nil {
			return entities.Estimate{}, err
		}
		applyLead(&in, *in.Lead)
	}

	now := u.now()
	e := entities.Estimate{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientEmail:    strings.TrimSpace(in.ClientEmail),
		ClientPhone:    strings.TrimSpace(in.ClientPhone),
		AddressLine1:   in.AddressLine1,
		AddressLine2:   in.AddressLine2,
		City:           in.City,
		State:          in.State,
		PostalCode:     in.PostalCode,
		ProjectType:    in.ProjectType,
		Status:         entities.EstimateStatusDraft,
		Items:          buildItems(in.Items),
		TaxRate:        u.defaults.TaxRate,
		DiscountAmount: in.DiscountAmount,
		PaymentStatus:  entities.PaymentStatusUnpaid,
		Notes:          in.Notes,
		Terms:          u.defaults.Terms,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
	if in.TaxRate != nil {
		e.TaxRate = *in.TaxRate
	}
	if in.Terms != nil {
		e.Terms = *in.Terms
	}
	if in.ValidUntil != nil {
		v := in.ValidUntil.UTC()
		e.ValidUntil = &v
	}
	if e.ValidUntil == nil && u.defaults.ValidityDays > 0 {
		v := now.AddDate(0, 0, u.defaults.ValidityDays)
		e.ValidUntil = &v
	}

	e.Recalculate()
	if err := e.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	token, err := u.uniqueToken(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.PublicToken = token

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.logger.Error("estimate create failed", zap.String("organization_id", organizationID), zap.Error(err))
		return entities.Estimate{}, err
	}
	u.logger.Info("estimate created",
		zap.String("estimate_id", created.ID),
		zap.String("organization_id", organizationID),
		zap.Float64("total_amount", created.TotalAmount),
	)
	return created, nil
}

func applyLead(in *CreateEstimateInput, lead LeadPrefill) {
	if strings.TrimSpace(in.ClientName) == "" {
		in.ClientName = lead.ClientName
	}
	if strings.TrimSpace(in.ClientEmail) == "" {
		in.ClientEmail = lead.ClientEmail
	}
	if strings.TrimSpace(in.ClientPhone) == "" {
		in.ClientPhone = lead.ClientPhone
	}
	if desc := strings.TrimSpace(lead.Description); desc != "" {
		if in.Notes == "" {
			in.Notes = desc
		} else {
			in.Notes = in.Notes + "\n\n" + desc
		}
	}
}

func buildItems(in []LineItemInput) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.NewLineItem(uuid.NewString(), strings.TrimSpace(it.Description), it.Quantity, it.UnitPrice))
	}
	return items
}

func (u *EstimateUseCase) uniqueToken(ctx context.Context) (string, error) {
	for i := 0; i < tokenAttempts; i++ {
		token, err := generatePublicToken()
		if err != nil {
			return "", err
		}
		existing, err := u.repo.GetByPublicToken(ctx, token)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return token, nil
		}
	}
	return "", ErrTokenGeneration
}

func (u *EstimateUseCase) GetByID(ctx context.Context, organizationID, id string) (entities.Estimate, error) {
	return loadScoped(ctx, u.repo, organizationID, id)
}

func (u *EstimateUseCase) ListByOrganization(ctx context.Context, organizationID string) ([]entities.Estimate, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, ErrInvalidOrganizationID
	}
	return u.repo.ListByOrganizationID(ctx, organizationID)
}

func (u *EstimateUseCase) UpdateDetails(ctx context.Context, organizationID, id string, in UpdateDetailsInput) (entities.Estimate, error) {
	if err := validateInput(in); err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		setString(&e.ClientName, in.ClientName, true)
		setString(&e.ClientEmail, in.ClientEmail, true)
		setString(&e.ClientPhone, in.ClientPhone, true)
		setString(&e.AddressLine1, in.AddressLine1, false)
		setString(&e.AddressLine2, in.AddressLine2, false)
		setString(&e.City, in.City, false)
		setString(&e.State, in.State, false)
		setString(&e.PostalCode, in.PostalCode, false)
		setString(&e.ProjectType, in.ProjectType, false)
		setString(&e.Notes, in.Notes, false)
		setString(&e.Terms, in.Terms, false)
		if in.ValidUntil != nil {
			v := in.ValidUntil.UTC()
			e.ValidUntil = &v
		}
		return true, nil
	})
}

func setString(dst *string, v *string, trim bool) {
	if v == nil {
		return
	}
	if trim {
		*dst = strings.TrimSpace(*v)
		return
	}
	*dst = *v
}

func (u *EstimateUseCase) UpdatePricing(ctx context.Context, organizationID, id string, in PricingInput) (entities.Estimate, error) {
	if err := validateInput(in); err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		if in.TaxRate != nil {
			e.TaxRate = *in.TaxRate
		}
		if in.DiscountAmount != nil {
			e.DiscountAmount = *in.DiscountAmount
		}
		return true, nil
	})
}

func (u *EstimateUseCase) ReplaceItems(ctx context.Context, organizationID, id string, items []LineItemInput) (entities.Estimate, error) {
	for _, it := range items {
		if err := validateInput(it); err != nil {
			return entities.Estimate{}, err
		}
	}
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		e.Items = buildItems(items)
		return true, nil
	})
}

func (u *EstimateUseCase) AddItem(ctx context.Context, organizationID, id string, item LineItemInput) (entities.Estimate, error) {
	if err := validateInput(item); err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		e.Items = append(e.Items, buildItems([]LineItemInput{item})...)
		return true, nil
	})
}

func (u *EstimateUseCase) UpdateItem(ctx context.Context, organizationID, id, itemID string, in UpdateLineItemInput) (entities.Estimate, error) {
	if err := validateInput(in); err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		i := e.Item(strings.TrimSpace(itemID))
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		it := &e.Items[i]
		if in.Description != nil {
			it.Description = strings.TrimSpace(*in.Description)
		}
		if in.Quantity != nil {
			it.SetQuantity(*in.Quantity)
		}
		if in.UnitPrice != nil {
			it.SetUnitPrice(*in.UnitPrice)
		}
		return true, nil
	})
}

func (u *EstimateUseCase) RemoveItem(ctx context.Context, organizationID, id, itemID string) (entities.Estimate, error) {
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		i := e.Item(strings.TrimSpace(itemID))
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		e.Items = append(e.Items[:i], e.Items[i+1:]...)
		return true, nil
	})
}

func (u *EstimateUseCase) Send(ctx context.Context, organizationID, id string) (entities.Estimate, error) {
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		return e.MarkSent(u.now()), nil
	})
}

func (u *EstimateUseCase) Reject(ctx context.Context, organizationID, id string) (entities.Estimate, error) {
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		return true, e.Reject()
	})
}

func (u *EstimateUseCase) Expire(ctx context.Context, organizationID, id string) (entities.Estimate, error) {
	return u.mutate(ctx, organizationID, id, func(e *entities.Estimate) (bool, error) {
		return true, e.Expire()
	})
}

// RenderDocument produces the client-facing document. Generating it is what
// sends a draft, so a Draft estimate moves to Sent once rendering succeeds.
func (u *EstimateUseCase) RenderDocument(ctx context.Context, organizationID, id string) (entities.Estimate, []byte, error) {
	if u.renderer == nil {
		return entities.Estimate{}, nil, ErrRendererNotConfigured
	}
	e, err := loadScoped(ctx, u.repo, organizationID, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}

	doc, err := u.renderer.RenderEstimate(ctx, e)
	if err != nil {
		u.logger.Error("estimate render failed", zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, nil, err
	}

	sent, err := u.Send(ctx, organizationID, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	u.logger.Info("estimate document generated",
		zap.String("estimate_id", sent.ID),
		zap.String("status", string(sent.Status)),
		zap.Int("bytes", len(doc)),
	)
	return sent, doc, nil
}

func (u *EstimateUseCase) mutate(ctx context.Context, organizationID, id string, fn mutation) (entities.Estimate, error) {
	load := func(ctx context.Context) (entities.Estimate, error) {
		return loadScoped(ctx, u.repo, organizationID, id)
	}
	_, after, err := u.applyMutation(ctx, u.repo, load, fn)
	if err != nil {
		u.logger.Warn("estimate update rejected", zap.String("estimate_id", id), zap.Error(err))
		return entities.Estimate{}, err
	}
	return after, nil
}
