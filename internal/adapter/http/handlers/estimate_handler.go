package handlers

import (
	"context"
	"net/http"

	request "estimate_engine/internal/adapter/http/dto/request"
	response "estimate_engine/internal/adapter/http/dto/response"
	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the admin estimate routes. Every route is scoped by the
// X-Organization-ID header.
type EstimateHandler struct {
	usecase       usecase.IEstimateUseCase
	publicBaseURL string
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, publicBaseURL string) *EstimateHandler {
	return &EstimateHandler{usecase: uc, publicBaseURL: publicBaseURL}
}

// CreateEstimate godoc
// @Summary  Create a draft estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    body body request.CreateEstimateRequest true "Estimate"
// @Success  201 {object} response.EstimateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), organizationID(c), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate, h.publicBaseURL))
}

// GetEstimate godoc
// @Summary  Get an estimate
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.GetByID(ctx, org, id)
	})
}

// ListEstimates godoc
// @Summary  List the organization's estimates, newest first
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Success  200 {array} response.EstimateResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.ListByOrganization(c.Request.Context(), organizationID(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list, h.publicBaseURL))
}

// UpdateDetails godoc
// @Summary  Edit client, address and note fields
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    body body request.UpdateDetailsRequest true "Fields to change"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id} [patch]
func (h *EstimateHandler) UpdateDetails(c *gin.Context) {
	var payload request.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.UpdateDetails(ctx, org, id, payload.ToInput())
	})
}

// UpdatePricing godoc
// @Summary  Change tax rate or discount
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    body body request.PricingRequest true "Pricing"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/pricing [put]
func (h *EstimateHandler) UpdatePricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.UpdatePricing(ctx, org, id, payload.ToInput())
	})
}

// ReplaceItems godoc
// @Summary  Replace all line items
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    body body request.ReplaceItemsRequest true "Items"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/items [put]
func (h *EstimateHandler) ReplaceItems(c *gin.Context) {
	var payload request.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.ReplaceItems(ctx, org, id, payload.ToInput())
	})
}

// AddItem godoc
// @Summary  Append a line item
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    body body request.LineItemRequest true "Item"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/items [post]
func (h *EstimateHandler) AddItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.AddItem(ctx, org, id, payload.ToInput())
	})
}

// UpdateItem godoc
// @Summary  Edit one line item
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    item_id path string true "Line item ID"
// @Param    body body request.UpdateLineItemRequest true "Fields to change"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/items/{item_id} [patch]
func (h *EstimateHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.UpdateItem(ctx, org, id, c.Param("item_id"), payload.ToInput())
	})
}

// RemoveItem godoc
// @Summary  Remove one line item
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    item_id path string true "Line item ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/items/{item_id} [delete]
func (h *EstimateHandler) RemoveItem(c *gin.Context) {
	h.respond(c, func(ctx context.Context, org, id string) (entities.Estimate, error) {
		return h.usecase.RemoveItem(ctx, org, id, c.Param("item_id"))
	})
}

// SendEstimate godoc
// @Summary  Mark a draft as sent
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.respond(c, h.usecase.Send)
}

// RejectEstimate godoc
// @Summary  Record that the client declined
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /estimates/{id}/reject [post]
func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.respond(c, h.usecase.Reject)
}

// ExpireEstimate godoc
// @Summary  Close an estimate that lapsed
// @Tags     estimates
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /estimates/{id}/expire [post]
func (h *EstimateHandler) ExpireEstimate(c *gin.Context) {
	h.respond(c, h.usecase.Expire)
}

// GetDocument godoc
// @Summary  Render the estimate PDF; a draft becomes sent
// @Tags     estimates
// @Produce  application/pdf
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {file} binary
// @Router   /estimates/{id}/document [get]
func (h *EstimateHandler) GetDocument(c *gin.Context) {
	estimate, doc, err := h.usecase.RenderDocument(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.Header("Content-Disposition", `inline; filename="estimate-`+estimate.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *EstimateHandler) respond(c *gin.Context, fn func(ctx context.Context, organizationID, id string) (entities.Estimate, error)) {
	estimate, err := fn(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate, h.publicBaseURL))
}
