package handlers

import (
	"net/http"

	request "estimate_engine/internal/adapter/http/dto/request"
	response "estimate_engine/internal/adapter/http/dto/response"
	"estimate_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment ledger routes.
type PaymentHandler struct {
	usecase       usecase.IPaymentLedgerUseCase
	publicBaseURL string
}

func NewPaymentHandler(uc usecase.IPaymentLedgerUseCase, publicBaseURL string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, publicBaseURL: publicBaseURL}
}

// CreatePayment godoc
// @Summary  Record a payment against an estimate
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Param    body body request.AppendPaymentRequest true "Payment"
// @Success  201 {object} response.LedgerResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimates/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.AppendPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Append(c.Request.Context(), organizationID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLedgerResult(res, h.publicBaseURL))
}

// ListPayments godoc
// @Summary  List an estimate's payments by payment date
// @Tags     payments
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    id path string true "Estimate ID"
// @Success  200 {array} response.PaymentResponse
// @Router   /estimates/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListByEstimateID(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// GetPayment godoc
// @Summary  Get one payment
// @Tags     payments
// @Produce  json
// @Param    X-Organization-ID header string true "Organization"
// @Param    payment_id path string true "Payment ID"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), organizationID(c), c.Param("payment_id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}
