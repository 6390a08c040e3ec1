package handlers

import (
	"net/http"

	response "estimate_engine/internal/adapter/http/dto/response"
	"estimate_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PublicEstimateHandler serves token-addressed routes for clients. No session
// or organization header is involved.
type PublicEstimateHandler struct {
	usecase usecase.IPublicApprovalUseCase
}

func NewPublicEstimateHandler(uc usecase.IPublicApprovalUseCase) *PublicEstimateHandler {
	return &PublicEstimateHandler{usecase: uc}
}

// ViewEstimate godoc
// @Summary  Open an estimate via its public link
// @Tags     public
// @Produce  json
// @Param    token path string true "Public token"
// @Success  200 {object} response.PublicEstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /public/estimates/{token} [get]
func (h *PublicEstimateHandler) ViewEstimate(c *gin.Context) {
	view, err := h.usecase.OnView(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWith(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicView(view))
}

// EstimateStatus godoc
// @Summary  Read an estimate via its public link without recording a view
// @Tags     public
// @Produce  json
// @Param    token path string true "Public token"
// @Success  200 {object} response.PublicEstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /public/estimates/{token}/status [get]
func (h *PublicEstimateHandler) EstimateStatus(c *gin.Context) {
	view, err := h.usecase.FetchByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWith(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicView(view))
}

// ApproveEstimate godoc
// @Summary  Approve an estimate via its public link
// @Tags     public
// @Produce  json
// @Param    token path string true "Public token"
// @Success  200 {object} response.ApprovalResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /public/estimates/{token}/approve [post]
func (h *PublicEstimateHandler) ApproveEstimate(c *gin.Context) {
	res, err := h.usecase.Approve(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWith(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(res))
}
