package routes

import (
	"net/http"

	"estimate_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPayments  = "/payments"
	PathPublic    = "/public/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.PaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateDetails)
		estimates.PUT("/:id/pricing", estimateHandler.UpdatePricing)
		estimates.PUT("/:id/items", estimateHandler.ReplaceItems)
		estimates.POST("/:id/items", estimateHandler.AddItem)
		estimates.PATCH("/:id/items/:item_id", estimateHandler.UpdateItem)
		estimates.DELETE("/:id/items/:item_id", estimateHandler.RemoveItem)
		estimates.POST("/:id/send", estimateHandler.SendEstimate)
		estimates.POST("/:id/reject", estimateHandler.RejectEstimate)
		estimates.POST("/:id/expire", estimateHandler.ExpireEstimate)
		estimates.GET("/:id/document", estimateHandler.GetDocument)

		estimates.POST("/:id/payments", paymentHandler.CreatePayment)
		estimates.GET("/:id/payments", paymentHandler.ListPayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}

// addPublicRoutes registers the token-addressed routes. They carry no
// organization header.
func addPublicRoutes(rg *gin.RouterGroup, publicHandler *handlers.PublicEstimateHandler) {
	public := rg.Group(PathPublic)
	{
		public.GET("/:token", publicHandler.ViewEstimate)
		public.GET("/:token/status", publicHandler.EstimateStatus)
		public.POST("/:token/approve", publicHandler.ApproveEstimate)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
