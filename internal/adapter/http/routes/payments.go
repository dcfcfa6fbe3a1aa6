package routes

import (
	"pagamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Create)
		payments.GET("", paymentHandler.List)
		payments.GET("/:id", paymentHandler.GetByID)
		payments.PUT("/:id", paymentHandler.UpdateStatus)
		payments.DELETE("/:id", paymentHandler.Delete)

		// Mercado Pago event notification listener.
		payments.POST("/webhook", paymentHandler.Webhook)
	}
}
