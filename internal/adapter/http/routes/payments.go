package routes

import (
	"orcamento_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_request_id", paymentHandler.CreatePaymentByBudgetRequestID)
		payments.GET("/:budget_request_id", paymentHandler.GetPaymentByBudgetRequestID)
	}
}
