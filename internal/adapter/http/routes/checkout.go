package routes

import (
	"casamento_presentes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckouts       = "/checkouts"
	PathInstallments    = "/installments"
	PathPayments        = "/payments"
	PathPagBankCheckout = "/pagbank/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	rg.GET(PathInstallments, h.GetInstallments)

	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.POST("", h.CreateCheckout)
		checkouts.GET("/:id", h.GetCheckout)
		checkouts.DELETE("/:id", h.DeleteCheckout)
		checkouts.PUT("/:id/method", h.SelectMethod)
		checkouts.POST("/:id/pix", h.GeneratePix)
		checkouts.POST("/:id/card", h.PayWithCard)
		checkouts.POST("/:id/reset", h.ResetCheckout)
		checkouts.DELETE("/:id/error", h.ClearError)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, hostedHandler *handlers.HostedCheckoutHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.ListPaymentsByGift)
		payments.GET("/:id", paymentHandler.GetPayment)
	}

	pagbank := rg.Group(PathPagBankCheckout)
	{
		pagbank.POST("", hostedHandler.CreateCheckout)
		pagbank.GET("/:id/status", hostedHandler.GetCheckoutStatus)
	}
}
