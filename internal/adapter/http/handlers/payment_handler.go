package handlers

import (
	"errors"
	"log"
	"net/http"

	response "casamento_presentes/internal/adapter/http/dto/response"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetPayment godoc
// @Summary      Payment by ID
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Gateway payment ID"
// @Success      200  {object}  response.PaymentRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] get start payment_id=%s", id)

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

// ListPaymentsByGift godoc
// @Summary      Payments of a gift
// @Tags         payments
// @Produce      json
// @Param        gift_id  query  string  true  "Gift ID"
// @Success      200  {array}   response.PaymentRecordResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPaymentsByGift(c *gin.Context) {
	giftID := c.Query("gift_id")
	records, err := h.usecase.ListByGiftID(c.Request.Context(), giftID)
	if err != nil {
		log.Printf("[payment][handler] list failed gift_id=%s err=%v", giftID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] list success gift_id=%s count=%d", giftID, len(records))
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidGiftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		fe := usecase.ClassifyError(err)
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", fe.Message, err, http.StatusBadGateway).WithDetails(response.FromFriendlyError(fe))
	}
}
