package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "casamento_presentes/internal/adapter/http/dto/request"
	response "casamento_presentes/internal/adapter/http/dto/response"
	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/internal/usecase/checkout"
	"casamento_presentes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errInvalidAmount          = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Valor deve ser maior que zero", http.StatusBadRequest)
	errInvalidMethod          = pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Forma de pagamento inválida", http.StatusBadRequest)
)

// CheckoutHandler exposes the checkout sessions: one session per guest buying
// one gift, driven through PIX or credit card.
type CheckoutHandler struct {
	usecase checkout.ICheckoutUseCase
}

func NewCheckoutHandler(uc checkout.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// GetInstallments godoc
// @Summary      Installment options
// @Description  Installment table for an amount in reais: 1x interest free, +2.5% per extra installment.
// @Tags         checkout
// @Produce      json
// @Param        amount  query  string  true  "Amount in reais, e.g. 150.00"
// @Success      200  {array}   response.InstallmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /installments [get]
func (h *CheckoutHandler) GetInstallments(c *gin.Context) {
	amount, err := entities.ParseCents(c.Query("amount"))
	if err != nil || amount <= 0 {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallments(usecase.ComputeInstallments(amount)))
}

// CreateCheckout godoc
// @Summary      Open a checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateCheckoutRequest  true  "Checkout"
// @Success      201  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /checkouts [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}
	methods, err := payload.ResolveMethods()
	if err != nil {
		c.JSON(errInvalidMethod.HTTPStatus, errInvalidMethod.ToHTTPError())
		return
	}

	snap, err := h.usecase.Create(c.Request.Context(), checkout.CreateInput{
		GiftID:      strings.TrimSpace(payload.GiftID),
		Description: strings.TrimSpace(payload.Description),
		Amount:      amount,
		Customer:    payload.Customer.ToEntity(),
		Methods:     methods,
	})
	if err != nil {
		h.fail(c, "create", "", snap, err)
		return
	}
	log.Printf("[checkout][handler] create success checkout_id=%s gift_id=%s", snap.ID, snap.GiftID)
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// GetCheckout godoc
// @Summary      Checkout state
// @Description  Polled by the storefront while a PIX or hosted card payment is pending.
// @Tags         checkout
// @Produce      json
// @Param        id  path  string  true  "Checkout ID"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkouts/{id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	id := c.Param("id")
	snap, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// DeleteCheckout godoc
// @Summary      Close a checkout
// @Tags         checkout
// @Param        id  path  string  true  "Checkout ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkouts/{id} [delete]
func (h *CheckoutHandler) DeleteCheckout(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", id, checkout.Snapshot{}, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectMethod godoc
// @Summary      Select the payment method
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Checkout ID"
// @Param        body  body  request.SelectMethodRequest  true  "Method (PIX, CREDIT_CARD or empty)"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /checkouts/{id}/method [put]
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	id := c.Param("id")
	var payload request.SelectMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	method, err := request.ParsePaymentMethod(payload.Method)
	if err != nil {
		c.JSON(errInvalidMethod.HTTPStatus, errInvalidMethod.ToHTTPError())
		return
	}

	snap, err := h.usecase.SelectMethod(c.Request.Context(), id, method)
	if err != nil {
		h.fail(c, "select-method", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// GeneratePix godoc
// @Summary      Generate a PIX charge
// @Description  Returns the PIX code and QR image; the checkout then polls the gateway until the payment settles.
// @Tags         checkout
// @Produce      json
// @Param        id  path  string  true  "Checkout ID"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /checkouts/{id}/pix [post]
func (h *CheckoutHandler) GeneratePix(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[checkout][handler] pix start checkout_id=%s", id)
	snap, err := h.usecase.GeneratePix(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "pix", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// PayWithCard godoc
// @Summary      Pay by credit card
// @Description  Tokenizes the card and charges it. Hosted gateways answer with payment.checkout_url instead.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Checkout ID"
// @Param        body  body  request.CardPaymentRequest  true  "Card"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      402  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /checkouts/{id}/card [post]
func (h *CheckoutHandler) PayWithCard(c *gin.Context) {
	id := c.Param("id")
	var payload request.CardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] card start checkout_id=%s installments=%d", id, payload.Installments)
	snap, err := h.usecase.PayWithCard(c.Request.Context(), id, payload.ToForm(), payload.Installments)
	if err != nil {
		h.fail(c, "card", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ResetCheckout godoc
// @Summary      Start over
// @Description  Stops polling and clears payment data, selection and error.
// @Tags         checkout
// @Produce      json
// @Param        id  path  string  true  "Checkout ID"
// @Success      200  {object}  response.CheckoutResponse
// @Router       /checkouts/{id}/reset [post]
func (h *CheckoutHandler) ResetCheckout(c *gin.Context) {
	id := c.Param("id")
	snap, err := h.usecase.Reset(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "reset", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ClearError godoc
// @Summary      Dismiss the current error
// @Tags         checkout
// @Produce      json
// @Param        id  path  string  true  "Checkout ID"
// @Success      200  {object}  response.CheckoutResponse
// @Router       /checkouts/{id}/error [delete]
func (h *CheckoutHandler) ClearError(c *gin.Context) {
	id := c.Param("id")
	snap, err := h.usecase.ClearError(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "clear-error", id, snap, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *CheckoutHandler) fail(c *gin.Context, op, id string, snap checkout.Snapshot, err error) {
	appErr := mapCheckoutError(err)
	log.Printf("[checkout][handler] %s failed checkout_id=%s code=%s err=%v", op, id, appErr.Code, err)
	if snap.ID != "" {
		appErr = appErr.WithDetails(response.FromSnapshot(snap))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, checkout.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, checkout.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("CHECKOUT_CLOSED", "Checkout closed", http.StatusGone)
	case errors.Is(err, checkout.ErrInvalidTransition), errors.Is(err, checkout.ErrStaleResult):
		return pkg.NewDomainError("INVALID_CHECKOUT_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, checkout.ErrMethodUnavailable):
		return pkg.NewDomainError("PAYMENT_METHOD_UNAVAILABLE", err.Error(), err, http.StatusBadRequest)
	}

	fe := usecase.ClassifyError(err)
	code := strings.ToUpper(strings.ReplaceAll(string(fe.Category), "-", "_"))
	return pkg.NewDomainError(code, fe.Message, err, statusForCategory(fe.Category))
}

func statusForCategory(c entities.ErrorCategory) int {
	switch c {
	case entities.ErrorCategoryValidation, entities.ErrorCategoryCustomerNameRequired, entities.ErrorCategoryCardInvalid:
		return http.StatusUnprocessableEntity
	case entities.ErrorCategoryCardRejected, entities.ErrorCategoryInsufficientFunds:
		return http.StatusPaymentRequired
	case entities.ErrorCategoryPixExpired:
		return http.StatusGone
	case entities.ErrorCategoryGiftUnavailable:
		return http.StatusConflict
	case entities.ErrorCategoryGiftNotFound:
		return http.StatusNotFound
	case entities.ErrorCategoryTimeout:
		return http.StatusGatewayTimeout
	case entities.ErrorCategoryNetwork, entities.ErrorCategoryServerUnavailable, entities.ErrorCategoryPixGenerationFailed, entities.ErrorCategoryMercadoPagoSDK:
		return http.StatusBadGateway
	case entities.ErrorCategoryUnauthorized, entities.ErrorCategoryAuthInvalidCredentials, entities.ErrorCategorySessionExpired:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
