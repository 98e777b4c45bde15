package handlers

import (
	"errors"
	"log"
	"net/http"

	request "casamento_presentes/internal/adapter/http/dto/request"
	response "casamento_presentes/internal/adapter/http/dto/response"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/pkg"

	"github.com/gin-gonic/gin"
)

// HostedCheckoutHandler creates PagBank hosted checkouts and reports their status.
type HostedCheckoutHandler struct {
	usecase     usecase.IHostedCheckoutUseCase
	redirectURL string
}

// NewHostedCheckoutHandler uses redirectURL when a request does not bring its own.
func NewHostedCheckoutHandler(uc usecase.IHostedCheckoutUseCase, redirectURL string) *HostedCheckoutHandler {
	return &HostedCheckoutHandler{usecase: uc, redirectURL: redirectURL}
}

// CreateCheckout godoc
// @Summary      Create a PagBank checkout
// @Description  Returns the hosted payment page the guest must be redirected to.
// @Tags         pagbank
// @Accept       json
// @Produce      json
// @Param        body  body  request.HostedCheckoutRequest  true  "Checkout"
// @Success      201  {object}  response.HostedCheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /pagbank/checkout [post]
func (h *HostedCheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.HostedCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pagbank][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	req := payload.ToEntity()
	if req.RedirectURL == "" {
		req.RedirectURL = h.redirectURL
	}

	created, err := h.usecase.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("[pagbank][handler] create failed gift_id=%s err=%v", req.GiftID, err)
		appErr := mapHostedCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagbank][handler] create success checkout_id=%s", created.ID)
	c.JSON(http.StatusCreated, response.FromHostedCheckout(created))
}

// GetCheckoutStatus godoc
// @Summary      PagBank checkout status
// @Tags         pagbank
// @Produce      json
// @Param        id  path  string  true  "PagBank checkout ID"
// @Success      200  {object}  response.HostedCheckoutStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pagbank/checkout/{id}/status [get]
func (h *HostedCheckoutHandler) GetCheckoutStatus(c *gin.Context) {
	id := c.Param("id")
	st, err := h.usecase.GetStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[pagbank][handler] status failed checkout_id=%s err=%v", id, err)
		appErr := mapHostedCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHostedCheckoutStatus(st))
}

func mapHostedCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHostedCheckoutUnavailable):
		return pkg.NewDomainErrorSimple("PAGBANK_NOT_CONFIGURED", "PagBank checkout is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidHostedAmount), errors.Is(err, usecase.ErrInvalidHostedMethod),
		errors.Is(err, usecase.ErrInvalidMaxInstallments), errors.Is(err, usecase.ErrInvalidCheckoutID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	}

	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound {
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	}
	fe := usecase.ClassifyError(err)
	return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", fe.Message, err, http.StatusBadGateway).WithDetails(response.FromFriendlyError(fe))
}
