package payments

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

const (
	GatewayMercadoPago = "mercadopago"
	pixDefaultTTL      = 30 * time.Minute
)

var ErrMissingPaymentID = errors.New("payment id is required")

type mpCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type mpPaymentRequest struct {
	Method       entities.PaymentMethodID `json:"method"`
	Amount       entities.Cents           `json:"amount"`
	Description  string                   `json:"description"`
	Customer     mpCustomer               `json:"customer"`
	CardToken    string                   `json:"cardToken,omitempty"`
	Installments int                      `json:"installments,omitempty"`
	GiftID       string                   `json:"giftId,omitempty"`
}

type mpPaymentData struct {
	ID              flexID         `json:"id"`
	Status          string         `json:"status"`
	StatusDetail    string         `json:"statusDetail"`
	Method          string         `json:"method"`
	Amount          entities.Cents `json:"amount"`
	Description     string         `json:"description"`
	Customer        *mpCustomer    `json:"customer"`
	GiftID          string         `json:"giftId"`
	PixQrCode       string         `json:"pixQrCode"`
	PixQrCodeBase64 string         `json:"pixQrCodeBase64"`
	ExpiresAt       string         `json:"expiresAt"`
	Installments    int            `json:"installments"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
	ApprovedAt      string         `json:"approvedAt"`
}

// MercadoPagoGateway drives Mercado Pago through the wedding backend's REST
// contract. Amounts travel in reais.
type MercadoPagoGateway struct {
	client *BackendClient
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(client *BackendClient) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, now: time.Now}
}

func (g *MercadoPagoGateway) Name() string { return GatewayMercadoPago }

func (g *MercadoPagoGateway) RequiresCardToken() bool { return true }

func (g *MercadoPagoGateway) GeneratePixPayment(ctx context.Context, req interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
	log.Printf("[payment][mercadopago] pix create start amount=%s gift_id=%s", req.Amount, req.GiftID)
	body := mpPaymentRequest{
		Method:      entities.PaymentMethodPix,
		Amount:      req.Amount,
		Description: req.Description,
		Customer:    toMPCustomer(req.Customer),
		GiftID:      req.GiftID,
	}

	var data mpPaymentData
	if err := g.client.Do(ctx, http.MethodPost, "/api/payments", body, &data, true); err != nil {
		return entities.PixPayment{}, entities.PaymentResponse{}, err
	}

	now := g.now()
	resp := g.toResponse(data, entities.PaymentMethodPix, req.Customer, now)
	resp.Amount = req.Amount
	if resp.Description == "" {
		resp.Description = req.Description
	}
	expiresAt := timeOr(data.ExpiresAt, now.Add(pixDefaultTTL))
	resp.ExpiresAt = &expiresAt

	pix := entities.PixPayment{
		ID:           string(data.ID),
		QRCodeBase64: data.PixQrCodeBase64,
		PixCode:      data.PixQrCode,
		Amount:       req.Amount,
		ExpiresAt:    expiresAt,
		Status:       resp.Status,
	}
	log.Printf("[payment][mercadopago] pix create success payment_id=%s status=%s", pix.ID, pix.Status)
	return pix, resp, nil
}

func (g *MercadoPagoGateway) ChargeCreditCard(ctx context.Context, req interfaces.CardChargeRequest) (entities.PaymentResponse, error) {
	if strings.TrimSpace(req.Token.ID) == "" {
		return entities.PaymentResponse{}, errors.New("token do cartão é obrigatório")
	}
	log.Printf("[payment][mercadopago] card charge start amount=%s installments=%d gift_id=%s", req.Amount, req.Installments, req.GiftID)
	body := mpPaymentRequest{
		Method:       entities.PaymentMethodCreditCard,
		Amount:       req.Amount,
		Description:  req.Description,
		Customer:     toMPCustomer(req.Customer),
		CardToken:    req.Token.ID,
		Installments: req.Installments,
		GiftID:       req.GiftID,
	}

	var data mpPaymentData
	if err := g.client.Do(ctx, http.MethodPost, "/api/payments", body, &data, true); err != nil {
		return entities.PaymentResponse{}, err
	}

	resp := g.toResponse(data, entities.PaymentMethodCreditCard, req.Customer, g.now())
	resp.Amount = req.Amount
	if resp.Description == "" {
		resp.Description = req.Description
	}
	log.Printf("[payment][mercadopago] card charge done payment_id=%s status=%s", resp.ID, resp.Status)
	return resp, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentResponse{}, ErrMissingPaymentID
	}

	var data mpPaymentData
	if err := g.client.Do(ctx, http.MethodGet, "/api/payments/"+url.PathEscape(paymentID), nil, &data, false); err != nil {
		return entities.PaymentResponse{}, err
	}
	method := entities.PaymentMethodID(strings.ToUpper(data.Method))
	if method == "" {
		method = entities.PaymentMethodPix
	}
	resp := g.toResponse(data, method, entities.Customer{}, g.now())
	if resp.ID == "" {
		resp.ID = paymentID
	}
	return resp, nil
}

func (g *MercadoPagoGateway) toResponse(data mpPaymentData, method entities.PaymentMethodID, customer entities.Customer, now time.Time) entities.PaymentResponse {
	if data.Customer != nil {
		customer = entities.Customer{Name: data.Customer.Name, Email: data.Customer.Email, Document: data.Customer.Document}
	}
	return entities.PaymentResponse{
		ID:           string(data.ID),
		Status:       entities.NormalizePaymentStatus(data.Status),
		StatusDetail: data.StatusDetail,
		Method:       method,
		Amount:       data.Amount,
		Description:  data.Description,
		Customer:     customer,
		GiftID:       data.GiftID,
		CreatedAt:    timeOr(data.CreatedAt, now),
		UpdatedAt:    timeOr(data.UpdatedAt, now),
		ApprovedAt:   timePtr(data.ApprovedAt),
		Installments: data.Installments,
		PixCode:      data.PixQrCode,
		QRCodeBase64: data.PixQrCodeBase64,
		ExpiresAt:    timePtr(data.ExpiresAt),
	}
}

func toMPCustomer(c entities.Customer) mpCustomer {
	return mpCustomer{Name: c.Name, Email: c.Email, Document: c.Document}
}
