package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/infrastructure/pixcode"
	"casamento_presentes/internal/usecase/interfaces"
)

const GatewayMercadoPagoSDK = "mercadopago-sdk"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// mockQRCodePNG is a 1x1 PNG returned as QR image in mock mode.
const mockQRCodePNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// MockPix configures the BR Code synthesised in mock mode.
type MockPix struct {
	Key          string
	MerchantName string
	City         string
}

// MercadoPagoSDKGateway talks to Mercado Pago directly through sdk-go. In mock
// mode no call leaves the process: PIX charges get a locally built BR Code and
// are approved on the first status check, cards are approved at once.
type MercadoPagoSDKGateway struct {
	client          payment.Client
	mockMode        bool
	mockPix         MockPix
	notificationURL string
	now             func() time.Time

	mu    sync.Mutex
	mocks map[string]entities.PaymentResponse
}

var _ interfaces.IPaymentGateway = (*MercadoPagoSDKGateway)(nil)

func NewMercadoPagoSDKGateway(accessToken string, mockMode bool, mockPix MockPix, notificationURL string) (*MercadoPagoSDKGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoSDKGateway{mockMode: true, mockPix: mockPix, now: time.Now, mocks: map[string]entities.PaymentResponse{}}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoSDKGatewayWithClient(payment.NewClient(cfg), notificationURL), nil
}

func newMercadoPagoSDKGatewayWithClient(client payment.Client, notificationURL string) *MercadoPagoSDKGateway {
	return &MercadoPagoSDKGateway{client: client, notificationURL: notificationURL, now: time.Now}
}

func (g *MercadoPagoSDKGateway) Name() string { return GatewayMercadoPagoSDK }

func (g *MercadoPagoSDKGateway) RequiresCardToken() bool { return true }

// mpAPIPayment is the subset of the Mercado Pago payment resource we read.
type mpAPIPayment struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	StatusDetail       string  `json:"status_detail"`
	TransactionAmount  float64 `json:"transaction_amount"`
	Description        string  `json:"description"`
	ExternalReference  string  `json:"external_reference"`
	Installments       int     `json:"installments"`
	PaymentMethodID    string  `json:"payment_method_id"`
	DateCreated        string  `json:"date_created"`
	DateLastUpdated    string  `json:"date_last_updated"`
	DateApproved       string  `json:"date_approved"`
	DateOfExpiration   string  `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoSDKGateway) GeneratePixPayment(ctx context.Context, req interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
	if g != nil && g.mockMode {
		return g.mockPixPayment(req)
	}

	now := g.now()
	payload := g.basePayload(req.Amount, req.Description, req.Customer, req.GiftID)
	payload["payment_method_id"] = "pix"
	payload["date_of_expiration"] = now.Add(pixDefaultTTL).Format("2006-01-02T15:04:05.000-07:00")

	p, err := g.create(ctx, payload)
	if err != nil {
		return entities.PixPayment{}, entities.PaymentResponse{}, err
	}

	resp := toSDKResponse(p, entities.PaymentMethodPix, req.Customer, now)
	resp.GiftID = req.GiftID
	expiresAt := timeOr(p.DateOfExpiration, now.Add(pixDefaultTTL))
	resp.ExpiresAt = &expiresAt
	pix := entities.PixPayment{
		ID:           resp.ID,
		QRCodeBase64: resp.QRCodeBase64,
		PixCode:      resp.PixCode,
		Amount:       req.Amount,
		ExpiresAt:    expiresAt,
		Status:       resp.Status,
	}
	return pix, resp, nil
}

func (g *MercadoPagoSDKGateway) ChargeCreditCard(ctx context.Context, req interfaces.CardChargeRequest) (entities.PaymentResponse, error) {
	if strings.TrimSpace(req.Token.ID) == "" {
		return entities.PaymentResponse{}, errors.New("token do cartão é obrigatório")
	}
	if g != nil && g.mockMode {
		return g.mockCardPayment(req), nil
	}

	payload := g.basePayload(req.Amount, req.Description, req.Customer, req.GiftID)
	payload["token"] = req.Token.ID
	payload["installments"] = req.Installments
	if req.Token.Brand != "" {
		payload["payment_method_id"] = req.Token.Brand
	}

	p, err := g.create(ctx, payload)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	resp := toSDKResponse(p, entities.PaymentMethodCreditCard, req.Customer, g.now())
	resp.GiftID = req.GiftID
	return resp, nil
}

func (g *MercadoPagoSDKGateway) GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentResponse{}, ErrMissingPaymentID
	}
	if g != nil && g.mockMode {
		return g.mockStatus(paymentID)
	}
	if g == nil || g.client == nil {
		return entities.PaymentResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, fmt.Errorf("invalid mercado pago payment id %q: %w", paymentID, err)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentResponse{}, err
	}
	p, err := decodeSDKPayment(resp)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	method := entities.PaymentMethodCreditCard
	if p.PaymentMethodID == "pix" {
		method = entities.PaymentMethodPix
	}
	return toSDKResponse(p, method, entities.Customer{}, g.now()), nil
}

func (g *MercadoPagoSDKGateway) basePayload(amount entities.Cents, description string, c entities.Customer, giftID string) map[string]any {
	first, last := splitName(c.Name)
	payer := map[string]any{
		"email":      c.Email,
		"first_name": first,
		"last_name":  last,
	}
	if doc := entities.OnlyDigits(c.Document); doc != "" {
		docType := "CPF"
		if len(doc) == 14 {
			docType = "CNPJ"
		}
		payer["identification"] = map[string]any{"type": docType, "number": doc}
	}
	payload := map[string]any{
		"transaction_amount": amount.Reais(),
		"description":        description,
		"payer":              payer,
	}
	if giftID != "" {
		payload["external_reference"] = giftID
	}
	if g.notificationURL != "" {
		payload["notification_url"] = g.notificationURL
	}
	return payload
}

func (g *MercadoPagoSDKGateway) create(ctx context.Context, payload map[string]any) (mpAPIPayment, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return mpAPIPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return mpAPIPayment{}, err
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(b))

	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return mpAPIPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return mpAPIPayment{}, err
	}
	p, err := decodeSDKPayment(resp)
	if err != nil {
		return mpAPIPayment{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", p.ID, p.Status)
	return p, nil
}

func decodeSDKPayment(resp *payment.Response) (mpAPIPayment, error) {
	if resp == nil {
		return mpAPIPayment{}, ErrInvalidResponse
	}
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return mpAPIPayment{}, err
	}
	var p mpAPIPayment
	if err := json.Unmarshal(b, &p); err != nil {
		return mpAPIPayment{}, err
	}
	return p, nil
}

func toSDKResponse(p mpAPIPayment, method entities.PaymentMethodID, customer entities.Customer, now time.Time) entities.PaymentResponse {
	status := entities.NormalizePaymentStatus(p.Status)
	if strings.Contains(p.StatusDetail, "insufficient") && status == entities.PaymentStatusRejected {
		log.Printf("[payment][gateway] rejected for insufficient funds payment_id=%d", p.ID)
	}
	return entities.PaymentResponse{
		ID:           strconv.FormatInt(p.ID, 10),
		Status:       status,
		StatusDetail: p.StatusDetail,
		Method:       method,
		Amount:       entities.CentsFromReais(p.TransactionAmount),
		Description:  p.Description,
		Customer:     customer,
		GiftID:       p.ExternalReference,
		CreatedAt:    timeOr(p.DateCreated, now),
		UpdatedAt:    timeOr(p.DateLastUpdated, now),
		ApprovedAt:   timePtr(p.DateApproved),
		Installments: p.Installments,
		PixCode:      p.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: p.PointOfInteraction.TransactionData.QRCodeBase64,
		ExpiresAt:    timePtr(p.DateOfExpiration),
	}
}

func (g *MercadoPagoSDKGateway) mockPixPayment(req interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
	log.Printf("[payment][gateway] mock pix create start amount=%s", req.Amount)
	id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	code, err := pixcode.BuildPayload(pixcode.Data{
		Key:          g.mockPix.Key,
		MerchantName: g.mockPix.MerchantName,
		City:         g.mockPix.City,
		Amount:       req.Amount,
		Description:  req.GiftID,
	})
	if err != nil {
		return entities.PixPayment{}, entities.PaymentResponse{}, fmt.Errorf("mock pix payload: %w", err)
	}

	now := g.now()
	expiresAt := now.Add(pixDefaultTTL)
	resp := entities.PaymentResponse{
		ID:           id,
		Status:       entities.PaymentStatusPending,
		Method:       entities.PaymentMethodPix,
		Amount:       req.Amount,
		Description:  req.Description,
		Customer:     req.Customer,
		GiftID:       req.GiftID,
		CreatedAt:    now,
		UpdatedAt:    now,
		PixCode:      code,
		QRCodeBase64: mockQRCodePNG,
		ExpiresAt:    &expiresAt,
	}
	g.mu.Lock()
	g.mocks[id] = resp
	g.mu.Unlock()

	log.Printf("[payment][gateway] mock pix create success provider_payment_id=%s provider_status=pending", id)
	return entities.PixPayment{
		ID:           id,
		QRCodeBase64: mockQRCodePNG,
		PixCode:      code,
		Amount:       req.Amount,
		ExpiresAt:    expiresAt,
		Status:       entities.PaymentStatusPending,
	}, resp, nil
}

func (g *MercadoPagoSDKGateway) mockCardPayment(req interfaces.CardChargeRequest) entities.PaymentResponse {
	now := g.now()
	resp := entities.PaymentResponse{
		ID:           strconv.FormatInt(now.UTC().UnixNano(), 10),
		Status:       entities.PaymentStatusApproved,
		Method:       entities.PaymentMethodCreditCard,
		Amount:       req.Amount,
		Description:  req.Description,
		Customer:     req.Customer,
		GiftID:       req.GiftID,
		CreatedAt:    now,
		UpdatedAt:    now,
		ApprovedAt:   &now,
		Installments: req.Installments,
	}
	g.mu.Lock()
	g.mocks[resp.ID] = resp
	g.mu.Unlock()
	log.Printf("[payment][gateway] mock card charge success provider_payment_id=%s provider_status=approved", resp.ID)
	return resp
}

func (g *MercadoPagoSDKGateway) mockStatus(paymentID string) (entities.PaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	resp, ok := g.mocks[paymentID]
	if !ok {
		return entities.PaymentResponse{}, &HTTPError{Status: 404, Message: "payment not found"}
	}
	if resp.Status == entities.PaymentStatusPending {
		now := g.now()
		resp.Status = entities.PaymentStatusApproved
		resp.UpdatedAt = now
		resp.ApprovedAt = &now
		g.mocks[paymentID] = resp
	}
	return resp, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
