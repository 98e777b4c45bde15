package payments

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

const (
	GatewayPagBank = "pagbank"

	pagBankCheckoutTTL       = 2 * time.Hour
	pagBankInstallmentsLimit = 12
	pagBankInterestFree      = 1
	defaultSoftDescriptor    = "Casamento"
	pagBankPayRel            = "PAY"
	pagBankQRCodeRel         = "QRCODE.PNG"
)

var (
	ErrPagBankPayLinkMissing = errors.New("Link de pagamento não encontrado na resposta")
	ErrPagBankQRCodeMissing  = errors.New("QR code PIX não encontrado na resposta do PagBank")
)

type pbCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

type pbItem struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int64  `json:"unit_amount"`
}

type pbPaymentMethod struct {
	Type string `json:"type"`
}

type pbConfigOption struct {
	Option string `json:"option"`
	Value  string `json:"value"`
}

type pbPaymentMethodConfig struct {
	Type          string           `json:"type"`
	ConfigOptions []pbConfigOption `json:"config_options,omitempty"`
}

type pbCheckoutRequest struct {
	ReferenceID             string                  `json:"reference_id"`
	CustomerModifiable      bool                    `json:"customer_modifiable"`
	Customer                *pbCustomer             `json:"customer,omitempty"`
	Items                   []pbItem                `json:"items"`
	PaymentMethods          []pbPaymentMethod       `json:"payment_methods,omitempty"`
	PaymentMethodsConfigs   []pbPaymentMethodConfig `json:"payment_methods_configs,omitempty"`
	SoftDescriptor          string                  `json:"soft_descriptor,omitempty"`
	RedirectURL             string                  `json:"redirect_url,omitempty"`
	NotificationURLs        []string                `json:"notification_urls,omitempty"`
	PaymentNotificationURLs []string                `json:"payment_notification_urls,omitempty"`
	ExpirationDate          string                  `json:"expiration_date,omitempty"`
}

type pbLink struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

type pbCheckoutResponse struct {
	ID             string   `json:"id"`
	ReferenceID    string   `json:"reference_id"`
	CreatedAt      string   `json:"created_at"`
	ExpirationDate string   `json:"expiration_date"`
	Links          []pbLink `json:"links"`
	QRCodes        []struct {
		ID    string   `json:"id"`
		Text  string   `json:"text"`
		Links []pbLink `json:"links"`
	} `json:"qr_codes"`
}

type pbStatusResponse struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	Amount      struct {
		Value    int64  `json:"value"`
		Currency string `json:"currency"`
	} `json:"amount"`
	PaymentMethod struct {
		Type         string `json:"type"`
		Installments int    `json:"installments"`
	} `json:"payment_method"`
}

// PagBankOptions are the fixed parts of every hosted checkout.
type PagBankOptions struct {
	SoftDescriptor string
	RedirectURL    string
	// Token replaces the backend token on PagBank calls when set.
	Token string
}

// PagBankGateway drives PagBank hosted checkouts through the backend. Amounts
// travel in centavos. Card data is typed on PagBank's own page, so card
// charges come back pending with the redirect URL.
type PagBankGateway struct {
	client *BackendClient
	opts   PagBankOptions
	now    func() time.Time
}

var (
	_ interfaces.IPaymentGateway        = (*PagBankGateway)(nil)
	_ interfaces.IHostedCheckoutGateway = (*PagBankGateway)(nil)
)

func NewPagBankGateway(client *BackendClient, opts PagBankOptions) *PagBankGateway {
	if strings.TrimSpace(opts.SoftDescriptor) == "" {
		opts.SoftDescriptor = defaultSoftDescriptor
	}
	return &PagBankGateway{client: client.WithAuthToken(opts.Token), opts: opts, now: time.Now}
}

func (g *PagBankGateway) Name() string { return GatewayPagBank }

func (g *PagBankGateway) RequiresCardToken() bool { return false }

func (g *PagBankGateway) CreateCheckout(ctx context.Context, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error) {
	if req.Amount <= 0 {
		return entities.HostedCheckout{}, errors.New("Valor deve ser maior que zero")
	}
	body := g.checkoutRequest(req)
	log.Printf("[payment][pagbank] checkout create start reference_id=%s amount=%d methods=%d", body.ReferenceID, req.Amount, len(body.PaymentMethods))

	var out pbCheckoutResponse
	if err := g.client.Do(ctx, http.MethodPost, "/api/pagbank/checkout", body, &out, true); err != nil {
		return entities.HostedCheckout{}, err
	}

	checkout := entities.HostedCheckout{
		ID:          out.ID,
		ReferenceID: out.ReferenceID,
		CreatedAt:   timeOr(out.CreatedAt, g.now()),
		ExpiresAt:   timeOr(out.ExpirationDate, g.now().Add(pagBankCheckoutTTL)),
	}
	if checkout.ReferenceID == "" {
		checkout.ReferenceID = body.ReferenceID
	}
	if pay, ok := findLink(out.Links, pagBankPayRel); ok {
		checkout.PaymentURL = pay.Href
	}
	if len(out.QRCodes) > 0 {
		checkout.PixCode = out.QRCodes[0].Text
		if img, ok := findLink(out.QRCodes[0].Links, pagBankQRCodeRel); ok {
			checkout.QRCodeImageURL = img.Href
		}
	}
	if checkout.PaymentURL == "" && checkout.PixCode == "" {
		return entities.HostedCheckout{}, ErrPagBankPayLinkMissing
	}
	log.Printf("[payment][pagbank] checkout create success checkout_id=%s", checkout.ID)
	return checkout, nil
}

func (g *PagBankGateway) GetCheckoutStatus(ctx context.Context, checkoutID string) (entities.HostedCheckoutStatus, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.HostedCheckoutStatus{}, ErrMissingPaymentID
	}

	var out pbStatusResponse
	path := "/api/pagbank/checkout/" + url.PathEscape(checkoutID) + "/status"
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return entities.HostedCheckoutStatus{}, fmt.Errorf("Erro ao consultar status: %w", err)
	}
	st := entities.HostedCheckoutStatus{
		ID:            out.ID,
		ReferenceID:   out.ReferenceID,
		Status:        strings.ToUpper(out.Status),
		PaymentStatus: MapPagBankStatus(out.Status),
		Amount:        entities.Cents(out.Amount.Value),
		Currency:      out.Amount.Currency,
		PaymentMethod: out.PaymentMethod.Type,
		Installments:  out.PaymentMethod.Installments,
		CreatedAt:     timeOr(out.CreatedAt, time.Time{}),
	}
	if st.ID == "" {
		st.ID = checkoutID
	}
	return st, nil
}

func (g *PagBankGateway) GeneratePixPayment(ctx context.Context, req interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
	checkout, err := g.CreateCheckout(ctx, entities.HostedCheckoutRequest{
		GiftID:      req.GiftID,
		Description: req.Description,
		Amount:      req.Amount,
		Customer:    req.Customer,
		Methods:     []entities.HostedCheckoutMethod{entities.HostedMethodPix},
	})
	if err != nil {
		return entities.PixPayment{}, entities.PaymentResponse{}, err
	}
	if checkout.PixCode == "" || checkout.QRCodeImageURL == "" {
		return entities.PixPayment{}, entities.PaymentResponse{}, ErrPagBankQRCodeMissing
	}

	img, err := g.client.Fetch(ctx, checkout.QRCodeImageURL)
	if err != nil {
		log.Printf("[payment][pagbank] qr code download failed checkout_id=%s err=%v", checkout.ID, err)
		return entities.PixPayment{}, entities.PaymentResponse{}, fmt.Errorf("falha ao baixar QR code PIX: %w", err)
	}
	qr := base64.StdEncoding.EncodeToString(img)

	expiresAt := checkout.ExpiresAt
	resp := entities.PaymentResponse{
		ID:           checkout.ID,
		Status:       entities.PaymentStatusPending,
		Method:       entities.PaymentMethodPix,
		Amount:       req.Amount,
		Description:  req.Description,
		Customer:     req.Customer,
		GiftID:       req.GiftID,
		CreatedAt:    checkout.CreatedAt,
		UpdatedAt:    checkout.CreatedAt,
		PixCode:      checkout.PixCode,
		QRCodeBase64: qr,
		ExpiresAt:    &expiresAt,
		CheckoutURL:  checkout.PaymentURL,
	}
	pix := entities.PixPayment{
		ID:           checkout.ID,
		QRCodeBase64: qr,
		PixCode:      checkout.PixCode,
		Amount:       req.Amount,
		ExpiresAt:    expiresAt,
		Status:       entities.PaymentStatusPending,
	}
	return pix, resp, nil
}

func (g *PagBankGateway) ChargeCreditCard(ctx context.Context, req interfaces.CardChargeRequest) (entities.PaymentResponse, error) {
	checkout, err := g.CreateCheckout(ctx, entities.HostedCheckoutRequest{
		GiftID:          req.GiftID,
		Description:     req.Description,
		Amount:          req.Amount,
		Customer:        req.Customer,
		Methods:         []entities.HostedCheckoutMethod{entities.HostedMethodCreditCard},
		MaxInstallments: req.Installments,
	})
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if checkout.PaymentURL == "" {
		return entities.PaymentResponse{}, ErrPagBankPayLinkMissing
	}
	return entities.PaymentResponse{
		ID:           checkout.ID,
		Status:       entities.PaymentStatusPending,
		Method:       entities.PaymentMethodCreditCard,
		Amount:       req.Amount,
		Description:  req.Description,
		Customer:     req.Customer,
		GiftID:       req.GiftID,
		CreatedAt:    checkout.CreatedAt,
		UpdatedAt:    checkout.CreatedAt,
		Installments: req.Installments,
		CheckoutURL:  checkout.PaymentURL,
	}, nil
}

func (g *PagBankGateway) GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	st, err := g.GetCheckoutStatus(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	resp := entities.PaymentResponse{
		ID:           st.ID,
		Status:       st.PaymentStatus,
		Amount:       st.Amount,
		Installments: st.Installments,
		CreatedAt:    st.CreatedAt,
		UpdatedAt:    g.now(),
	}
	if st.PaymentStatus == entities.PaymentStatusApproved {
		at := resp.UpdatedAt
		resp.ApprovedAt = &at
	}
	return resp, nil
}

// MapPagBankStatus maps hosted-checkout statuses onto PaymentStatus.
func MapPagBankStatus(raw string) entities.PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAID":
		return entities.PaymentStatusApproved
	case "DECLINED":
		return entities.PaymentStatusRejected
	case "CANCELED", "CANCELLED", "EXPIRED":
		return entities.PaymentStatusCancelled
	default:
		return entities.PaymentStatusPending
	}
}

func (g *PagBankGateway) checkoutRequest(req entities.HostedCheckoutRequest) pbCheckoutRequest {
	ref := strings.TrimSpace(req.ReferenceID)
	if ref == "" {
		ref = strings.TrimSpace(req.GiftID)
	}
	if ref == "" {
		ref = "gift-" + uuid.NewString()
	}

	methods := req.Methods
	if len(methods) == 0 {
		methods = entities.AllHostedCheckoutMethods()
	}
	body := pbCheckoutRequest{
		ReferenceID:        ref,
		CustomerModifiable: false,
		Items: []pbItem{{
			ReferenceID: req.GiftID,
			Name:        req.Description,
			Quantity:    1,
			UnitAmount:  int64(req.Amount),
		}},
		SoftDescriptor:          g.opts.SoftDescriptor,
		RedirectURL:             firstNonEmpty(req.RedirectURL, g.opts.RedirectURL),
		NotificationURLs:        []string{g.client.BaseURL + "/api/webhooks/pagbank"},
		PaymentNotificationURLs: []string{g.client.BaseURL + "/api/webhooks/pagbank/payment"},
		ExpirationDate:          g.now().Add(pagBankCheckoutTTL).UTC().Format(time.RFC3339),
	}
	if name := strings.TrimSpace(req.Customer.Name); name != "" {
		body.Customer = &pbCustomer{
			Name:  name,
			Email: req.Customer.Email,
			TaxID: entities.OnlyDigits(req.Customer.Document),
		}
	}

	limit := pagBankInstallmentsLimit
	if req.MaxInstallments > 0 && req.MaxInstallments < limit {
		limit = req.MaxInstallments
	}
	for _, m := range methods {
		body.PaymentMethods = append(body.PaymentMethods, pbPaymentMethod{Type: string(m)})
		if m == entities.HostedMethodCreditCard {
			body.PaymentMethodsConfigs = append(body.PaymentMethodsConfigs, pbPaymentMethodConfig{
				Type: string(m),
				ConfigOptions: []pbConfigOption{
					{Option: "INSTALLMENTS_LIMIT", Value: strconv.Itoa(limit)},
					{Option: "INTEREST_FREE_INSTALLMENTS", Value: strconv.Itoa(pagBankInterestFree)},
				},
			})
		}
	}
	return body
}

func findLink(links []pbLink, rel string) (pbLink, bool) {
	for _, l := range links {
		if strings.EqualFold(l.Rel, rel) {
			return l, true
		}
	}
	return pbLink{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
