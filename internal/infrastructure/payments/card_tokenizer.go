package payments

import (
	"context"
	"net/http"
	"strings"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

type tokenRequest struct {
	PublicKey       string `json:"publicKey,omitempty"`
	CardNumber      string `json:"cardNumber"`
	SecurityCode    string `json:"securityCode"`
	ExpirationMonth string `json:"expirationMonth"`
	ExpirationYear  string `json:"expirationYear"`
	PaymentMethodID string `json:"paymentMethodId"`
	Cardholder      struct {
		Name           string `json:"name"`
		Identification struct {
			Type   string `json:"type"`
			Number string `json:"number"`
		} `json:"identification"`
	} `json:"cardholder"`
}

type tokenResponse struct {
	ID     string `json:"id"`
	CardID flexID `json:"card_id"`
}

// BackendCardTokenizer creates Mercado Pago card tokens through the backend, so
// the raw card number never reaches a browser-side SDK.
type BackendCardTokenizer struct {
	client    *BackendClient
	publicKey string
}

var _ interfaces.ICardTokenizer = (*BackendCardTokenizer)(nil)

// NewBackendCardTokenizer forwards publicKey so the backend can tokenize on the
// account the storefront is configured for; empty uses the backend's default.
func NewBackendCardTokenizer(client *BackendClient, publicKey string) *BackendCardTokenizer {
	return &BackendCardTokenizer{client: client, publicKey: strings.TrimSpace(publicKey)}
}

func (t *BackendCardTokenizer) Tokenize(ctx context.Context, form entities.CreditCardForm) (entities.PaymentToken, error) {
	brand := entities.DetectCardBrand(form.CardNumber)

	var body tokenRequest
	body.PublicKey = t.publicKey
	body.CardNumber = form.CleanCardNumber()
	body.SecurityCode = strings.TrimSpace(form.CVV)
	body.ExpirationMonth = strings.TrimSpace(form.ExpirationMonth)
	body.ExpirationYear = strings.TrimSpace(form.ExpirationYear)
	body.PaymentMethodID = brand.PaymentMethodID
	body.Cardholder.Name = strings.TrimSpace(form.HolderName)
	body.Cardholder.Identification.Type = form.DocumentType
	body.Cardholder.Identification.Number = entities.OnlyDigits(form.DocumentNumber)

	var out tokenResponse
	if err := t.client.Do(ctx, http.MethodPost, "/api/mercadopago/create-token", body, &out, false); err != nil {
		return entities.PaymentToken{}, err
	}
	return entities.PaymentToken{ID: out.ID, CardID: string(out.CardID), Brand: brand.PaymentMethodID}, nil
}
