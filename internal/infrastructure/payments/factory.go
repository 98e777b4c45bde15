package payments

import (
	"errors"
	"fmt"
	"log"

	"casamento_presentes/internal/infrastructure/config"
	"casamento_presentes/internal/usecase/interfaces"
)

// Gateways groups what the checkout needs from one configured provider.
// Tokenizer is nil when the provider collects card data on its hosted page.
type Gateways struct {
	Payment   interfaces.IPaymentGateway
	Tokenizer interfaces.ICardTokenizer
	Hosted    interfaces.IHostedCheckoutGateway
}

// ErrMockModeInProduction stops a production deployment from faking payments.
var ErrMockModeInProduction = errors.New("PAYMENT_GATEWAY_MOCK cannot be enabled with PAYMENT_ENVIRONMENT=production")

// NewGateways builds the gateway selected by cfg.PaymentGateway. The PagBank
// hosted checkout is always available since it only needs the backend.
func NewGateways(cfg config.Config, client *BackendClient) (Gateways, error) {
	if cfg.MockMode && cfg.IsProduction() {
		return Gateways{}, ErrMockModeInProduction
	}

	pagbank := NewPagBankGateway(client, PagBankOptions{
		SoftDescriptor: cfg.SoftDescriptor,
		RedirectURL:    cfg.RedirectURL,
		Token:          cfg.PagBankToken,
	})
	out := Gateways{Hosted: pagbank}

	switch cfg.PaymentGateway {
	case GatewayMercadoPago, "":
		out.Payment = NewMercadoPagoGateway(client)
		out.Tokenizer = NewBackendCardTokenizer(client, cfg.MercadoPagoPublic)
	case GatewayMercadoPagoSDK:
		gw, err := NewMercadoPagoSDKGateway(cfg.MercadoPagoToken, cfg.MockMode, MockPix{
			Key:          cfg.MockPixKey,
			MerchantName: cfg.MockPixMerchant,
			City:         cfg.MockPixCity,
		}, client.BaseURL+"/api/webhooks/mercadopago")
		if err != nil {
			return Gateways{}, err
		}
		out.Payment = gw
		out.Tokenizer = NewBackendCardTokenizer(client, cfg.MercadoPagoPublic)
	case GatewayPagBank:
		out.Payment = pagbank
	default:
		return Gateways{}, fmt.Errorf("unknown PAYMENT_GATEWAY %q", cfg.PaymentGateway)
	}

	log.Printf("[payment][factory] gateway selected name=%s environment=%s production=%t mock=%t tokenizer=%t",
		out.Payment.Name(), cfg.PaymentEnvironment, cfg.IsProduction(), cfg.MockMode, out.Tokenizer != nil)
	return out, nil
}
