package interfaces

import (
	"context"

	"casamento_presentes/internal/domain/entities"
)

// PixRequest is the input of a PIX charge generation.
type PixRequest struct {
	Amount      entities.Cents
	Description string
	Customer    entities.Customer
	GiftID      string
}

// CardChargeRequest is the input of a credit-card charge. Token is empty for
// gateways that collect card data on their own hosted page.
type CardChargeRequest struct {
	Token        entities.PaymentToken
	Installments int
	Amount       entities.Cents
	Description  string
	Customer     entities.Customer
	GiftID       string
}

// IPaymentGateway abstracts the payment providers (Mercado Pago, PagBank).
//
// The checkout session only talks to this interface, so the provider can be
// swapped by configuration.
type IPaymentGateway interface {
	Name() string
	// RequiresCardToken tells the session whether card data must be tokenized
	// before ChargeCreditCard is called.
	RequiresCardToken() bool
	GeneratePixPayment(ctx context.Context, req PixRequest) (entities.PixPayment, entities.PaymentResponse, error)
	ChargeCreditCard(ctx context.Context, req CardChargeRequest) (entities.PaymentResponse, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error)
}

// ICardTokenizer turns raw card data into a single-use token.
type ICardTokenizer interface {
	Tokenize(ctx context.Context, form entities.CreditCardForm) (entities.PaymentToken, error)
}

// IHostedCheckoutGateway is implemented by providers offering a redirect-based checkout (PagBank).
type IHostedCheckoutGateway interface {
	CreateCheckout(ctx context.Context, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error)
	GetCheckoutStatus(ctx context.Context, checkoutID string) (entities.HostedCheckoutStatus, error)
}
