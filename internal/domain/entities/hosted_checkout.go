package entities

import "time"

// HostedCheckoutMethod is a payment method offered on a provider-hosted checkout page.
type HostedCheckoutMethod string

const (
	HostedMethodCreditCard     HostedCheckoutMethod = "CREDIT_CARD"
	HostedMethodDebitCard      HostedCheckoutMethod = "DEBIT_CARD"
	HostedMethodPix            HostedCheckoutMethod = "PIX"
	HostedMethodBoleto         HostedCheckoutMethod = "BOLETO"
	HostedMethodPagBankAccount HostedCheckoutMethod = "PAGBANK_ACCOUNT"
)

func AllHostedCheckoutMethods() []HostedCheckoutMethod {
	return []HostedCheckoutMethod{
		HostedMethodCreditCard,
		HostedMethodDebitCard,
		HostedMethodPix,
		HostedMethodBoleto,
		HostedMethodPagBankAccount,
	}
}

// HostedCheckoutRequest describes a redirect-based checkout for one gift.
type HostedCheckoutRequest struct {
	ReferenceID     string                 `json:"referenceId"`
	GiftID          string                 `json:"giftId,omitempty"`
	Description     string                 `json:"description"`
	Amount          Cents                  `json:"amount"`
	Customer        Customer               `json:"customer"`
	Methods         []HostedCheckoutMethod `json:"methods,omitempty"`
	MaxInstallments int                    `json:"maxInstallments,omitempty"`
	RedirectURL     string                 `json:"redirectUrl,omitempty"`
}

// HostedCheckout is the created checkout; PaymentURL is where the guest is sent.
type HostedCheckout struct {
	ID             string    `json:"id"`
	ReferenceID    string    `json:"referenceId"`
	PaymentURL     string    `json:"paymentUrl"`
	PixCode        string    `json:"pixCode,omitempty"`
	QRCodeImageURL string    `json:"qrCodeImageUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// HostedCheckoutStatus is the provider view of a hosted checkout.
// Status keeps the provider value (PAID, WAITING, DECLINED, CANCELED, EXPIRED).
type HostedCheckoutStatus struct {
	ID            string        `json:"id"`
	ReferenceID   string        `json:"referenceId"`
	Status        string        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Amount        Cents         `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Installments  int           `json:"installments,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
