package entities

import (
	"regexp"
	"strings"
	"time"
)

// PaymentMethodID identifies a payable channel.
type PaymentMethodID string

const (
	PaymentMethodPix        PaymentMethodID = "PIX"
	PaymentMethodCreditCard PaymentMethodID = "CREDIT_CARD"
)

// PaymentStatus is the normalized status shared by every gateway variant.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusApproved  PaymentStatus = "APPROVED"
	PaymentStatusRejected  PaymentStatus = "REJECTED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusInProcess PaymentStatus = "IN_PROCESS"
)

// IsTerminal reports whether no further status change is expected.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled:
		return true
	}
	return false
}

// NormalizePaymentStatus maps provider spellings (Mercado Pago lower-case,
// British/American "cancel(l)ed") onto PaymentStatus.
func NormalizePaymentStatus(raw string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "APPROVED", "AUTHORIZED", "PAID", "ACCREDITED":
		return PaymentStatusApproved
	case "REJECTED", "DECLINED":
		return PaymentStatusRejected
	case "CANCELLED", "CANCELED", "EXPIRED", "REFUNDED", "CHARGED_BACK":
		return PaymentStatusCancelled
	case "IN_PROCESS", "IN_MEDIATION":
		return PaymentStatusInProcess
	default:
		return PaymentStatusPending
	}
}

// PaymentMethod is configured once per checkout and never mutated.
type PaymentMethod struct {
	ID      PaymentMethodID `json:"id"`
	Name    string          `json:"name"`
	Icon    string          `json:"icon"`
	Enabled bool            `json:"enabled"`
}

func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: PaymentMethodPix, Name: "PIX", Icon: "💳", Enabled: true},
		{ID: PaymentMethodCreditCard, Name: "Cartão de Crédito", Icon: "💳", Enabled: true},
	}
}

type Customer struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Document string `json:"document"`
}

// PixPayment is a generated PIX charge. It is replaced, never edited, when the
// guest generates a new code.
type PixPayment struct {
	ID           string        `json:"id"`
	QRCodeBase64 string        `json:"qrCodeBase64"`
	PixCode      string        `json:"pixCode"`
	Amount       Cents         `json:"amount"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	Status       PaymentStatus `json:"status"`
}

// PaymentToken is a single-use card reference.
type PaymentToken struct {
	ID     string `json:"id"`
	CardID string `json:"cardId,omitempty"`
	// Brand is the detected payment method id (visa, master, ...).
	Brand string `json:"brand,omitempty"`
}

// PaymentResponse is the canonical outcome of a charge or PIX generation.
type PaymentResponse struct {
	ID           string          `json:"id"`
	Status       PaymentStatus   `json:"status"`
	Method       PaymentMethodID `json:"method"`
	Amount       Cents           `json:"amount"`
	Description  string          `json:"description"`
	Customer     Customer        `json:"customer"`
	GiftID       string          `json:"giftId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	Installments int             `json:"installments,omitempty"`
	PixCode      string          `json:"pixCode,omitempty"`
	QRCodeBase64 string          `json:"qrCodeBase64,omitempty"`
	ExpiresAt    *time.Time      `json:"expiresAt,omitempty"`
	// CheckoutURL is set by hosted-checkout gateways; the guest must be redirected there.
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	// StatusDetail is the provider's reason code, e.g. cc_rejected_insufficient_amount.
	StatusDetail string `json:"statusDetail,omitempty"`
}

// CreditCardForm holds raw card data. It only lives long enough to be tokenized.
type CreditCardForm struct {
	HolderName      string `json:"holderName" validate:"required"`
	CardNumber      string `json:"cardNumber" validate:"required"`
	ExpirationMonth string `json:"expirationMonth" validate:"required,numeric,len=2"`
	ExpirationYear  string `json:"expirationYear" validate:"required,numeric"`
	CVV             string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	DocumentType    string `json:"documentType" validate:"required,oneof=CPF CNPJ"`
	DocumentNumber  string `json:"documentNumber" validate:"required"`
	Installments    int    `json:"installments"`
}

var nonDigits = regexp.MustCompile(`\D`)

// OnlyDigits strips formatting from card numbers and CPF/CNPJ.
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// CleanCardNumber returns the card number without spaces or separators.
func (f CreditCardForm) CleanCardNumber() string {
	return OnlyDigits(f.CardNumber)
}

// CardInfo is the brand guess for a card number.
type CardInfo struct {
	PaymentMethodID string `json:"paymentMethodId"`
	CardBin         string `json:"cardBin"`
	Issuer          string `json:"issuer"`
}

var (
	masterPrefix = regexp.MustCompile(`^5[1-5]`)
	amexPrefix   = regexp.MustCompile(`^3[47]`)
)

// DetectCardBrand guesses the payment method id from the card number prefix.
func DetectCardBrand(cardNumber string) CardInfo {
	n := OnlyDigits(cardNumber)
	bin := n
	if len(bin) > 6 {
		bin = bin[:6]
	}

	info := CardInfo{PaymentMethodID: "visa", CardBin: bin, Issuer: "unknown"}
	switch {
	case strings.HasPrefix(n, "4"):
		info.PaymentMethodID, info.Issuer = "visa", "visa"
	case masterPrefix.MatchString(n):
		info.PaymentMethodID, info.Issuer = "master", "mastercard"
	case amexPrefix.MatchString(n):
		info.PaymentMethodID, info.Issuer = "amex", "american_express"
	case strings.HasPrefix(n, "6"):
		info.PaymentMethodID, info.Issuer = "discover", "discover"
	}
	return info
}
