package request

import (
	"errors"
	"strings"

	"casamento_presentes/internal/domain/entities"
)

var (
	ErrInvalidCheckoutAmount = errors.New("invalid checkout amount")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
)

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:     r.Name,
		Email:    strings.TrimSpace(r.Email),
		Document: strings.TrimSpace(r.Document),
	}
}

// CreateCheckoutRequest opens a checkout session for one gift.
//
// amount is in reais (e.g. 150.00). methods restricts the payable channels
// (PIX, CREDIT_CARD); empty means both.
type CreateCheckoutRequest struct {
	GiftID      string          `json:"gift_id"`
	Description string          `json:"description"`
	Amount      entities.Cents  `json:"amount"`
	Customer    CustomerRequest `json:"customer"`
	Methods     []string        `json:"methods"`
}

func (r CreateCheckoutRequest) ResolveAmount() (entities.Cents, error) {
	if r.Amount <= 0 {
		return 0, ErrInvalidCheckoutAmount
	}
	return r.Amount, nil
}

func (r CreateCheckoutRequest) ResolveMethods() ([]entities.PaymentMethodID, error) {
	out := make([]entities.PaymentMethodID, 0, len(r.Methods))
	for _, m := range r.Methods {
		id, err := ParsePaymentMethod(m)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// SelectMethodRequest picks the payment method; an empty method clears the selection.
type SelectMethodRequest struct {
	Method string `json:"method"`
}

// ParsePaymentMethod accepts PIX or CREDIT_CARD in any case; "" is allowed.
func ParsePaymentMethod(raw string) (entities.PaymentMethodID, error) {
	switch id := entities.PaymentMethodID(strings.ToUpper(strings.TrimSpace(raw))); id {
	case "", entities.PaymentMethodPix, entities.PaymentMethodCreditCard:
		return id, nil
	}
	return "", ErrInvalidPaymentMethod
}

type CardRequest struct {
	HolderName      string `json:"holder_name"`
	CardNumber      string `json:"card_number"`
	ExpirationMonth string `json:"expiration_month"`
	ExpirationYear  string `json:"expiration_year"`
	CVV             string `json:"cvv"`
	DocumentType    string `json:"document_type"`
	DocumentNumber  string `json:"document_number"`
}

// CardPaymentRequest pays the checkout by credit card. card may be omitted for
// gateways that collect card data on their own page.
type CardPaymentRequest struct {
	Card         CardRequest `json:"card"`
	Installments int         `json:"installments"`
}

func (r CardPaymentRequest) ToForm() entities.CreditCardForm {
	docType := strings.ToUpper(strings.TrimSpace(r.Card.DocumentType))
	if docType == "" {
		docType = "CPF"
	}
	return entities.CreditCardForm{
		HolderName:      strings.TrimSpace(r.Card.HolderName),
		CardNumber:      r.Card.CardNumber,
		ExpirationMonth: strings.TrimSpace(r.Card.ExpirationMonth),
		ExpirationYear:  strings.TrimSpace(r.Card.ExpirationYear),
		CVV:             strings.TrimSpace(r.Card.CVV),
		DocumentType:    docType,
		DocumentNumber:  r.Card.DocumentNumber,
		Installments:    r.Installments,
	}
}
