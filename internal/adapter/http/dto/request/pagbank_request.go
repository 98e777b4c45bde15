package request

import (
	"strings"

	"casamento_presentes/internal/domain/entities"
)

// HostedCheckoutRequest creates a PagBank hosted checkout. amount is in reais.
type HostedCheckoutRequest struct {
	ReferenceID     string          `json:"reference_id"`
	GiftID          string          `json:"gift_id"`
	Description     string          `json:"description"`
	Amount          entities.Cents  `json:"amount"`
	Customer        CustomerRequest `json:"customer"`
	Methods         []string        `json:"methods"`
	MaxInstallments int             `json:"max_installments"`
	RedirectURL     string          `json:"redirect_url"`
}

func (r HostedCheckoutRequest) ToEntity() entities.HostedCheckoutRequest {
	methods := make([]entities.HostedCheckoutMethod, 0, len(r.Methods))
	for _, m := range r.Methods {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, entities.HostedCheckoutMethod(strings.ToUpper(m)))
		}
	}
	return entities.HostedCheckoutRequest{
		ReferenceID:     strings.TrimSpace(r.ReferenceID),
		GiftID:          strings.TrimSpace(r.GiftID),
		Description:     r.Description,
		Amount:          r.Amount,
		Customer:        r.Customer.ToEntity(),
		Methods:         methods,
		MaxInstallments: r.MaxInstallments,
		RedirectURL:     strings.TrimSpace(r.RedirectURL),
	}
}
