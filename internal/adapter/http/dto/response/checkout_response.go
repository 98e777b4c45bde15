package response

import (
	"strconv"
	"time"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/checkout"
)

type PaymentMethodResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Enabled bool   `json:"enabled"`
}

type InstallmentResponse struct {
	Installments      int            `json:"installments"`
	InstallmentAmount entities.Cents `json:"installment_amount"`
	TotalAmount       entities.Cents `json:"total_amount"`
	TotalInterest     entities.Cents `json:"total_interest"`
	InterestRate      float64        `json:"interest_rate"`
	Label             string         `json:"label"`
}

type PixResponse struct {
	ID           string         `json:"id"`
	PixCode      string         `json:"pix_code"`
	QRCodeBase64 string         `json:"qr_code_base64"`
	Amount       entities.Cents `json:"amount"`
	ExpiresAt    time.Time      `json:"expires_at"`
	Status       string         `json:"status"`
}

type PaymentResponse struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	Method       string         `json:"method"`
	Amount       entities.Cents `json:"amount"`
	Installments int            `json:"installments,omitempty"`
	CheckoutURL  string         `json:"checkout_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	ApprovedAt   *time.Time     `json:"approved_at,omitempty"`
}

type FriendlyErrorResponse struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	CanRetry bool   `json:"can_retry"`
}

// CheckoutResponse is the public view of a checkout session.
type CheckoutResponse struct {
	ID             string                  `json:"id"`
	State          string                  `json:"state"`
	Gateway        string                  `json:"gateway"`
	SelectedMethod string                  `json:"selected_method,omitempty"`
	Amount         entities.Cents          `json:"amount"`
	Description    string                  `json:"description"`
	GiftID         string                  `json:"gift_id,omitempty"`
	CustomerName   string                  `json:"customer_name"`
	Methods        []PaymentMethodResponse `json:"payment_methods"`
	Installments   []InstallmentResponse   `json:"installment_options"`
	Pix            *PixResponse            `json:"pix,omitempty"`
	Payment        *PaymentResponse        `json:"payment,omitempty"`
	Error          *FriendlyErrorResponse  `json:"friendly_error,omitempty"`
	Polling        bool                    `json:"polling"`
}

func FromSnapshot(s checkout.Snapshot) CheckoutResponse {
	out := CheckoutResponse{
		ID:             s.ID,
		State:          string(s.State),
		Gateway:        s.Gateway,
		SelectedMethod: string(s.SelectedMethod),
		Amount:         s.Amount,
		Description:    s.Description,
		GiftID:         s.GiftID,
		CustomerName:   s.Customer.Name,
		Methods:        make([]PaymentMethodResponse, 0, len(s.PaymentMethods)),
		Installments:   FromInstallments(s.InstallmentOptions),
		Polling:        s.Polling,
	}
	for _, m := range s.PaymentMethods {
		out.Methods = append(out.Methods, PaymentMethodResponse{ID: string(m.ID), Name: m.Name, Icon: m.Icon, Enabled: m.Enabled})
	}
	if p := s.PixPayment; p != nil {
		out.Pix = &PixResponse{
			ID:           p.ID,
			PixCode:      p.PixCode,
			QRCodeBase64: p.QRCodeBase64,
			Amount:       p.Amount,
			ExpiresAt:    p.ExpiresAt,
			Status:       string(p.Status),
		}
	}
	if p := s.Payment; p != nil {
		payment := FromPayment(*p)
		out.Payment = &payment
	}
	if s.Error != nil {
		fe := FromFriendlyError(*s.Error)
		out.Error = &fe
	}
	return out
}

func FromPayment(p entities.PaymentResponse) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		Status:       string(p.Status),
		Method:       string(p.Method),
		Amount:       p.Amount,
		Installments: p.Installments,
		CheckoutURL:  p.CheckoutURL,
		CreatedAt:    p.CreatedAt,
		ApprovedAt:   p.ApprovedAt,
	}
}

func FromInstallments(options []entities.InstallmentOption) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(options))
	for _, o := range options {
		out = append(out, InstallmentResponse{
			Installments:      o.Installments,
			InstallmentAmount: o.InstallmentAmount,
			TotalAmount:       o.TotalAmount,
			TotalInterest:     o.TotalInterest,
			InterestRate:      o.InterestRate,
			Label:             installmentLabel(o),
		})
	}
	return out
}

func FromFriendlyError(fe entities.FriendlyError) FriendlyErrorResponse {
	return FriendlyErrorResponse{
		Title:    fe.Title,
		Message:  fe.Message,
		Icon:     fe.Icon,
		Category: string(fe.Category),
		CanRetry: fe.CanRetry,
	}
}

// installmentLabel renders the option the way the gift list shows it,
// e.g. "3x de R$ 37,50 (total R$ 112,50)".
func installmentLabel(o entities.InstallmentOption) string {
	label := strconv.Itoa(o.Installments) + "x de " + o.InstallmentAmount.BRL()
	if o.TotalInterest > 0 {
		return label + " (total " + o.TotalAmount.BRL() + ")"
	}
	return label + " sem juros"
}
