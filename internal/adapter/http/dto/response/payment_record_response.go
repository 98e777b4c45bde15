package response

import (
	"time"

	"casamento_presentes/internal/domain/entities"
)

type PaymentRecordResponse struct {
	PaymentID  string         `json:"payment_id"`
	CheckoutID string         `json:"checkout_id,omitempty"`
	GiftID     string         `json:"gift_id,omitempty"`
	Gateway    string         `json:"gateway"`
	Method     string         `json:"method,omitempty"`
	Status     string         `json:"status"`
	Amount     entities.Cents `json:"amount"`
	GuestName  string         `json:"guest_name,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:  r.ID,
		CheckoutID: r.CheckoutID,
		GiftID:     r.GiftID,
		Gateway:    r.Gateway,
		Method:     string(r.Method),
		Status:     string(r.Status),
		Amount:     r.Amount,
		GuestName:  r.GuestName,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}

type HostedCheckoutResponse struct {
	ID             string    `json:"id"`
	ReferenceID    string    `json:"reference_id"`
	PaymentURL     string    `json:"payment_url"`
	RedirectURL    string    `json:"redirect_url"`
	PixCode        string    `json:"pix_code,omitempty"`
	QRCodeImageURL string    `json:"qr_code_image_url,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// FromHostedCheckout exposes PaymentURL twice: redirect_url is what the
// storefront navigates to.
func FromHostedCheckout(c entities.HostedCheckout) HostedCheckoutResponse {
	return HostedCheckoutResponse{
		ID:             c.ID,
		ReferenceID:    c.ReferenceID,
		PaymentURL:     c.PaymentURL,
		RedirectURL:    c.PaymentURL,
		PixCode:        c.PixCode,
		QRCodeImageURL: c.QRCodeImageURL,
		ExpiresAt:      c.ExpiresAt,
	}
}

type HostedCheckoutStatusResponse struct {
	ID            string         `json:"id"`
	ReferenceID   string         `json:"reference_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	Amount        entities.Cents `json:"amount"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	Installments  int            `json:"installments,omitempty"`
}

func FromHostedCheckoutStatus(s entities.HostedCheckoutStatus) HostedCheckoutStatusResponse {
	return HostedCheckoutStatusResponse{
		ID:            s.ID,
		ReferenceID:   s.ReferenceID,
		Status:        s.Status,
		PaymentStatus: string(s.PaymentStatus),
		Amount:        s.Amount,
		PaymentMethod: s.PaymentMethod,
		Installments:  s.Installments,
	}
}
