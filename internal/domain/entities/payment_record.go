package entities

import (
	"encoding/json"
	"time"
)

// PaymentRecord is the ledger entry written when a checkout reaches a pending or
// final outcome.
//
// Storage model:
//   - DynamoDB: PK id, GSI gift_id-index (PK gift_id)
//   - BoltDB: bucket "payments", key id
//
// Raw keeps the normalized PaymentResponse as JSON for traceability.
type PaymentRecord struct {
	ID         string          `json:"id"`
	CheckoutID string          `json:"checkout_id"`
	GiftID     string          `json:"gift_id,omitempty"`
	Gateway    string          `json:"gateway"`
	Method     PaymentMethodID `json:"method"`
	Status     PaymentStatus   `json:"status"`
	Amount     Cents           `json:"amount"`
	GuestName  string          `json:"guest_name"`
	GuestEmail string          `json:"guest_email,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}
