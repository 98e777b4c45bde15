package interfaces

import (
	"context"
	"errors"

	"casamento_presentes/internal/domain/entities"
)

var ErrPaymentRecordNotFound = errors.New("payment record not found")

// IPaymentRecordRepository abstracts the payment ledger (DynamoDB or BoltDB).
//
// Save is idempotent: saving the same record twice is a no-op, and a record whose
// status changed is updated in place. The bool reports whether anything was written.
type IPaymentRecordRepository interface {
	Save(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, bool, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByGiftID(ctx context.Context, giftID string) ([]entities.PaymentRecord, error)
}
