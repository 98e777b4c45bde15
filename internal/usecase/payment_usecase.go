package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidPaymentID = errors.New("invalid payment id")
	ErrInvalidGiftID    = errors.New("invalid gift_id")
)

// IPaymentUseCase reads the payment ledger.
//
// GetByID falls back to the gateway when the ledger has no entry (or no ledger
// is configured), so a payment made before the service restarted can still be
// looked up.
type IPaymentUseCase interface {
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByGiftID(ctx context.Context, giftID string) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRecordRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRecordRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}

	if u.repo != nil {
		rec, err := u.repo.GetByID(ctx, id)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, interfaces.ErrPaymentRecordNotFound) {
			log.Printf("[payment][usecase] ledger lookup failed payment_id=%s err=%v", id, err)
			return entities.PaymentRecord{}, err
		}
	}
	if u.gateway == nil {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}

	log.Printf("[payment][usecase] ledger miss, asking gateway payment_id=%s gateway=%s", id, u.gateway.Name())
	resp, err := u.gateway.GetPaymentStatus(ctx, id)
	if err != nil {
		var sc statusCoder
		if errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound {
			return entities.PaymentRecord{}, ErrPaymentNotFound
		}
		return entities.PaymentRecord{}, err
	}

	rec := RecordFromPayment("", u.gateway.Name(), resp)
	if rec.ID == "" {
		rec.ID = id
	}
	if u.repo != nil {
		if saved, _, err := u.repo.Save(ctx, rec); err != nil {
			log.Printf("[payment][usecase] ledger backfill failed payment_id=%s err=%v", id, err)
		} else {
			rec = saved
		}
	}
	return rec, nil
}

func (u *PaymentUseCase) ListByGiftID(ctx context.Context, giftID string) ([]entities.PaymentRecord, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return nil, ErrInvalidGiftID
	}
	if u.repo == nil {
		return []entities.PaymentRecord{}, nil
	}
	return u.repo.ListByGiftID(ctx, giftID)
}

// RecordFromPayment builds the ledger entry for a gateway response.
func RecordFromPayment(checkoutID, gateway string, p entities.PaymentResponse) entities.PaymentRecord {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("[payment][usecase] payment marshal failed payment_id=%s err=%v", p.ID, err)
	}
	return entities.PaymentRecord{
		ID:         p.ID,
		CheckoutID: checkoutID,
		GiftID:     p.GiftID,
		Gateway:    gateway,
		Method:     p.Method,
		Status:     p.Status,
		Amount:     p.Amount,
		GuestName:  p.Customer.Name,
		GuestEmail: p.Customer.Email,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Raw:        raw,
	}
}
