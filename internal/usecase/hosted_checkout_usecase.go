package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

const defaultHostedDescription = "Presente de casamento"

var (
	ErrHostedCheckoutUnavailable = errors.New("hosted checkout not configured")
	ErrInvalidHostedAmount       = errors.New("Valor deve ser maior que zero")
	ErrInvalidHostedMethod       = errors.New("invalid payment method")
	ErrInvalidMaxInstallments    = fmt.Errorf("installments must be between 1 and %d", MaxInstallments)
	ErrInvalidCheckoutID         = errors.New("invalid checkout id")
)

// IHostedCheckoutUseCase creates provider-hosted checkouts (PagBank) the guest is
// redirected to, and tracks their status in the ledger.
type IHostedCheckoutUseCase interface {
	Create(ctx context.Context, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error)
	GetStatus(ctx context.Context, checkoutID string) (entities.HostedCheckoutStatus, error)
}

type HostedCheckoutUseCase struct {
	gateway interfaces.IHostedCheckoutGateway
	repo    interfaces.IPaymentRecordRepository
	now     func() time.Time
}

var _ IHostedCheckoutUseCase = (*HostedCheckoutUseCase)(nil)

func NewHostedCheckoutUseCase(gateway interfaces.IHostedCheckoutGateway, repo interfaces.IPaymentRecordRepository) *HostedCheckoutUseCase {
	return &HostedCheckoutUseCase{gateway: gateway, repo: repo, now: time.Now}
}

func (u *HostedCheckoutUseCase) Create(ctx context.Context, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error) {
	if u.gateway == nil {
		return entities.HostedCheckout{}, ErrHostedCheckoutUnavailable
	}
	if req.Amount <= 0 {
		return entities.HostedCheckout{}, ErrInvalidHostedAmount
	}
	if req.MaxInstallments < 0 || req.MaxInstallments > MaxInstallments {
		return entities.HostedCheckout{}, ErrInvalidMaxInstallments
	}
	for i, m := range req.Methods {
		m = entities.HostedCheckoutMethod(strings.ToUpper(strings.TrimSpace(string(m))))
		if !isHostedMethod(m) {
			return entities.HostedCheckout{}, fmt.Errorf("%w: %s", ErrInvalidHostedMethod, req.Methods[i])
		}
		req.Methods[i] = m
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		req.Description = defaultHostedDescription
	}
	req.Customer.Name = strings.TrimSpace(req.Customer.Name)

	log.Printf("[payment][hosted] create start gift_id=%s amount=%s methods=%d", req.GiftID, req.Amount, len(req.Methods))
	checkout, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		log.Printf("[payment][hosted] create failed gift_id=%s err=%v", req.GiftID, err)
		return entities.HostedCheckout{}, err
	}

	now := u.now()
	u.save(ctx, entities.PaymentRecord{
		ID:         checkout.ID,
		CheckoutID: checkout.ReferenceID,
		GiftID:     req.GiftID,
		Gateway:    gatewayName(u.gateway),
		Method:     singleMethod(req.Methods),
		Status:     entities.PaymentStatusPending,
		Amount:     req.Amount,
		GuestName:  req.Customer.Name,
		GuestEmail: req.Customer.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	log.Printf("[payment][hosted] create success checkout_id=%s reference_id=%s", checkout.ID, checkout.ReferenceID)
	return checkout, nil
}

func (u *HostedCheckoutUseCase) GetStatus(ctx context.Context, checkoutID string) (entities.HostedCheckoutStatus, error) {
	if u.gateway == nil {
		return entities.HostedCheckoutStatus{}, ErrHostedCheckoutUnavailable
	}
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.HostedCheckoutStatus{}, ErrInvalidCheckoutID
	}

	st, err := u.gateway.GetCheckoutStatus(ctx, checkoutID)
	if err != nil {
		return entities.HostedCheckoutStatus{}, err
	}

	if st.PaymentStatus != entities.PaymentStatusPending {
		var method entities.PaymentMethodID
		switch entities.HostedCheckoutMethod(st.PaymentMethod) {
		case entities.HostedMethodPix:
			method = entities.PaymentMethodPix
		case entities.HostedMethodCreditCard:
			method = entities.PaymentMethodCreditCard
		}
		u.save(ctx, entities.PaymentRecord{
			ID:         st.ID,
			CheckoutID: st.ReferenceID,
			Gateway:    gatewayName(u.gateway),
			Method:     method,
			Status:     st.PaymentStatus,
			Amount:     st.Amount,
			CreatedAt:  st.CreatedAt,
			UpdatedAt:  u.now(),
		})
	}
	return st, nil
}

func (u *HostedCheckoutUseCase) save(ctx context.Context, rec entities.PaymentRecord) {
	if u.repo == nil || rec.ID == "" {
		return
	}
	if _, changed, err := u.repo.Save(ctx, rec); err != nil {
		log.Printf("[payment][hosted] ledger save failed checkout_id=%s err=%v", rec.ID, err)
	} else if changed {
		log.Printf("[payment][hosted] ledger updated checkout_id=%s status=%s", rec.ID, rec.Status)
	}
}

func isHostedMethod(m entities.HostedCheckoutMethod) bool {
	for _, known := range entities.AllHostedCheckoutMethods() {
		if m == known {
			return true
		}
	}
	return false
}

func singleMethod(methods []entities.HostedCheckoutMethod) entities.PaymentMethodID {
	if len(methods) != 1 {
		return ""
	}
	switch methods[0] {
	case entities.HostedMethodPix:
		return entities.PaymentMethodPix
	case entities.HostedMethodCreditCard:
		return entities.PaymentMethodCreditCard
	}
	return ""
}

func gatewayName(g any) string {
	if n, ok := g.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "hosted"
}
