package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/internal/usecase/interfaces"
)

var ErrCheckoutNotFound = errors.New("checkout not found")

const DefaultSessionTTL = 2 * time.Hour

// CreateInput opens a checkout for one gift.
type CreateInput struct {
	GiftID      string
	Description string
	Amount      entities.Cents
	Customer    entities.Customer
	// Methods restricts the payable channels; empty means PIX and credit card.
	Methods []entities.PaymentMethodID
}

// ICheckoutUseCase keeps the live checkout sessions of the API.
//
// Every action returns the session snapshot, also when the action failed, so
// the caller can render the classified error.
type ICheckoutUseCase interface {
	Create(ctx context.Context, in CreateInput) (Snapshot, error)
	Get(ctx context.Context, id string) (Snapshot, error)
	SelectMethod(ctx context.Context, id string, method entities.PaymentMethodID) (Snapshot, error)
	GeneratePix(ctx context.Context, id string) (Snapshot, error)
	PayWithCard(ctx context.Context, id string, form entities.CreditCardForm, installments int) (Snapshot, error)
	Reset(ctx context.Context, id string) (Snapshot, error)
	ClearError(ctx context.Context, id string) (Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// Config tunes the sessions created by the use case.
type Config struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	SessionTTL   time.Duration
}

type CheckoutUseCase struct {
	gateway   interfaces.IPaymentGateway
	tokenizer interfaces.ICardTokenizer
	repo      interfaces.IPaymentRecordRepository
	cfg       Config
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*trackedSession
}

type trackedSession struct {
	session  *Session
	lastSeen time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the sessions to a gateway. tokenizer and repo may be
// nil: card payments then fail with a classified error and nothing is persisted.
func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, tokenizer interfaces.ICardTokenizer, repo interfaces.IPaymentRecordRepository, cfg Config) *CheckoutUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	return &CheckoutUseCase{
		gateway:   gateway,
		tokenizer: tokenizer,
		repo:      repo,
		cfg:       cfg,
		now:       time.Now,
		sessions:  map[string]*trackedSession{},
	}
}

func (u *CheckoutUseCase) Create(_ context.Context, in CreateInput) (Snapshot, error) {
	id := uuid.NewString()
	methods := entities.DefaultPaymentMethods()
	if len(in.Methods) > 0 {
		allowed := map[entities.PaymentMethodID]bool{}
		for _, m := range in.Methods {
			allowed[m] = true
		}
		for i := range methods {
			methods[i].Enabled = allowed[methods[i].ID]
		}
	}

	var s *Session
	callbacks := Callbacks{
		OnSuccess: func(p entities.PaymentResponse) { u.persist(id, p) },
		OnPending: func(p entities.PaymentResponse) { u.persist(id, p) },
		OnError: func(fe entities.FriendlyError, err error) {
			log.Printf("[checkout][usecase] payment failed checkout_id=%s category=%s err=%v", id, fe.Category, err)
			if s == nil {
				return
			}
			if snap := s.Snapshot(); snap.Payment != nil {
				u.persist(id, *snap.Payment)
			}
		},
	}

	s, err := NewSession(Options{
		ID:           id,
		Gateway:      u.gateway,
		Tokenizer:    u.tokenizer,
		Amount:       in.Amount,
		Description:  in.Description,
		GiftID:       in.GiftID,
		Customer:     in.Customer,
		Methods:      methods,
		PollInterval: u.cfg.PollInterval,
		PollTimeout:  u.cfg.PollTimeout,
		Callbacks:    callbacks,
	})
	if err != nil {
		return Snapshot{}, err
	}

	u.mu.Lock()
	u.sessions[id] = &trackedSession{session: s, lastSeen: u.now()}
	u.mu.Unlock()

	log.Printf("[checkout][usecase] created checkout_id=%s gift_id=%s amount=%s gateway=%s", id, in.GiftID, in.Amount, u.gateway.Name())
	return s.Snapshot(), nil
}

func (u *CheckoutUseCase) Get(_ context.Context, id string) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

func (u *CheckoutUseCase) SelectMethod(_ context.Context, id string, method entities.PaymentMethodID) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	err = s.SelectMethod(method)
	return s.Snapshot(), err
}

func (u *CheckoutUseCase) GeneratePix(ctx context.Context, id string) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if _, err := s.GeneratePixPayment(ctx); err != nil {
		return s.Snapshot(), err
	}
	snap := s.Snapshot()
	// A poll that already finished the session persisted through OnSuccess or
	// OnError; writing the snapshot again would race that write.
	if snap.Payment != nil && !snap.Payment.Status.IsTerminal() {
		u.persist(id, *snap.Payment)
	}
	return snap, nil
}

func (u *CheckoutUseCase) PayWithCard(ctx context.Context, id string, form entities.CreditCardForm, installments int) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	_, err = s.ProcessCreditCardPayment(ctx, form, installments)
	return s.Snapshot(), err
}

func (u *CheckoutUseCase) Reset(_ context.Context, id string) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.Reset()
	return s.Snapshot(), nil
}

func (u *CheckoutUseCase) ClearError(_ context.Context, id string) (Snapshot, error) {
	s, err := u.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.ClearError()
	return s.Snapshot(), nil
}

func (u *CheckoutUseCase) Delete(_ context.Context, id string) error {
	u.mu.Lock()
	t, ok := u.sessions[strings.TrimSpace(id)]
	delete(u.sessions, strings.TrimSpace(id))
	u.mu.Unlock()
	if !ok {
		return ErrCheckoutNotFound
	}
	t.session.Close()
	log.Printf("[checkout][usecase] deleted checkout_id=%s", id)
	return nil
}

// Run evicts idle sessions every interval until ctx is done, then closes the
// remaining ones.
func (u *CheckoutUseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			u.closeAll()
			return
		case <-ticker.C:
			u.evictExpired()
		}
	}
}

func (u *CheckoutUseCase) evictExpired() int {
	cutoff := u.now().Add(-u.cfg.SessionTTL)

	u.mu.Lock()
	var expired []*Session
	for id, t := range u.sessions {
		if t.lastSeen.Before(cutoff) {
			expired = append(expired, t.session)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		log.Printf("[checkout][usecase] evicted idle sessions count=%d", len(expired))
	}
	return len(expired)
}

func (u *CheckoutUseCase) closeAll() {
	u.mu.Lock()
	sessions := u.sessions
	u.sessions = map[string]*trackedSession{}
	u.mu.Unlock()

	for _, t := range sessions {
		t.session.Close()
	}
}

func (u *CheckoutUseCase) lookup(id string) (*Session, error) {
	id = strings.TrimSpace(id)
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	t.lastSeen = u.now()
	return t.session, nil
}

// persist writes the payment to the ledger. Failures are logged only; the
// session state stays the source of truth for the guest.
func (u *CheckoutUseCase) persist(checkoutID string, p entities.PaymentResponse) {
	if u.repo == nil || p.ID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := usecase.RecordFromPayment(checkoutID, u.gateway.Name(), p)
	if _, changed, err := u.repo.Save(ctx, rec); err != nil {
		log.Printf("[checkout][usecase] payment persist failed payment_id=%s err=%v", p.ID, err)
	} else {
		log.Printf("[checkout][usecase] payment persisted payment_id=%s status=%s changed=%t", p.ID, p.Status, changed)
	}
}
