package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/internal/usecase/interfaces"
)

// State is the checkout session state. Exactly one holds at any instant.
type State string

const (
	StateIdle           State = "idle"
	StateLoading        State = "loading"
	StatePixPending     State = "pix_pending"
	StateCardProcessing State = "card_processing"
	StateCardPending    State = "card_pending"
	StateApproved       State = "terminal_approved"
	StateRejected       State = "terminal_rejected"
	StateCancelled      State = "terminal_cancelled"
	StateError          State = "error"
)

// IsTerminal reports whether the state only accepts Reset.
func (s State) IsTerminal() bool {
	return s == StateApproved || s == StateRejected || s == StateCancelled
}

const (
	DefaultPollInterval = 5 * time.Second
	DefaultPollTimeout  = 10 * time.Minute

	defaultDocument  = "00000000000"
	guestEmailDomain = "@guest.com"
)

var (
	ErrInvalidTransition    = errors.New("operação não permitida no estado atual do checkout")
	ErrMethodUnavailable    = errors.New("forma de pagamento indisponível")
	ErrSessionClosed        = errors.New("checkout encerrado")
	ErrStaleResult          = errors.New("resultado descartado: checkout reiniciado")
	ErrCustomerNameRequired = errors.New("Nome do cliente é obrigatório")
	ErrInvalidAmount        = errors.New("Valor deve ser maior que zero")
	ErrInvalidInstallments  = errors.New("número de parcelas inválido: obrigatório entre 1 e 12")
	ErrTokenizerUnavailable = errors.New("SDK do Mercado Pago não foi carregado. Recarregue a página e tente novamente.")
	ErrMissingPixCode       = errors.New("resposta do gateway sem código PIX ou QR code")
	ErrPixExpired           = errors.New("PIX expirado sem confirmação de pagamento")
	ErrPaymentRejected      = errors.New("pagamento rejeitado")
	ErrInsufficientFunds    = errors.New("saldo insuficiente no cartão")
	ErrPaymentCancelled     = errors.New("pagamento cancelado")
)

// Callbacks are the outward notifications of a session. Each one fires at most
// once per terminal transition and never while the session lock is held.
type Callbacks struct {
	OnSuccess func(payment entities.PaymentResponse)
	OnPending func(payment entities.PaymentResponse)
	OnError   func(friendly entities.FriendlyError, err error)
}

// Options configure a new Session.
type Options struct {
	ID           string
	Gateway      interfaces.IPaymentGateway
	Tokenizer    interfaces.ICardTokenizer
	Amount       entities.Cents
	Description  string
	GiftID       string
	Customer     entities.Customer
	Methods      []entities.PaymentMethod
	PollInterval time.Duration
	PollTimeout  time.Duration
	Callbacks    Callbacks
	Now          func() time.Time
}

// Snapshot is a copy of the session state safe to hand out.
type Snapshot struct {
	ID                 string                       `json:"id"`
	State              State                        `json:"state"`
	Gateway            string                       `json:"gateway"`
	SelectedMethod     entities.PaymentMethodID     `json:"selectedMethod,omitempty"`
	Amount             entities.Cents               `json:"amount"`
	Description        string                       `json:"description"`
	GiftID             string                       `json:"giftId,omitempty"`
	Customer           entities.Customer            `json:"customer"`
	PaymentMethods     []entities.PaymentMethod     `json:"paymentMethods"`
	InstallmentOptions []entities.InstallmentOption `json:"installmentOptions"`
	PixPayment         *entities.PixPayment         `json:"pixPayment"`
	PaymentToken       *entities.PaymentToken       `json:"paymentToken"`
	Payment            *entities.PaymentResponse    `json:"payment"`
	PaymentStatus      *entities.PaymentStatus      `json:"paymentStatus"`
	Error              *entities.FriendlyError      `json:"friendlyError"`
	RawError           string                       `json:"error,omitempty"`
	ErrorAt            *time.Time                   `json:"errorAt,omitempty"`
	Polling            bool                         `json:"polling"`
	Epoch              uint64                       `json:"epoch"`
}

// Session drives one guest checkout: PIX generation and polling, card
// tokenization and charge, error classification and reset.
//
// Every asynchronous operation is tagged with the epoch current when it
// started; results arriving after a Reset or a newer operation are dropped.
type Session struct {
	id           string
	gateway      interfaces.IPaymentGateway
	tokenizer    interfaces.ICardTokenizer
	callbacks    Callbacks
	pollInterval time.Duration
	pollTimeout  time.Duration
	now          func() time.Time
	validate     *validator.Validate

	mu          sync.Mutex
	wg          sync.WaitGroup
	closed      bool
	epoch       uint64
	cancelPoll  context.CancelFunc
	state       State
	selected    entities.PaymentMethodID
	amount      entities.Cents
	description string
	giftID      string
	customer    entities.Customer
	methods     []entities.PaymentMethod
	options     []entities.InstallmentOption
	pix         *entities.PixPayment
	token       *entities.PaymentToken
	payment     *entities.PaymentResponse
	friendly    *entities.FriendlyError
	rawErr      error
	errAt       time.Time
}

func NewSession(opts Options) (*Session, error) {
	if opts.Gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	s := &Session{
		id:           opts.ID,
		gateway:      opts.Gateway,
		tokenizer:    opts.Tokenizer,
		callbacks:    opts.Callbacks,
		pollInterval: opts.PollInterval,
		pollTimeout:  opts.PollTimeout,
		now:          opts.Now,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		state:        StateIdle,
		amount:       opts.Amount,
		description:  strings.TrimSpace(opts.Description),
		giftID:       strings.TrimSpace(opts.GiftID),
		customer:     opts.Customer,
		methods:      append([]entities.PaymentMethod(nil), opts.Methods...),
	}
	if s.pollInterval <= 0 {
		s.pollInterval = DefaultPollInterval
	}
	if s.pollTimeout <= 0 {
		s.pollTimeout = DefaultPollTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if len(s.methods) == 0 {
		s.methods = entities.DefaultPaymentMethods()
	}
	s.options = usecase.ComputeInstallments(s.amount)
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:                 s.id,
		State:              s.state,
		Gateway:            s.gateway.Name(),
		SelectedMethod:     s.selected,
		Amount:             s.amount,
		Description:        s.description,
		GiftID:             s.giftID,
		Customer:           s.customer,
		PaymentMethods:     append([]entities.PaymentMethod(nil), s.methods...),
		InstallmentOptions: append([]entities.InstallmentOption(nil), s.options...),
		Polling:            s.cancelPoll != nil,
		Epoch:              s.epoch,
	}
	if s.pix != nil {
		p := *s.pix
		snap.PixPayment = &p
	}
	if s.token != nil {
		t := *s.token
		snap.PaymentToken = &t
	}
	if s.payment != nil {
		p := *s.payment
		snap.Payment = &p
		status := p.Status
		snap.PaymentStatus = &status
	}
	if s.friendly != nil {
		fe := *s.friendly
		snap.Error = &fe
		if s.rawErr != nil {
			snap.RawError = s.rawErr.Error()
		}
		at := s.errAt
		snap.ErrorAt = &at
	}
	return snap
}

// SelectMethod switches the payment method without any network call. An empty
// id clears the selection.
func (s *Session) SelectMethod(id entities.PaymentMethodID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.state != StateIdle && s.state != StateError {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, s.state)
	}
	if id == "" {
		s.selected = ""
		return nil
	}
	if !s.methodEnabled(id) {
		return fmt.Errorf("%w: %s", ErrMethodUnavailable, id)
	}
	s.selected = id
	return nil
}

// SetAmount changes the charge amount and recomputes the installment options.
func (s *Session) SetAmount(amount entities.Cents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.state != StateIdle && s.state != StateError {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, s.state)
	}
	s.amount = amount
	s.options = usecase.ComputeInstallments(amount)
	return nil
}

// ClearError dismisses the current error without touching payment state.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.friendly = nil
	s.rawErr = nil
	s.errAt = time.Time{}
	if s.state == StateError {
		s.state = StateIdle
	}
}

// Reset cancels any poll loop, drops payment, token and PIX state and returns
// to idle. Payment methods and installment options are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopPollLocked()
	s.epoch++
	s.state = StateIdle
	s.selected = ""
	s.pix = nil
	s.token = nil
	s.payment = nil
	s.friendly = nil
	s.rawErr = nil
	s.errAt = time.Time{}
}

// Close cancels background work and waits for it to finish. The session
// rejects every action afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopPollLocked()
	s.epoch++
	s.mu.Unlock()

	s.wg.Wait()
}

// GeneratePixPayment creates a PIX charge and starts polling its status. A
// previous poll loop is cancelled first.
func (s *Session) GeneratePixPayment(ctx context.Context) (entities.PixPayment, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entities.PixPayment{}, ErrSessionClosed
	}
	switch s.state {
	case StateIdle, StateError, StatePixPending:
	default:
		state := s.state
		s.mu.Unlock()
		return entities.PixPayment{}, fmt.Errorf("%w: %s", ErrInvalidTransition, state)
	}
	if !s.methodEnabled(entities.PaymentMethodPix) {
		s.mu.Unlock()
		return entities.PixPayment{}, fmt.Errorf("%w: %s", ErrMethodUnavailable, entities.PaymentMethodPix)
	}

	s.stopPollLocked()
	s.epoch++
	epoch := s.epoch
	s.selected = entities.PaymentMethodPix
	s.pix = nil
	s.payment = nil

	customer, err := s.prepareLocked()
	if err != nil {
		notify := s.failLocked(err)
		s.mu.Unlock()
		notify()
		return entities.PixPayment{}, err
	}
	s.state = StateLoading
	s.clearErrorLocked()
	req := interfaces.PixRequest{
		Amount:      s.amount,
		Description: s.description,
		Customer:    customer,
		GiftID:      s.giftID,
	}
	s.mu.Unlock()

	pix, resp, err := s.gateway.GeneratePixPayment(ctx, req)
	if err == nil && (strings.TrimSpace(pix.PixCode) == "" || strings.TrimSpace(pix.QRCodeBase64) == "") {
		err = ErrMissingPixCode
	}

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		log.Printf("[checkout][pix] stale_result epoch=%d gateway=%s", epoch, s.gateway.Name())
		return entities.PixPayment{}, ErrStaleResult
	}
	if err != nil {
		log.Printf("[checkout][pix] generation_failed gateway=%s err=%v", s.gateway.Name(), err)
		notify := s.failLocked(err)
		s.mu.Unlock()
		notify()
		return entities.PixPayment{}, err
	}

	if pix.Status == "" {
		pix.Status = entities.PaymentStatusPending
	}
	if resp.ID == "" {
		resp.ID = pix.ID
	}
	if resp.Status == "" {
		resp.Status = pix.Status
	}
	resp.Method = entities.PaymentMethodPix
	s.fillResponseLocked(&resp, customer)
	s.pix = &pix
	s.payment = &resp
	log.Printf("[checkout][pix] generated gateway=%s payment_id=%s status=%s", s.gateway.Name(), pix.ID, pix.Status)

	if pix.Status.IsTerminal() {
		notify := s.finishLocked(resp)
		s.mu.Unlock()
		notify()
		return pix, nil
	}

	s.state = StatePixPending
	s.startPollLocked(epoch, pix.ID)
	s.mu.Unlock()
	return pix, nil
}

// ProcessCreditCardPayment tokenizes the card when the gateway needs it and
// charges it in the given number of installments.
func (s *Session) ProcessCreditCardPayment(ctx context.Context, form entities.CreditCardForm, installments int) (entities.PaymentResponse, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entities.PaymentResponse{}, ErrSessionClosed
	}
	if s.state != StateIdle && s.state != StateError {
		state := s.state
		s.mu.Unlock()
		return entities.PaymentResponse{}, fmt.Errorf("%w: %s", ErrInvalidTransition, state)
	}
	if !s.methodEnabled(entities.PaymentMethodCreditCard) {
		s.mu.Unlock()
		return entities.PaymentResponse{}, fmt.Errorf("%w: %s", ErrMethodUnavailable, entities.PaymentMethodCreditCard)
	}

	s.stopPollLocked()
	s.epoch++
	epoch := s.epoch
	s.selected = entities.PaymentMethodCreditCard
	s.token = nil
	s.payment = nil

	if installments == 0 {
		installments = form.Installments
	}
	if installments == 0 {
		installments = 1
	}

	customer, err := s.prepareLocked()
	if err == nil {
		if _, ok := usecase.FindInstallment(s.options, installments); !ok {
			err = ErrInvalidInstallments
		}
	}
	needsToken := s.gateway.RequiresCardToken()
	if err == nil && needsToken {
		err = s.validateCardLocked(form)
	}
	if err == nil && needsToken && s.tokenizer == nil {
		err = ErrTokenizerUnavailable
	}
	if err != nil {
		notify := s.failLocked(err)
		s.mu.Unlock()
		notify()
		return entities.PaymentResponse{}, err
	}
	s.state = StateCardProcessing
	s.clearErrorLocked()
	req := interfaces.CardChargeRequest{
		Installments: installments,
		Amount:       s.amount,
		Description:  s.description,
		Customer:     customer,
		GiftID:       s.giftID,
	}
	s.mu.Unlock()

	if needsToken {
		token, err := s.tokenizer.Tokenize(ctx, form)
		if err == nil && strings.TrimSpace(token.ID) == "" {
			err = errors.New("token do cartão não retornado")
		}
		s.mu.Lock()
		if epoch != s.epoch {
			s.mu.Unlock()
			return entities.PaymentResponse{}, ErrStaleResult
		}
		if err != nil {
			log.Printf("[checkout][card] tokenize_failed gateway=%s err=%v", s.gateway.Name(), err)
			notify := s.failLocked(err)
			s.mu.Unlock()
			notify()
			return entities.PaymentResponse{}, err
		}
		s.token = &token
		s.mu.Unlock()
		req.Token = token
	}

	resp, err := s.gateway.ChargeCreditCard(ctx, req)

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		log.Printf("[checkout][card] stale_result epoch=%d gateway=%s", epoch, s.gateway.Name())
		return entities.PaymentResponse{}, ErrStaleResult
	}
	if err != nil {
		log.Printf("[checkout][card] charge_failed gateway=%s err=%v", s.gateway.Name(), err)
		notify := s.failLocked(err)
		s.mu.Unlock()
		notify()
		return entities.PaymentResponse{}, err
	}

	resp.Method = entities.PaymentMethodCreditCard
	if resp.Installments == 0 {
		resp.Installments = installments
	}
	if resp.Status == "" {
		resp.Status = entities.PaymentStatusPending
	}
	s.fillResponseLocked(&resp, customer)
	s.payment = &resp
	log.Printf("[checkout][card] charged gateway=%s payment_id=%s status=%s installments=%d", s.gateway.Name(), resp.ID, resp.Status, resp.Installments)

	if resp.Status.IsTerminal() {
		notify := s.finishLocked(resp)
		s.mu.Unlock()
		notify()
		if resp.Status == entities.PaymentStatusApproved {
			return resp, nil
		}
		return resp, s.terminalErr(resp)
	}

	s.state = StateCardPending
	if resp.ID != "" {
		s.startPollLocked(epoch, resp.ID)
	}
	onPending := s.callbacks.OnPending
	s.mu.Unlock()
	if onPending != nil {
		onPending(resp)
	}
	return resp, nil
}

func (s *Session) methodEnabled(id entities.PaymentMethodID) bool {
	for _, m := range s.methods {
		if m.ID == id {
			return m.Enabled
		}
	}
	return false
}

// prepareLocked validates the charge inputs and fills customer defaults.
func (s *Session) prepareLocked() (entities.Customer, error) {
	c := s.customer
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Document = entities.OnlyDigits(c.Document)

	if c.Name == "" {
		return c, ErrCustomerNameRequired
	}
	if s.amount <= 0 {
		return c, ErrInvalidAmount
	}
	if err := s.validate.Struct(c); err != nil {
		return c, fmt.Errorf("dados do cliente inválidos (validation): %w", err)
	}
	if c.Email == "" {
		c.Email = strings.ToLower(strings.Join(strings.Fields(c.Name), "")) + guestEmailDomain
	}
	if c.Document == "" {
		c.Document = defaultDocument
	}
	return c, nil
}

func (s *Session) validateCardLocked(form entities.CreditCardForm) error {
	if err := s.validate.Struct(form); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, cardFieldNames[fe.Field()])
			}
		}
		return fmt.Errorf("dados do cartão inválidos: %s", strings.Join(fields, ", "))
	}
	if n := len(form.CleanCardNumber()); n < 13 || n > 19 {
		return errors.New("dados do cartão inválidos: número do cartão")
	}
	return nil
}

func (s *Session) fillResponseLocked(resp *entities.PaymentResponse, customer entities.Customer) {
	now := s.now()
	if resp.Amount == 0 {
		resp.Amount = s.amount
	}
	if resp.Description == "" {
		resp.Description = s.description
	}
	if resp.Customer.Name == "" {
		resp.Customer = customer
	}
	if resp.GiftID == "" {
		resp.GiftID = s.giftID
	}
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = now
	}
	if resp.UpdatedAt.IsZero() {
		resp.UpdatedAt = now
	}
}

func (s *Session) clearErrorLocked() {
	s.friendly = nil
	s.rawErr = nil
	s.errAt = time.Time{}
}

// failLocked moves the session to error and returns the deferred OnError call.
func (s *Session) failLocked(err error) func() {
	fe := usecase.ClassifyError(err)
	s.state = StateError
	s.friendly = &fe
	s.rawErr = err
	s.errAt = s.now()

	onError := s.callbacks.OnError
	return func() {
		if onError != nil {
			onError(fe, err)
		}
	}
}

// finishLocked moves the session to the terminal state matching the payment
// status and returns the deferred callback.
func (s *Session) finishLocked(resp entities.PaymentResponse) func() {
	s.stopPollLocked()
	if resp.Status == entities.PaymentStatusApproved {
		s.state = StateApproved
		if resp.ApprovedAt == nil {
			at := s.now()
			resp.ApprovedAt = &at
			s.payment.ApprovedAt = &at
		}
		onSuccess := s.callbacks.OnSuccess
		return func() {
			if onSuccess != nil {
				onSuccess(resp)
			}
		}
	}

	if resp.Status == entities.PaymentStatusRejected {
		s.state = StateRejected
	} else {
		s.state = StateCancelled
	}
	err := s.terminalErr(resp)
	fe := usecase.ClassifyError(err)
	s.friendly = &fe
	s.rawErr = err
	s.errAt = s.now()

	onError := s.callbacks.OnError
	return func() {
		if onError != nil {
			onError(fe, err)
		}
	}
}

func (s *Session) terminalErr(resp entities.PaymentResponse) error {
	switch {
	case resp.Status == entities.PaymentStatusRejected && strings.Contains(strings.ToLower(resp.StatusDetail), "insufficient"):
		return ErrInsufficientFunds
	case resp.Status == entities.PaymentStatusRejected:
		return ErrPaymentRejected
	case resp.Method == entities.PaymentMethodPix:
		return ErrPixExpired
	default:
		return ErrPaymentCancelled
	}
}

var cardFieldNames = map[string]string{
	"HolderName":      "nome do titular",
	"CardNumber":      "número",
	"ExpirationMonth": "mês de validade",
	"ExpirationYear":  "ano de validade",
	"CVV":             "código de segurança",
	"DocumentType":    "tipo de documento",
	"DocumentNumber":  "documento",
}
