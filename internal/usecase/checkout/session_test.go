package checkout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
	mock_interfaces "casamento_presentes/internal/usecase/interfaces/mocks"
)

type httpStatusErr struct{ status int }

func (e httpStatusErr) Error() string   { return "HTTP error" }
func (e httpStatusErr) StatusCode() int { return e.status }

type recorder struct {
	success atomic.Int32
	pending atomic.Int32
	failure atomic.Int32
	done    chan entities.PaymentResponse
	errs    chan entities.FriendlyError
}

func newRecorder() *recorder {
	return &recorder{
		done: make(chan entities.PaymentResponse, 8),
		errs: make(chan entities.FriendlyError, 8),
	}
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnSuccess: func(p entities.PaymentResponse) {
			r.success.Add(1)
			r.done <- p
		},
		OnPending: func(entities.PaymentResponse) { r.pending.Add(1) },
		OnError: func(fe entities.FriendlyError, _ error) {
			r.failure.Add(1)
			r.errs <- fe
		},
	}
}

func newGateway(ctrl *gomock.Controller, requiresToken bool) *mock_interfaces.MockIPaymentGateway {
	gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gw.EXPECT().Name().Return("mock").AnyTimes()
	gw.EXPECT().RequiresCardToken().Return(requiresToken).AnyTimes()
	return gw
}

func newSession(t *testing.T, gw interfaces.IPaymentGateway, tok interfaces.ICardTokenizer, rec *recorder) *Session {
	t.Helper()
	s, err := NewSession(Options{
		Gateway:      gw,
		Tokenizer:    tok,
		Amount:       10000,
		Description:  "Jogo de panelas",
		GiftID:       "gift-7",
		Customer:     entities.Customer{Name: "  Maria Silva "},
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  2 * time.Second,
		Callbacks:    rec.callbacks(),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func pixFixture() (entities.PixPayment, entities.PaymentResponse) {
	pix := entities.PixPayment{
		ID:           "pay-1",
		QRCodeBase64: "iVBORw0KGgo=",
		PixCode:      "00020126580014BR.GOV.BCB.PIX",
		Amount:       10000,
		ExpiresAt:    time.Now().Add(30 * time.Minute),
		Status:       entities.PaymentStatusPending,
	}
	return pix, entities.PaymentResponse{ID: "pay-1", Status: entities.PaymentStatusPending}
}

func validCard() entities.CreditCardForm {
	return entities.CreditCardForm{
		HolderName:      "MARIA SILVA",
		CardNumber:      "4111 1111 1111 1111",
		ExpirationMonth: "11",
		ExpirationYear:  "2030",
		CVV:             "123",
		DocumentType:    "CPF",
		DocumentNumber:  "123.456.789-09",
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 2*time.Millisecond)
}

func TestNewSession(t *testing.T) {
	t.Run("requires a gateway", func(t *testing.T) {
		_, err := NewSession(Options{})
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newSession(t, newGateway(ctrl, true), nil, newRecorder())

		snap := s.Snapshot()
		assert.Equal(t, StateIdle, snap.State)
		assert.Len(t, snap.InstallmentOptions, 12)
		assert.Len(t, snap.PaymentMethods, 2)
		assert.Nil(t, snap.PixPayment)
		assert.Nil(t, snap.PaymentStatus)
	})
}

func TestSession_SelectMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newSession(t, newGateway(ctrl, true), nil, newRecorder())

	require.NoError(t, s.SelectMethod(entities.PaymentMethodCreditCard))
	assert.Equal(t, entities.PaymentMethodCreditCard, s.Snapshot().SelectedMethod)
	assert.Equal(t, StateIdle, s.Snapshot().State)

	err := s.SelectMethod("BOLETO")
	assert.ErrorIs(t, err, ErrMethodUnavailable)

	require.NoError(t, s.SelectMethod(""))
	assert.Empty(t, s.Snapshot().SelectedMethod)
}

func TestSession_GeneratePixPayment(t *testing.T) {
	t.Run("loading then pix pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
				assert.Equal(t, StateLoading, s.Snapshot().State)
				assert.Equal(t, "Maria Silva", req.Customer.Name)
				assert.Equal(t, "mariasilva@guest.com", req.Customer.Email)
				assert.Equal(t, "00000000000", req.Customer.Document)
				assert.Equal(t, entities.Cents(10000), req.Amount)
				assert.Equal(t, "gift-7", req.GiftID)
				return pix, resp, nil
			})
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").Return(resp, nil).AnyTimes()

		got, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "pay-1", got.ID)

		snap := s.Snapshot()
		assert.Equal(t, StatePixPending, snap.State)
		require.NotNil(t, snap.PixPayment)
		assert.NotEmpty(t, snap.PixPayment.PixCode)
		assert.NotEmpty(t, snap.PixPayment.QRCodeBase64)
		assert.True(t, snap.Polling)
		assert.Nil(t, snap.Error)
		assert.Equal(t, entities.PaymentMethodPix, snap.SelectedMethod)
	})

	t.Run("approved status fires OnSuccess once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		approved := resp
		approved.Status = entities.PaymentStatusApproved

		var polls atomic.Int32
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").DoAndReturn(
			func(context.Context, string) (entities.PaymentResponse, error) {
				if polls.Add(1) < 3 {
					return resp, nil
				}
				return approved, nil
			}).AnyTimes()

		_, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)

		select {
		case p := <-rec.done:
			assert.Equal(t, entities.PaymentStatusApproved, p.Status)
			assert.NotNil(t, p.ApprovedAt)
		case <-time.After(time.Second):
			t.Fatalf("OnSuccess was not called")
		}

		seen := polls.Load()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, seen, polls.Load(), "polling must stop after a terminal status")
		assert.Equal(t, int32(1), rec.success.Load())
		assert.Equal(t, int32(0), rec.failure.Load())

		snap := s.Snapshot()
		assert.Equal(t, StateApproved, snap.State)
		require.NotNil(t, snap.PaymentStatus)
		assert.Equal(t, entities.PaymentStatusApproved, *snap.PaymentStatus)
		assert.False(t, snap.Polling)
	})

	t.Run("backend 500 becomes server unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).
			Return(entities.PixPayment{}, entities.PaymentResponse{}, httpStatusErr{status: 500})

		_, err := s.GeneratePixPayment(context.Background())
		require.Error(t, err)

		snap := s.Snapshot()
		assert.Equal(t, StateError, snap.State)
		require.NotNil(t, snap.Error)
		assert.Equal(t, entities.ErrorCategoryServerUnavailable, snap.Error.Category)
		assert.True(t, snap.Error.CanRetry)
		assert.Equal(t, "HTTP error", snap.RawError)
		assert.NotNil(t, snap.ErrorAt)
		assert.Nil(t, snap.PixPayment)
		assert.Equal(t, int32(1), rec.failure.Load())
	})

	t.Run("missing pix code is a generation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s := newSession(t, gw, nil, newRecorder())

		pix, resp := pixFixture()
		pix.PixCode = ""
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)

		_, err := s.GeneratePixPayment(context.Background())
		assert.ErrorIs(t, err, ErrMissingPixCode)
		assert.Equal(t, entities.ErrorCategoryPixGenerationFailed, s.Snapshot().Error.Category)
		assert.Nil(t, s.Snapshot().PixPayment)
	})

	t.Run("customer name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s, err := NewSession(Options{Gateway: gw, Amount: 10000, Customer: entities.Customer{Name: "   "}})
		require.NoError(t, err)
		defer s.Close()

		_, err = s.GeneratePixPayment(context.Background())
		assert.ErrorIs(t, err, ErrCustomerNameRequired)
		assert.Equal(t, entities.ErrorCategoryCustomerNameRequired, s.Snapshot().Error.Category)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s, err := NewSession(Options{Gateway: gw, Amount: 0, Customer: entities.Customer{Name: "Ana"}})
		require.NoError(t, err)
		defer s.Close()

		_, err = s.GeneratePixPayment(context.Background())
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, entities.ErrorCategoryValidation, s.Snapshot().Error.Category)
		assert.Empty(t, s.Snapshot().InstallmentOptions)
	})

	t.Run("poll timeout expires the pix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s, err := NewSession(Options{
			Gateway:      gw,
			Amount:       5000,
			Customer:     entities.Customer{Name: "Ana"},
			PollInterval: 5 * time.Millisecond,
			PollTimeout:  40 * time.Millisecond,
			Callbacks:    rec.callbacks(),
		})
		require.NoError(t, err)
		defer s.Close()

		pix, resp := pixFixture()
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").Return(resp, nil).AnyTimes()

		_, err = s.GeneratePixPayment(context.Background())
		require.NoError(t, err)

		select {
		case fe := <-rec.errs:
			assert.Equal(t, entities.ErrorCategoryPixExpired, fe.Category)
		case <-time.After(time.Second):
			t.Fatalf("expiry was not reported")
		}
		assert.Equal(t, StateError, s.Snapshot().State)
		assert.False(t, s.Snapshot().Polling)
	})

	t.Run("transient poll errors keep polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		approved := resp
		approved.Status = entities.PaymentStatusApproved
		var polls atomic.Int32
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").DoAndReturn(
			func(context.Context, string) (entities.PaymentResponse, error) {
				if polls.Add(1) < 3 {
					return entities.PaymentResponse{}, errors.New("network down")
				}
				return approved, nil
			}).AnyTimes()

		_, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)
		waitFor(t, func() bool { return s.Snapshot().State == StateApproved })
		assert.Equal(t, int32(1), rec.success.Load())
	})

	t.Run("rejected pix is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		rejected := resp
		rejected.Status = entities.PaymentStatusRejected
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").Return(rejected, nil).AnyTimes()

		_, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)

		fe := <-rec.errs
		assert.Equal(t, entities.ErrorCategoryCardRejected, fe.Category)
		assert.False(t, fe.CanRetry)
		waitFor(t, func() bool { return s.Snapshot().State == StateRejected })
		assert.Equal(t, int32(1), rec.failure.Load())
	})
}

func TestSession_Reset(t *testing.T) {
	t.Run("from error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s := newSession(t, gw, nil, newRecorder())

		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).
			Return(entities.PixPayment{}, entities.PaymentResponse{}, errors.New("Failed to fetch"))
		_, _ = s.GeneratePixPayment(context.Background())
		require.Equal(t, StateError, s.Snapshot().State)

		before := s.Snapshot()
		s.Reset()
		snap := s.Snapshot()
		assert.Equal(t, StateIdle, snap.State)
		assert.Nil(t, snap.PixPayment)
		assert.Nil(t, snap.PaymentToken)
		assert.Nil(t, snap.PaymentStatus)
		assert.Nil(t, snap.Error)
		assert.Empty(t, snap.SelectedMethod)
		assert.Equal(t, before.PaymentMethods, snap.PaymentMethods)
		assert.Equal(t, before.InstallmentOptions, snap.InstallmentOptions)
	})

	t.Run("from terminal approved after card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		s := newSession(t, gw, tok, newRecorder())

		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.PaymentToken{ID: "tok-1"}, nil)
		gw.EXPECT().ChargeCreditCard(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResponse{ID: "pay-9", Status: entities.PaymentStatusApproved}, nil)

		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		require.NoError(t, err)
		require.NotNil(t, s.Snapshot().PaymentToken)

		s.Reset()
		snap := s.Snapshot()
		assert.Equal(t, StateIdle, snap.State)
		assert.Nil(t, snap.PaymentToken)
		assert.Nil(t, snap.PaymentStatus)
		assert.Len(t, snap.InstallmentOptions, 12)
	})

	t.Run("stops polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		approved := resp
		approved.Status = entities.PaymentStatusApproved
		var polls atomic.Int32
		var reset atomic.Bool
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").DoAndReturn(
			func(context.Context, string) (entities.PaymentResponse, error) {
				polls.Add(1)
				if reset.Load() {
					return approved, nil
				}
				return resp, nil
			}).AnyTimes()

		_, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)
		waitFor(t, func() bool { return polls.Load() >= 1 })

		s.Reset()
		reset.Store(true)
		time.Sleep(30 * time.Millisecond)

		assert.Equal(t, int32(0), rec.success.Load())
		assert.Equal(t, StateIdle, s.Snapshot().State)
		assert.False(t, s.Snapshot().Polling)
	})

	t.Run("discards a stale generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pix, resp := pixFixture()
		started := make(chan struct{})
		release := make(chan struct{})
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, interfaces.PixRequest) (entities.PixPayment, entities.PaymentResponse, error) {
				close(started)
				<-release
				return pix, resp, nil
			})

		errCh := make(chan error, 1)
		go func() {
			_, err := s.GeneratePixPayment(context.Background())
			errCh <- err
		}()

		<-started
		s.Reset()
		close(release)

		assert.ErrorIs(t, <-errCh, ErrStaleResult)
		snap := s.Snapshot()
		assert.Equal(t, StateIdle, snap.State)
		assert.Nil(t, snap.PixPayment)
		assert.False(t, snap.Polling)
	})
}

func TestSession_NewGenerationReplacesPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := newGateway(ctrl, true)
	rec := newRecorder()
	s := newSession(t, gw, nil, rec)

	first, firstResp := pixFixture()
	second, secondResp := pixFixture()
	second.ID, secondResp.ID = "pay-2", "pay-2"

	var firstPolls atomic.Int32
	var regenerated atomic.Bool
	gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(first, firstResp, nil)
	gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(second, secondResp, nil)
	gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-1").DoAndReturn(
		func(context.Context, string) (entities.PaymentResponse, error) {
			firstPolls.Add(1)
			if regenerated.Load() {
				approved := firstResp
				approved.Status = entities.PaymentStatusApproved
				return approved, nil
			}
			return firstResp, nil
		}).AnyTimes()
	gw.EXPECT().GetPaymentStatus(gomock.Any(), "pay-2").Return(secondResp, nil).AnyTimes()

	_, err := s.GeneratePixPayment(context.Background())
	require.NoError(t, err)
	waitFor(t, func() bool { return firstPolls.Load() >= 1 })

	_, err = s.GeneratePixPayment(context.Background())
	require.NoError(t, err)
	regenerated.Store(true)
	time.Sleep(30 * time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, StatePixPending, snap.State)
	assert.Equal(t, "pay-2", snap.PixPayment.ID)
	assert.Equal(t, int32(0), rec.success.Load())
}

func TestSession_ProcessCreditCardPayment(t *testing.T) {
	t.Run("tokenize and approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		rec := newRecorder()
		s := newSession(t, gw, tok, rec)

		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.CreditCardForm) (entities.PaymentToken, error) {
				assert.Equal(t, StateCardProcessing, s.Snapshot().State)
				return entities.PaymentToken{ID: "tok-1"}, nil
			})
		gw.EXPECT().ChargeCreditCard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CardChargeRequest) (entities.PaymentResponse, error) {
				assert.Equal(t, "tok-1", req.Token.ID)
				assert.Equal(t, 6, req.Installments)
				assert.Equal(t, entities.Cents(10000), req.Amount)
				return entities.PaymentResponse{ID: "pay-3", Status: entities.PaymentStatusApproved}, nil
			})

		resp, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 6)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentMethodCreditCard, resp.Method)
		assert.Equal(t, 6, resp.Installments)
		assert.Equal(t, StateApproved, s.Snapshot().State)
		assert.Equal(t, int32(1), rec.success.Load())
	})

	t.Run("rejected is not retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		rec := newRecorder()
		s := newSession(t, gw, tok, rec)

		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.PaymentToken{ID: "tok-1"}, nil)
		gw.EXPECT().ChargeCreditCard(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResponse{ID: "pay-4", Status: entities.PaymentStatusRejected}, nil)

		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		assert.ErrorIs(t, err, ErrPaymentRejected)

		snap := s.Snapshot()
		assert.Equal(t, StateRejected, snap.State)
		require.NotNil(t, snap.Error)
		assert.Equal(t, entities.ErrorCategoryCardRejected, snap.Error.Category)
		assert.False(t, snap.Error.CanRetry)
		assert.Equal(t, int32(1), rec.failure.Load())
	})

	t.Run("rejected for insufficient funds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		rec := newRecorder()
		s := newSession(t, gw, tok, rec)

		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.PaymentToken{ID: "tok-1"}, nil)
		gw.EXPECT().ChargeCreditCard(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResponse{
				ID:           "pay-5",
				Status:       entities.PaymentStatusRejected,
				StatusDetail: "cc_rejected_insufficient_amount",
			}, nil)

		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		snap := s.Snapshot()
		assert.Equal(t, StateRejected, snap.State)
		require.NotNil(t, snap.Error)
		assert.Equal(t, entities.ErrorCategoryInsufficientFunds, snap.Error.Category)
		assert.False(t, snap.Error.CanRetry)
		assert.Equal(t, int32(1), rec.failure.Load())
	})

	t.Run("missing tokenizer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s := newSession(t, gw, nil, newRecorder())

		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		assert.ErrorIs(t, err, ErrTokenizerUnavailable)
		assert.Equal(t, entities.ErrorCategoryMercadoPagoSDK, s.Snapshot().Error.Category)
	})

	t.Run("invalid card data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		s := newSession(t, gw, tok, newRecorder())

		card := validCard()
		card.ExpirationMonth = "1"
		card.CVV = ""
		_, err := s.ProcessCreditCardPayment(context.Background(), card, 1)
		require.Error(t, err)
		assert.Equal(t, entities.ErrorCategoryCardInvalid, s.Snapshot().Error.Category)
	})

	t.Run("installments out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		s := newSession(t, gw, tok, newRecorder())

		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 13)
		assert.ErrorIs(t, err, ErrInvalidInstallments)
	})

	t.Run("tokenizer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		tok := mock_interfaces.NewMockICardTokenizer(ctrl)
		s := newSession(t, gw, tok, newRecorder())

		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.PaymentToken{}, errors.New("invalid card token"))
		_, err := s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		require.Error(t, err)
		snap := s.Snapshot()
		assert.Equal(t, StateError, snap.State)
		assert.Equal(t, entities.ErrorCategoryCardInvalid, snap.Error.Category)
		assert.Nil(t, snap.PaymentToken)
	})

	t.Run("hosted checkout goes pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, false)
		rec := newRecorder()
		s := newSession(t, gw, nil, rec)

		pending := entities.PaymentResponse{
			ID:          "CHEC_1",
			Status:      entities.PaymentStatusPending,
			CheckoutURL: "https://pagamento.pagbank.com/CHEC_1",
		}
		gw.EXPECT().ChargeCreditCard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CardChargeRequest) (entities.PaymentResponse, error) {
				assert.Empty(t, req.Token.ID)
				return pending, nil
			})
		gw.EXPECT().GetPaymentStatus(gomock.Any(), "CHEC_1").Return(pending, nil).AnyTimes()

		resp, err := s.ProcessCreditCardPayment(context.Background(), entities.CreditCardForm{}, 3)
		require.NoError(t, err)
		assert.Equal(t, "https://pagamento.pagbank.com/CHEC_1", resp.CheckoutURL)

		snap := s.Snapshot()
		assert.Equal(t, StateCardPending, snap.State)
		assert.Equal(t, int32(1), rec.pending.Load())
		assert.Equal(t, int32(0), rec.success.Load())
	})

	t.Run("busy session rejects a second action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := newGateway(ctrl, true)
		s := newSession(t, gw, nil, newRecorder())

		pix, resp := pixFixture()
		gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).Return(pix, resp, nil)
		gw.EXPECT().GetPaymentStatus(gomock.Any(), gomock.Any()).Return(resp, nil).AnyTimes()

		_, err := s.GeneratePixPayment(context.Background())
		require.NoError(t, err)

		_, err = s.ProcessCreditCardPayment(context.Background(), validCard(), 1)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSession_ClearErrorAndSetAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := newGateway(ctrl, true)
	s := newSession(t, gw, nil, newRecorder())

	gw.EXPECT().GeneratePixPayment(gomock.Any(), gomock.Any()).
		Return(entities.PixPayment{}, entities.PaymentResponse{}, errors.New("network"))
	_, _ = s.GeneratePixPayment(context.Background())
	require.Equal(t, StateError, s.Snapshot().State)

	s.ClearError()
	assert.Equal(t, StateIdle, s.Snapshot().State)
	assert.Nil(t, s.Snapshot().Error)

	require.NoError(t, s.SetAmount(20000))
	snap := s.Snapshot()
	assert.Equal(t, entities.Cents(20000), snap.Amount)
	assert.Equal(t, entities.Cents(22500), snap.InstallmentOptions[5].TotalAmount)
}

func TestSession_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := newGateway(ctrl, true)
	s, err := NewSession(Options{Gateway: gw, Amount: 100, Customer: entities.Customer{Name: "Ana"}})
	require.NoError(t, err)

	s.Close()
	_, err = s.GeneratePixPayment(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)
}
