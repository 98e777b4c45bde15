package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"casamento_presentes/internal/domain/entities"
	mock_interfaces "casamento_presentes/internal/usecase/interfaces/mocks"
)

func TestHostedCheckoutUseCase_CreateValidations(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIHostedCheckoutGateway(ctrl)
	uc := NewHostedCheckoutUseCase(gateway, nil)

	tests := []struct {
		name string
		req  entities.HostedCheckoutRequest
		want error
	}{
		{"zero amount", entities.HostedCheckoutRequest{Amount: 0}, ErrInvalidHostedAmount},
		{"too many installments", entities.HostedCheckoutRequest{Amount: 100, MaxInstallments: 13}, ErrInvalidMaxInstallments},
		{"unknown method", entities.HostedCheckoutRequest{Amount: 100, Methods: []entities.HostedCheckoutMethod{"CASH"}}, ErrInvalidHostedMethod},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("not configured", func(t *testing.T) {
		if _, err := NewHostedCheckoutUseCase(nil, nil).Create(context.Background(), entities.HostedCheckoutRequest{Amount: 100}); !errors.Is(err, ErrHostedCheckoutUnavailable) {
			t.Fatalf("expected ErrHostedCheckoutUnavailable, got %v", err)
		}
	})
}

func TestHostedCheckoutUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIHostedCheckoutGateway(ctrl)
	repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	uc := NewHostedCheckoutUseCase(gateway, repo)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error) {
			if req.Description != defaultHostedDescription || req.Customer.Name != "Ana" {
				t.Errorf("request not normalized: %+v", req)
			}
			if len(req.Methods) != 1 || req.Methods[0] != entities.HostedMethodPix {
				t.Errorf("methods not normalized: %v", req.Methods)
			}
			return entities.HostedCheckout{ID: "CHEC_1", ReferenceID: "gift-1", PaymentURL: "https://pay"}, nil
		})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, bool, error) {
			if r.ID != "CHEC_1" || r.Status != entities.PaymentStatusPending || r.Method != entities.PaymentMethodPix || !r.CreatedAt.Equal(now) {
				t.Errorf("unexpected record %+v", r)
			}
			return r, true, nil
		})

	checkout, err := uc.Create(context.Background(), entities.HostedCheckoutRequest{
		GiftID:   "gift-1",
		Amount:   15000,
		Customer: entities.Customer{Name: "  Ana "},
		Methods:  []entities.HostedCheckoutMethod{" pix"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkout.PaymentURL != "https://pay" {
		t.Fatalf("unexpected checkout %+v", checkout)
	}
}

func TestHostedCheckoutUseCase_GetStatus(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewHostedCheckoutUseCase(mock_interfaces.NewMockIHostedCheckoutGateway(ctrl), nil)
		if _, err := uc.GetStatus(context.Background(), " "); !errors.Is(err, ErrInvalidCheckoutID) {
			t.Fatalf("expected ErrInvalidCheckoutID, got %v", err)
		}
	})

	t.Run("pending is not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIHostedCheckoutGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewHostedCheckoutUseCase(gateway, repo)

		gateway.EXPECT().GetCheckoutStatus(gomock.Any(), "CHEC_1").Return(entities.HostedCheckoutStatus{ID: "CHEC_1", Status: "WAITING", PaymentStatus: entities.PaymentStatusPending}, nil)

		st, err := uc.GetStatus(context.Background(), "CHEC_1")
		if err != nil || st.Status != "WAITING" {
			t.Fatalf("unexpected status %+v err=%v", st, err)
		}
	})

	t.Run("paid updates ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIHostedCheckoutGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewHostedCheckoutUseCase(gateway, repo)

		gateway.EXPECT().GetCheckoutStatus(gomock.Any(), "CHEC_1").Return(entities.HostedCheckoutStatus{
			ID:            "CHEC_1",
			Status:        "PAID",
			PaymentStatus: entities.PaymentStatusApproved,
			PaymentMethod: "CREDIT_CARD",
			Amount:        15000,
		}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, bool, error) {
				if r.Status != entities.PaymentStatusApproved || r.Method != entities.PaymentMethodCreditCard || r.Gateway != "hosted" {
					t.Errorf("unexpected record %+v", r)
				}
				return r, true, nil
			})

		if _, err := uc.GetStatus(context.Background(), "CHEC_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIHostedCheckoutGateway(ctrl)
		uc := NewHostedCheckoutUseCase(gateway, nil)
		gateway.EXPECT().GetCheckoutStatus(gomock.Any(), "CHEC_1").Return(entities.HostedCheckoutStatus{}, errors.New("Erro ao consultar status: boom"))

		if _, err := uc.GetStatus(context.Background(), "CHEC_1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
