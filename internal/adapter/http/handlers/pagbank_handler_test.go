package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"casamento_presentes/internal/adapter/http/handlers/mocks"
	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type statusErr struct{ status int }

func (e statusErr) Error() string   { return "not found" }
func (e statusErr) StatusCode() int { return e.status }

func newHostedRouter(h *HostedCheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/pagbank/checkout", h.CreateCheckout)
	r.GET("/pagbank/checkout/:id/status", h.GetCheckoutStatus)
	return r
}

func TestHostedCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newHostedRouter(NewHostedCheckoutHandler(mocks.NewMockIHostedCheckoutUseCase(ctrl), ""))
		if w := doJSON(r, http.MethodPost, "/pagbank/checkout", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default redirect and success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHostedCheckoutUseCase(ctrl)
		r := newHostedRouter(NewHostedCheckoutHandler(uc, "https://casamento.example/obrigado"))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req entities.HostedCheckoutRequest) (entities.HostedCheckout, error) {
				if req.RedirectURL != "https://casamento.example/obrigado" {
					t.Fatalf("expected default redirect, got %q", req.RedirectURL)
				}
				if req.Amount != 25000 || len(req.Methods) != 2 || req.Methods[0] != entities.HostedMethodPix {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.HostedCheckout{
					ID:          "CHEC_1",
					ReferenceID: req.ReferenceID,
					PaymentURL:  "https://pagamento.sandbox.pagbank.com.br/pagamento?code=abc",
					ExpiresAt:   time.Now().Add(time.Hour),
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/pagbank/checkout", `{"reference_id":"ref-1","amount":250,"methods":["pix","credit_card"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["redirect_url"] != body["payment_url"] || body["id"] != "CHEC_1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHostedCheckoutUseCase(ctrl)
		r := newHostedRouter(NewHostedCheckoutHandler(uc, ""))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.HostedCheckout{}, usecase.ErrInvalidHostedAmount)
		if w := doJSON(r, http.MethodPost, "/pagbank/checkout", `{"amount":0}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHostedCheckoutUseCase(ctrl)
		r := newHostedRouter(NewHostedCheckoutHandler(uc, ""))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.HostedCheckout{}, usecase.ErrHostedCheckoutUnavailable)
		if w := doJSON(r, http.MethodPost, "/pagbank/checkout", `{"amount":10}`); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestHostedCheckoutHandler_GetCheckoutStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHostedCheckoutUseCase(ctrl)
		r := newHostedRouter(NewHostedCheckoutHandler(uc, ""))

		uc.EXPECT().GetStatus(gomock.Any(), "CHEC_1").Return(entities.HostedCheckoutStatus{
			ID:            "CHEC_1",
			Status:        "PAID",
			PaymentStatus: entities.PaymentStatusApproved,
			Amount:        25000,
		}, nil)
		w := doJSON(r, http.MethodGet, "/pagbank/checkout/CHEC_1/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_status"] != "APPROVED" || body["status"] != "PAID" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHostedCheckoutUseCase(ctrl)
		r := newHostedRouter(NewHostedCheckoutHandler(uc, ""))

		uc.EXPECT().GetStatus(gomock.Any(), "CHEC_X").Return(entities.HostedCheckoutStatus{}, errors.Join(errors.New("pagbank"), statusErr{status: http.StatusNotFound}))
		if w := doJSON(r, http.MethodGet, "/pagbank/checkout/CHEC_X/status", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
