package payments

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

func newPagBankServer(t *testing.T, checkoutBody string, onCreate func(map[string]any)) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/pagbank/checkout":
			body := decodeBody(t, r)
			if onCreate != nil {
				onCreate(body)
			}
			_, _ = w.Write([]byte(strings.ReplaceAll(checkoutBody, "{{base}}", srv.URL)))
		case r.Method == http.MethodGet && r.URL.Path == "/qr.png":
			_, _ = w.Write([]byte("png-bytes"))
		case r.Method == http.MethodGet && r.URL.Path == "/api/pagbank/checkout/CHEC_1/status":
			_, _ = w.Write([]byte(`{"id":"CHEC_1","reference_id":"gift-1","status":"PAID","amount":{"value":15000,"currency":"BRL"},"payment_method":{"type":"CREDIT_CARD","installments":3}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

const pagBankCheckoutJSON = `{"success":true,"data":{"id":"CHEC_1","reference_id":"gift-1","created_at":"2026-01-01T10:00:00Z","expiration_date":"2026-01-01T12:00:00Z",
"links":[{"rel":"SELF","href":"{{base}}/self"},{"rel":"PAY","href":"https://pagamento.pagseguro.uol.com.br/pagamento?code=abc"}],
"qr_codes":[{"id":"QRCO_1","text":"000201pagbank","links":[{"rel":"QRCODE.PNG","href":"{{base}}/qr.png"}]}]}}`

func TestPagBankGateway_CreateCheckout(t *testing.T) {
	var sent map[string]any
	srv := newPagBankServer(t, pagBankCheckoutJSON, func(b map[string]any) { sent = b })
	gw := NewPagBankGateway(NewBackendClient(srv.URL, "", nil), PagBankOptions{RedirectURL: "https://casamento.local/obrigado"})

	checkout, err := gw.CreateCheckout(context.Background(), entities.HostedCheckoutRequest{
		GiftID:          "gift-1",
		Description:     "Liquidificador",
		Amount:          15000,
		Customer:        entities.Customer{Name: "Maria", Email: "m@x.com", Document: "123.456.789-09"},
		MaxInstallments: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkout.ID != "CHEC_1" || checkout.PaymentURL != "https://pagamento.pagseguro.uol.com.br/pagamento?code=abc" || checkout.PixCode != "000201pagbank" {
		t.Fatalf("unexpected checkout %+v", checkout)
	}

	if sent["reference_id"] != "gift-1" || sent["soft_descriptor"] != "Casamento" || sent["redirect_url"] != "https://casamento.local/obrigado" {
		t.Fatalf("unexpected request %v", sent)
	}
	items, _ := sent["items"].([]any)
	item, _ := items[0].(map[string]any)
	if item["unit_amount"] != float64(15000) {
		t.Fatalf("amount must travel in centavos: %v", item)
	}
	methods, _ := sent["payment_methods"].([]any)
	if len(methods) != len(entities.AllHostedCheckoutMethods()) {
		t.Fatalf("expected every method by default, got %v", methods)
	}
	configs, _ := sent["payment_methods_configs"].([]any)
	cfg, _ := configs[0].(map[string]any)
	options, _ := cfg["config_options"].([]any)
	limit, _ := options[0].(map[string]any)
	if limit["value"] != "6" {
		t.Fatalf("expected installments limit 6, got %v", limit)
	}
	customer, _ := sent["customer"].(map[string]any)
	if customer["tax_id"] != "12345678909" {
		t.Fatalf("unexpected customer %v", customer)
	}
}

func TestPagBankGateway_UsesPagBankToken(t *testing.T) {
	auth := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"CHEC_1","status":"WAITING"}`))
	}))
	t.Cleanup(srv.Close)

	backend := NewBackendClient(srv.URL, "backend-token", nil)
	gw := NewPagBankGateway(backend, PagBankOptions{Token: "pagbank-token"})
	if _, err := gw.GetPaymentStatus(context.Background(), "CHEC_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := <-auth; got != "Bearer pagbank-token" {
		t.Fatalf("expected PagBank token, got %q", got)
	}
	if backend.AuthToken != "backend-token" {
		t.Fatalf("shared backend client must keep its own token, got %q", backend.AuthToken)
	}

	gw = NewPagBankGateway(backend, PagBankOptions{})
	if _, err := gw.GetPaymentStatus(context.Background(), "CHEC_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := <-auth; got != "Bearer backend-token" {
		t.Fatalf("expected backend token fallback, got %q", got)
	}
}

func TestPagBankGateway_CreateCheckoutValidation(t *testing.T) {
	gw := NewPagBankGateway(NewBackendClient("http://unused", "", nil), PagBankOptions{})
	if _, err := gw.CreateCheckout(context.Background(), entities.HostedCheckoutRequest{Amount: 0}); err == nil {
		t.Fatalf("expected error for zero amount")
	}

	srv := newPagBankServer(t, `{"success":true,"data":{"id":"CHEC_2","links":[]}}`, nil)
	gw = NewPagBankGateway(NewBackendClient(srv.URL, "", nil), PagBankOptions{})
	if _, err := gw.CreateCheckout(context.Background(), entities.HostedCheckoutRequest{Amount: 100}); !errors.Is(err, ErrPagBankPayLinkMissing) {
		t.Fatalf("expected ErrPagBankPayLinkMissing, got %v", err)
	}
}

func TestPagBankGateway_GeneratePixPayment(t *testing.T) {
	var sent map[string]any
	srv := newPagBankServer(t, pagBankCheckoutJSON, func(b map[string]any) { sent = b })
	gw := NewPagBankGateway(NewBackendClient(srv.URL, "", nil), PagBankOptions{})

	pix, resp, err := gw.GeneratePixPayment(context.Background(), interfaces.PixRequest{Amount: 15000, GiftID: "gift-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pix.PixCode != "000201pagbank" || pix.QRCodeBase64 != base64.StdEncoding.EncodeToString([]byte("png-bytes")) {
		t.Fatalf("unexpected pix %+v", pix)
	}
	if !pix.ExpiresAt.Equal(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected expiry %v", pix.ExpiresAt)
	}
	if resp.Status != entities.PaymentStatusPending || resp.Method != entities.PaymentMethodPix {
		t.Fatalf("unexpected response %+v", resp)
	}
	methods, _ := sent["payment_methods"].([]any)
	if len(methods) != 1 {
		t.Fatalf("expected only PIX, got %v", methods)
	}
}

func TestPagBankGateway_ChargeCreditCardIsHosted(t *testing.T) {
	srv := newPagBankServer(t, pagBankCheckoutJSON, nil)
	gw := NewPagBankGateway(NewBackendClient(srv.URL, "", nil), PagBankOptions{})

	if gw.RequiresCardToken() {
		t.Fatalf("pagbank collects card data on its own page")
	}
	resp, err := gw.ChargeCreditCard(context.Background(), interfaces.CardChargeRequest{Amount: 15000, Installments: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entities.PaymentStatusPending || resp.CheckoutURL == "" || resp.ID != "CHEC_1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestPagBankGateway_GetPaymentStatus(t *testing.T) {
	srv := newPagBankServer(t, pagBankCheckoutJSON, nil)
	gw := NewPagBankGateway(NewBackendClient(srv.URL, "", nil), PagBankOptions{})

	resp, err := gw.GetPaymentStatus(context.Background(), "CHEC_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entities.PaymentStatusApproved || resp.Amount != 15000 || resp.Installments != 3 || resp.ApprovedAt == nil {
		t.Fatalf("unexpected response %+v", resp)
	}

	_, err = gw.GetPaymentStatus(context.Background(), "missing")
	if err == nil || !strings.HasPrefix(err.Error(), "Erro ao consultar status") {
		t.Fatalf("expected wrapped status error, got %v", err)
	}
	var herr *HTTPError
	if !errors.As(err, &herr) || herr.Status != http.StatusNotFound {
		t.Fatalf("expected wrapped 404, got %v", err)
	}
}

func TestMapPagBankStatus(t *testing.T) {
	tests := map[string]entities.PaymentStatus{
		"PAID":      entities.PaymentStatusApproved,
		"declined":  entities.PaymentStatusRejected,
		"CANCELED":  entities.PaymentStatusCancelled,
		"EXPIRED":   entities.PaymentStatusCancelled,
		"WAITING":   entities.PaymentStatusPending,
		"IN_ANALYS": entities.PaymentStatusPending,
	}
	for raw, want := range tests {
		if got := MapPagBankStatus(raw); got != want {
			t.Fatalf("MapPagBankStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}
