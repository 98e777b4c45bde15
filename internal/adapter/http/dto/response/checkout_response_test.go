package response

import (
	"encoding/json"
	"testing"
	"time"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase"
	"casamento_presentes/internal/usecase/checkout"
)

func TestFromSnapshot(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	fe := usecase.ClassifyError(checkout.ErrPixExpired)
	snap := checkout.Snapshot{
		ID:                 "chk-1",
		State:              checkout.StateError,
		Gateway:            "mercadopago",
		SelectedMethod:     entities.PaymentMethodPix,
		Amount:             10000,
		Customer:           entities.Customer{Name: "Ana"},
		PaymentMethods:     entities.DefaultPaymentMethods(),
		InstallmentOptions: usecase.ComputeInstallments(10000),
		PixPayment:         &entities.PixPayment{ID: "p1", PixCode: "000201", Amount: 10000, ExpiresAt: now, Status: entities.PaymentStatusPending},
		Payment:            &entities.PaymentResponse{ID: "p1", Status: entities.PaymentStatusCancelled, Method: entities.PaymentMethodPix, Amount: 10000, CreatedAt: now},
		Error:              &fe,
	}

	out := FromSnapshot(snap)
	if out.State != "error" || out.SelectedMethod != "PIX" || len(out.Methods) != 2 || len(out.Installments) != 12 {
		t.Fatalf("unexpected response %+v", out)
	}
	if out.Pix == nil || out.Pix.PixCode != "000201" || out.Payment == nil || out.Payment.Status != "CANCELLED" {
		t.Fatalf("unexpected pix/payment %+v %+v", out.Pix, out.Payment)
	}
	if out.Error == nil || out.Error.Category != "pix-expired" || !out.Error.CanRetry {
		t.Fatalf("unexpected friendly error %+v", out.Error)
	}

	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if m["amount"] != 100.0 {
		t.Fatalf("amount must be serialized in reais, got %v", m["amount"])
	}
}

func TestFromInstallments_Labels(t *testing.T) {
	out := FromInstallments(usecase.ComputeInstallments(10000))
	if out[0].Label != "1x de R$ 100,00 sem juros" {
		t.Fatalf("unexpected label %q", out[0].Label)
	}
	if out[5].Label != "6x de R$ 18,75 (total R$ 112,50)" {
		t.Fatalf("unexpected label %q", out[5].Label)
	}
}
