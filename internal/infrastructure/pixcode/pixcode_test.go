package pixcode

import (
	"fmt"
	"strings"
	"testing"
)

func TestCRC16(t *testing.T) {
	if got := CRC16("123456789"); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got %#04x", got)
	}
}

func TestBuildPayload(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		payload, err := BuildPayload(Data{
			Key:          "casamento@example.com",
			MerchantName: "Bruno e Laura",
			City:         "São Paulo",
			Amount:       10000,
			Description:  "presente 42",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(payload, "000201010212") {
			t.Fatalf("unexpected header: %s", payload)
		}
		for _, want := range []string{
			"0014BR.GOV.BCB.PIX",
			"0121casamento@example.com",
			"52040000",
			"5303986",
			"5406100.00",
			"5802BR",
			"5913BRUNO E LAURA",
			"6009SAO PAULO",
			"62140510PRESENTE42",
		} {
			if !strings.Contains(payload, want) {
				t.Fatalf("payload %q missing %q", payload, want)
			}
		}
		if !Valid(payload) {
			t.Fatalf("crc mismatch for %s", payload)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := BuildPayload(Data{Amount: 100}); err != ErrMissingKey {
			t.Fatalf("expected ErrMissingKey, got %v", err)
		}
	})

	t.Run("defaults and truncation", func(t *testing.T) {
		payload, err := BuildPayload(Data{
			Key:          "11999999999",
			MerchantName: strings.Repeat("x", 40),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(payload, "5406") {
			t.Fatalf("zero amount must omit field 54: %s", payload)
		}
		if !strings.Contains(payload, "5925"+strings.Repeat("X", 25)) {
			t.Fatalf("merchant name not truncated: %s", payload)
		}
		if !strings.Contains(payload, "6009SAO PAULO") || !strings.Contains(payload, "62070503***") {
			t.Fatalf("defaults missing: %s", payload)
		}
	})
}

func TestBuildPayload_TxIDIsAlphanumeric(t *testing.T) {
	tests := []struct{ desc, want string }{
		{"gift-7", "GIFT7"},
		{"Jogo de panelas (R$ 350,00)!", "JOGODEPANELASR35000"},
		{"ção_é #1", "CAOE1"},
		{"---", "***"},
		{strings.Repeat("a1-", 20), strings.Repeat("A1", 12) + "A"},
	}
	for _, tc := range tests {
		payload, err := BuildPayload(Data{Key: "11999999999", Description: tc.desc})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.desc, err)
		}
		sub := fmt.Sprintf("05%02d%s", len(tc.want), tc.want)
		if !strings.Contains(payload, fmt.Sprintf("62%02d%s", len(sub), sub)) {
			t.Fatalf("description %q: payload %q missing txid %q", tc.desc, payload, tc.want)
		}
		if !Valid(payload) {
			t.Fatalf("crc mismatch for %s", payload)
		}
	}
}

func TestValid(t *testing.T) {
	if Valid("short") {
		t.Fatalf("short payload must be invalid")
	}
	payload, _ := BuildPayload(Data{Key: "k", Amount: 1})
	tampered := payload[:len(payload)-1] + "0"
	if payload != tampered && Valid(tampered) {
		t.Fatalf("tampered payload must be invalid")
	}
}
