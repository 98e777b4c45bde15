package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casamento_presentes/internal/infrastructure/pixcode"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInstallmentsCommand(t *testing.T) {
	out, err := run(t, "installments", "100")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Contains(t, lines[1], "R$ 100,00")
	assert.Contains(t, lines[12], "12x")
	assert.Contains(t, lines[12], "R$ 127,50")

	_, err = run(t, "installments", "0")
	assert.Error(t, err)
	_, err = run(t, "installments", "abc")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "Saldo", "insuficiente")
	require.NoError(t, err)

	var fe map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fe))
	assert.Equal(t, "insufficient-funds", fe["category"])
	assert.Equal(t, false, fe["canRetry"])

	out, err = run(t, "classify", "--code", "GIFT_NOT_FOUND", "qualquer coisa")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &fe))
	assert.Equal(t, "gift-not-found", fe["category"])

	out, err = run(t, "classify", "-s", "503", "bad gateway")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &fe))
	assert.Equal(t, "server-unavailable", fe["category"])
}

func TestPixPayloadCommand(t *testing.T) {
	t.Setenv("MOCK_PIX_KEY", "noivos@example.com")
	t.Setenv("PAYMENT_STORE", "")

	out, err := run(t, "pix-payload", "150,00", "--merchant", "Ana e Joao")
	require.NoError(t, err)

	payload := strings.TrimSpace(out)
	assert.True(t, pixcode.Valid(payload))
	assert.Contains(t, payload, "noivos@example.com")
	assert.Contains(t, payload, "5406150.00")
	assert.Contains(t, payload, "ANA E JOAO")
}

func TestProbeCommand(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer up.Close()

	out, err := run(t, "probe", down.URL, up.URL)
	require.NoError(t, err)
	assert.Equal(t, up.URL, strings.TrimSpace(out))

	_, err = run(t, "probe", down.URL)
	assert.Error(t, err)
}
