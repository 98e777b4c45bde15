// Package config reads the service configuration from the environment.
//
// Values come from os.Getenv; cmd/api loads a .env file first through
// godotenv/autoload.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreBolt     = "bolt"
	StoreNone     = "none"
)

type Config struct {
	Port string

	APIBaseURL      string
	APIFallbackURLs []string
	APIAuthToken    string

	PaymentGateway     string
	PaymentEnvironment string
	MercadoPagoPublic  string
	MercadoPagoToken   string
	PagBankToken       string
	MockMode           bool
	MockPixKey         string
	MockPixMerchant    string
	MockPixCity        string
	SoftDescriptor     string
	RedirectURL        string

	PollInterval time.Duration
	PollTimeout  time.Duration
	SessionTTL   time.Duration

	PaymentStore  string
	BoltPath      string
	PaymentsTable string
}

// Load reads every setting, applying defaults. It fails only on malformed values.
func Load() (Config, error) {
	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		APIBaseURL:         strings.TrimRight(getenvDefault("API_BASE_URL", "http://localhost:3001"), "/"),
		APIFallbackURLs:    splitList(os.Getenv("API_FALLBACK_URLS")),
		APIAuthToken:       strings.TrimSpace(os.Getenv("API_AUTH_TOKEN")),
		PaymentGateway:     strings.ToLower(getenvDefault("PAYMENT_GATEWAY", "mercadopago")),
		PaymentEnvironment: strings.ToLower(getenvDefault("PAYMENT_ENVIRONMENT", "sandbox")),
		MercadoPagoPublic:  strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
		MercadoPagoToken:   strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PagBankToken:       strings.TrimSpace(os.Getenv("PAGBANK_TOKEN")),
		MockMode:           isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		MockPixKey:         getenvDefault("MOCK_PIX_KEY", "casamento@example.com"),
		MockPixMerchant:    getenvDefault("MOCK_PIX_MERCHANT_NAME", "CASAMENTO"),
		MockPixCity:        getenvDefault("MOCK_PIX_CITY", "SAO PAULO"),
		SoftDescriptor:     getenvDefault("PAGBANK_SOFT_DESCRIPTOR", "Casamento"),
		RedirectURL:        strings.TrimSpace(os.Getenv("CHECKOUT_REDIRECT_URL")),
		PaymentStore:       strings.ToLower(getenvDefault("PAYMENT_STORE", StoreNone)),
		BoltPath:           getenvDefault("BOLT_PATH", "payments.db"),
		PaymentsTable:      getenvDefault("PAYMENTS_TABLE", "payments"),
	}

	var err error
	if cfg.PollInterval, err = durationDefault("CHECKOUT_POLL_INTERVAL", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PollTimeout, err = durationDefault("CHECKOUT_POLL_TIMEOUT", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationDefault("CHECKOUT_SESSION_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}

	switch cfg.PaymentStore {
	case StoreDynamoDB, StoreBolt, StoreNone:
	default:
		return Config{}, fmt.Errorf("invalid PAYMENT_STORE %q (want dynamodb, bolt or none)", cfg.PaymentStore)
	}
	return cfg, nil
}

// BackendCandidates is the configured base URL followed by the fallbacks.
func (c Config) BackendCandidates() []string {
	return append([]string{c.APIBaseURL}, c.APIFallbackURLs...)
}

func (c Config) IsProduction() bool {
	return c.PaymentEnvironment == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// durationDefault accepts Go durations ("5s") or plain seconds ("5").
func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
