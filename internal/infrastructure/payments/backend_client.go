package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

var ErrInvalidResponse = errors.New("Formato de resposta inválido do servidor")

// HTTPError is a non-2xx answer from the payment backend. Message is the
// backend's own text when it sent one.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Body    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Erro HTTP: %d", e.Status)
}

func (e *HTTPError) StatusCode() int { return e.Status }

func (e *HTTPError) ErrorCode() string { return e.Code }

// BackendClient talks JSON to the payment backend at BaseURL.
type BackendClient struct {
	BaseURL   string
	AuthToken string
	HTTP      *http.Client
}

func NewBackendClient(baseURL, authToken string, httpClient *http.Client) *BackendClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &BackendClient{
		BaseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		AuthToken: strings.TrimSpace(authToken),
		HTTP:      httpClient,
	}
}

// WithAuthToken returns a copy of c that sends token instead of c.AuthToken.
// An empty token leaves c unchanged.
func (c *BackendClient) WithAuthToken(token string) *BackendClient {
	token = strings.TrimSpace(token)
	if token == "" {
		return c
	}
	cp := *c
	cp.AuthToken = token
	return &cp
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
}

// Do sends body as JSON and decodes the answer into out. When strict is set the
// answer must be a {success: true, data: ...} envelope; otherwise a bare object
// is accepted too.
func (c *BackendClient) Do(ctx context.Context, method, path string, body any, out any, strict bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("[payment][backend] request failed method=%s path=%s err=%v", method, path, err)
		return fmt.Errorf("network error calling payment backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("network error reading payment backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := parseHTTPError(resp.StatusCode, raw)
		log.Printf("[payment][backend] non-2xx method=%s path=%s status=%d msg=%q", method, path, resp.StatusCode, herr.Message)
		return herr
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if env.Success != nil {
		if !*env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
			return ErrInvalidResponse
		}
		raw = env.Data
	} else if strict {
		return ErrInvalidResponse
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// Fetch downloads a binary resource (PagBank QR code image).
func (c *BackendClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseHTTPError(resp.StatusCode, b)
	}
	return b, nil
}

func parseHTTPError(status int, body []byte) *HTTPError {
	herr := &HTTPError{Status: status, Body: string(body)}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		herr.Code = env.Code
		herr.Message = env.Message
		if herr.Message == "" && len(env.Error) > 0 {
			var s string
			if json.Unmarshal(env.Error, &s) == nil {
				herr.Message = s
			} else {
				var nested struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}
				if json.Unmarshal(env.Error, &nested) == nil {
					herr.Message = nested.Message
					if herr.Code == "" {
						herr.Code = nested.Code
					}
				}
			}
		}
		return herr
	}

	herr.Message = strings.TrimSpace(string(body))
	return herr
}

// ProbeBackend returns the first candidate base URL whose GET /api/payments
// answers 2xx or 404. A 404 still proves the backend is up.
func ProbeBackend(ctx context.Context, httpClient *http.Client, candidates ...string) (string, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	seen := map[string]bool{}
	for _, base := range candidates {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/payments", nil)
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := httpClient.Do(req)
		if err != nil {
			log.Printf("[payment][probe] unreachable url=%s err=%v", base, err)
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if (resp.StatusCode >= 200 && resp.StatusCode <= 299) || resp.StatusCode == http.StatusNotFound {
			log.Printf("[payment][probe] backend found url=%s status=%d", base, resp.StatusCode)
			return base, nil
		}
		log.Printf("[payment][probe] rejected url=%s status=%d", base, resp.StatusCode)
	}
	return "", errors.New("Servidor backend não encontrado. Verifique se o servidor está rodando.")
}
