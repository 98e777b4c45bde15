package entities

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in BRL minor units (centavos).
//
// Gateways exchange amounts either as reais (Mercado Pago backend) or as centavos
// (PagBank). Internally every amount is kept in Cents and converted at the gateway
// edge, so installment math never touches float64.
type Cents int64

var hundred = decimal.NewFromInt(100)

// CentsFromDecimal rounds a reais amount half-up to the nearest centavo.
func CentsFromDecimal(reais decimal.Decimal) Cents {
	return Cents(reais.Mul(hundred).Round(0).IntPart())
}

func CentsFromReais(reais float64) Cents {
	return CentsFromDecimal(decimal.NewFromFloat(reais))
}

// ParseCents parses a reais amount such as "100", "100.5" or "100,50".
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return CentsFromDecimal(d), nil
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) Reais() float64 {
	f, _ := c.Decimal().Float64()
	return f
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// BRL formats the amount the way the gift list displays prices, e.g. "R$ 112,50".
func (c Cents) BRL() string {
	return "R$ " + strings.Replace(c.Decimal().StringFixed(2), ".", ",", 1)
}

// MarshalJSON writes the amount as a reais number (112.5 -> 112.50).
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a reais number or a quoted reais string.
func (c *Cents) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	v, err := ParseCents(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
