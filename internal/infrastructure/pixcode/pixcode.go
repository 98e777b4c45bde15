// Package pixcode builds static PIX "copia e cola" payloads (EMV BR Code).
package pixcode

import (
	"errors"
	"fmt"
	"strings"

	"casamento_presentes/internal/domain/entities"
)

const (
	gui            = "BR.GOV.BCB.PIX"
	defaultCity    = "SAO PAULO"
	maxNameLen     = 25
	maxCityLen     = 15
	maxTxIDLen     = 25
	maxFieldLength = 99
)

var ErrMissingKey = errors.New("pix key is required")

// Data is the input of a static PIX charge.
type Data struct {
	Key          string
	MerchantName string
	City         string
	Amount       entities.Cents
	Description  string
}

// BuildPayload returns the BR Code for data, CRC included.
func BuildPayload(data Data) (string, error) {
	key := strings.TrimSpace(data.Key)
	if key == "" {
		return "", ErrMissingKey
	}
	city := data.City
	if strings.TrimSpace(city) == "" {
		city = defaultCity
	}

	account, err := field("00", gui)
	if err != nil {
		return "", err
	}
	keyField, err := field("01", key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	parts := [][2]string{
		{"00", "01"},
		{"01", "12"},
		{"26", account + keyField},
		{"52", "0000"},
		{"53", "986"},
	}
	if data.Amount > 0 {
		parts = append(parts, [2]string{"54", data.Amount.String()})
	}
	parts = append(parts,
		[2]string{"58", "BR"},
		[2]string{"59", clean(data.MerchantName, maxNameLen)},
		[2]string{"60", clean(city, maxCityLen)},
	)
	txid := cleanTxID(data.Description, maxTxIDLen)
	if txid == "" {
		txid = "***"
	}
	additional, err := field("05", txid)
	if err != nil {
		return "", err
	}
	parts = append(parts, [2]string{"62", additional})

	for _, p := range parts {
		f, err := field(p[0], p[1])
		if err != nil {
			return "", err
		}
		b.WriteString(f)
	}
	b.WriteString("6304")
	payload := b.String()
	return payload + fmt.Sprintf("%04X", CRC16(payload)), nil
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required by the BR Code.
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Valid reports whether payload ends with a matching CRC.
func Valid(payload string) bool {
	if len(payload) < 8 || payload[len(payload)-8:len(payload)-4] != "6304" {
		return false
	}
	body := payload[:len(payload)-4]
	return fmt.Sprintf("%04X", CRC16(body)) == strings.ToUpper(payload[len(payload)-4:])
}

func field(id, value string) (string, error) {
	if len(value) > maxFieldLength {
		return "", fmt.Errorf("pix field %s too long (%d)", id, len(value))
	}
	return fmt.Sprintf("%s%02d%s", id, len(value), value), nil
}

var accents = strings.NewReplacer(
	"Á", "A", "À", "A", "Â", "A", "Ã", "A", "Ä", "A",
	"É", "E", "Ê", "E", "È", "E",
	"Í", "I", "Î", "I",
	"Ó", "O", "Ô", "O", "Õ", "O", "Ö", "O",
	"Ú", "U", "Ü", "U",
	"Ç", "C", "Ñ", "N",
)

// clean upper-cases s, drops accents and anything outside printable ASCII, and
// truncates it to limit bytes.
func clean(s string, limit int) string {
	s = accents.Replace(strings.ToUpper(strings.TrimSpace(s)))
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r < 0x7F {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > limit {
		out = strings.TrimSpace(out[:limit])
	}
	return out
}

// cleanTxID keeps only [A-Z0-9] from the cleaned description; BR Code txids
// accept nothing else.
func cleanTxID(s string, limit int) string {
	var b strings.Builder
	for _, r := range clean(s, len(s)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == limit {
				break
			}
		}
	}
	return b.String()
}
