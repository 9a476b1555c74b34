package render

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrUnknownBrand = errors.New("unknown brand")

// Theme is the visual identity a document is printed with.
type Theme struct {
	Brand       string `json:"brand"`
	DisplayName string `json:"display_name"`
	Logo        string `json:"logo"`
	AccentColor string `json:"accent_color"`
	CodePrefix  string `json:"code_prefix"`
}

var themes = map[string]Theme{
	"enroute": {
		Brand:       "enroute",
		DisplayName: "Enroute Holidays",
		Logo:        "enroute-logo.png",
		AccentColor: "#14665e",
		CodePrefix:  "ENR",
	},
	"skyway": {
		Brand:       "skyway",
		DisplayName: "Skyway Journeys",
		Logo:        "skyway-logo.png",
		AccentColor: "#1d4e89",
		CodePrefix:  "SKY",
	},
}

func LookupTheme(brand string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(brand))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownBrand, brand)
	}
	return t, nil
}

// RGB parses the accent colour for the PDF writer.
func (t Theme) RGB() (r, g, b int) {
	if _, err := fmt.Sscanf(t.AccentColor, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

const (
	codeTimeLayout = "0601021504"
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeSuffixLen  = 4
)

// BookingCode is the brand prefix, the creation time as YYMMDDhhmm and a
// random suffix, e.g. ENR2401101530K7QX.
func BookingCode(t Theme, at time.Time, random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, codeSuffixLen)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to generate booking code: %w", err)
	}
	suffix := make([]byte, codeSuffixLen)
	for i, b := range buf {
		suffix[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return t.CodePrefix + at.Format(codeTimeLayout) + string(suffix), nil
}
