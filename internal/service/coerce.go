package service

import (
	"strconv"
	"strings"
)

// Target keys whose cells hold money or stock figures. Everything else
// passes through as a trimmed string.
var numericKeys = map[string]bool{
	"dailyRate":   true,
	"weeklyRate":  true,
	"monthlyRate": true,
	"quantity":    true,
}

// Coerce converts a raw cell into the value its target field expects.
// Numeric fields tolerate currency symbols and Brazilian decimal
// commas ("R$ 1.234,56" → 1234.56) and fall back to 0 instead of
// erroring; rows are only rejected downstream, never here.
func Coerce(raw, targetKey string) interface{} {
	if numericKeys[targetKey] {
		return coerceNumber(raw)
	}
	return strings.TrimSpace(raw)
}

func coerceNumber(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	// A comma is the decimal separator; periods before it are
	// thousand separators.
	if i := strings.LastIndex(cleaned, ","); i >= 0 {
		cleaned = strings.ReplaceAll(cleaned[:i], ".", "") + "." + cleaned[i+1:]
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
