// Package money converts between human-readable decimal strings and the
// fixed-point integer amounts the engine operates on. All arithmetic inside
// the engine is integer arithmetic; this package exists at the boundary only.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimals is the number of fractional digits carried by an amount.
// One token is 10^Decimals raw units.
const Decimals = 9

// Unit is the raw value of one whole token
const Unit = int64(1_000_000_000)

// Parse converts a human decimal string ("1", "0.5", "12.345") into raw
// units. It rejects negative values, malformed input, and fractions with
// more than Decimals digits.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount must not be negative: %s", s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > Decimals {
		return 0, fmt.Errorf("amount has more than %d decimal places: %s", Decimals, s)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		for i := len(frac); i < Decimals; i++ {
			f *= 10
		}
	}

	const maxWhole = (1<<63 - 1) / Unit
	if w > maxWhole || w*Unit > (1<<63-1)-f {
		return 0, fmt.Errorf("amount overflows: %s", s)
	}
	return w*Unit + f, nil
}

// Format renders raw units as a human decimal string with trailing zeros
// trimmed ("1", "0.5", "12.345").
func Format(raw int64) string {
	neg := raw < 0
	if neg {
		raw = -raw
	}
	whole := raw / Unit
	frac := raw % Unit

	out := strconv.FormatInt(whole, 10)
	if frac > 0 {
		digits := fmt.Sprintf("%09d", frac)
		digits = strings.TrimRight(digits, "0")
		out += "." + digits
	}
	if neg {
		out = "-" + out
	}
	return out
}
