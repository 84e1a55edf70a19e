package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a user-facing decimal string ("12.99") to integer cents.
// Amounts are never handled as binary floats: the string is split on the
// decimal point and both halves are parsed as integers. At most two
// fractional digits are accepted; a single digit means tenths ("1.5" → 150).
// Negative amounts are rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return 0, ErrInvalidAmount
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var cents int64
	switch len(frac) {
	case 1:
		cents = int64(frac[0]-'0') * 10
	case 2:
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	}

	if units > (1<<63-1-cents)/100 {
		return 0, ErrInvalidAmount
	}
	return units*100 + cents, nil
}

// ParsePositive is Parse with a strictly-positive requirement, for purchase
// and investment amounts where zero is as meaningless as a negative.
func ParsePositive(s string) (int64, error) {
	c, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, ErrInvalidAmount
	}
	return c, nil
}

// Commission returns the platform's cut of amount at pct whole percent,
// rounded down. Amounts under 100/pct cents yield zero commission.
func Commission(amountCents, pct int64) int64 {
	if amountCents <= 0 || pct <= 0 {
		return 0
	}
	return amountCents * pct / 100
}

// Format renders cents as a plain decimal string: 1299 → "12.99".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
