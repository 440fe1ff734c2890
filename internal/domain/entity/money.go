package entity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Money is a fixed-point monetary amount expressed as a count of cents.
// Keeping prices integral avoids the floating-point drift a float64 price
// would accumulate, and round-trips exactly through JSON and the key-value
// store.
type Money int64

// NewMoneyFromCents builds a Money from a raw cent count.
func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// ParseMoney parses a decimal string such as "1000" or "19.99" into Money.
// At most two fractional digits are accepted; anything finer would silently
// lose precision, so it is rejected instead.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}

	// The sign was consumed above, so both parts must be bare digits;
	// ParseInt alone would let a stray sign through ("1.-5").
	if !isDigits(intPart) {
		return 0, errors.Errorf("invalid amount %q", s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}

	var cents int64
	if hasFrac {
		if len(fracPart) == 0 || len(fracPart) > 2 {
			return 0, errors.Errorf("invalid amount %q: at most two fractional digits", s)
		}
		if !isDigits(fracPart) {
			return 0, errors.Errorf("invalid amount %q", s)
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid amount %q", s)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
		cents = units*100 + frac
	} else {
		cents = units * 100
	}

	if negative {
		cents = -cents
	}

	return Money(cents), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Mul scales the amount by an item quantity.
func (m Money) Mul(quantity int) Money {
	return Money(int64(m) * int64(quantity))
}

// Add sums two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// String renders the amount as a decimal: whole amounts without a fraction
// ("1000"), fractional ones with two digits ("19.99").
func (m Money) String() string {
	cents := int64(m)
	negative := cents < 0
	if negative {
		cents = -cents
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(cents/100, 10))
	if rem := cents % 100; rem != 0 {
		b.WriteByte('.')
		if rem < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(rem, 10))
	}

	return b.String()
}

// MarshalJSON renders the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number (or a quoted decimal string, which
// some clients send) with at most two fractional digits.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}

	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
