package money

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidCurrency  = errors.New("money: invalid currency code")
	ErrCurrencyMismatch = errors.New("money: currency mismatch")
	ErrNegativeAmount   = errors.New("money: amount must not be negative")
)

// Currency is one of the four codes villas are priced in.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	TRY Currency = "TRY"
)

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	TRY: "₺",
}

// ParseCurrency validates a currency code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := symbols[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return c, nil
}

func (c Currency) Valid() bool {
	_, ok := symbols[c]
	return ok
}

func (c Currency) Symbol() string {
	return symbols[c]
}

// Money keeps amounts as integer minor units (cents, kuruş) to avoid floating
// point drift in nightly sums.
type Money struct {
	Amount   int64
	Currency Currency
}

// New constructs a Money value validating minimal invariants.
func New(amount int64, currency Currency) (Money, error) {
	if !currency.Valid() {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Must creates Money and panics if validation fails; useful in tests and fixtures.
func Must(amount int64, currency Currency) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Add adds two money values ensuring currencies match.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Multiply multiplies the amount by the provided factor.
func (m Money) Multiply(times int64) Money {
	return Money{Amount: m.Amount * times, Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Format renders the value the way the calendar displays it: currency symbol
// followed by the whole-unit amount with dot thousands separators.
func (m Money) Format() string {
	units := m.Amount / 100
	digits := strconv.FormatInt(units, 10)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	var out []byte
	for i, ch := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}
	s := m.Currency.Symbol() + string(out)
	if neg {
		s = "-" + s
	}
	return s
}

func (m Money) ensureSameCurrency(other Money) error {
	if !m.Currency.Valid() || !other.Currency.Valid() {
		return ErrInvalidCurrency
	}
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return nil
}
