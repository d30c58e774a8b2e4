package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Round rounds to the standard scale of the currency. Only used for display.
func (m Money) Round() Money {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return Money{Amount: m.Amount.Round(int32(scale)), Currency: m.Currency}
}

func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return m.Currency.String() + " " + m.Amount.StringFixed(int32(scale))
}

var currencySymbols = map[string]currency.Unit{
	"€": currency.EUR,
	"$": currency.USD,
	"£": currency.GBP,
	"¥": currency.JPY,
}

// ParseMoney parses display prices like "€11.99", "11.99 EUR" or "USD 4.50".
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Money{}, fmt.Errorf("price is empty")
	}

	var (
		unit    currency.Unit
		found   bool
		numeric = raw
	)

	for symbol, u := range currencySymbols {
		if strings.HasPrefix(raw, symbol) {
			unit, found, numeric = u, true, strings.TrimPrefix(raw, symbol)
			break
		}
		if strings.HasSuffix(raw, symbol) {
			unit, found, numeric = u, true, strings.TrimSuffix(raw, symbol)
			break
		}
	}

	if !found {
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			return Money{}, fmt.Errorf("price[%s] has no currency", s)
		}

		code, amount := fields[0], fields[1]
		if _, err := decimal.NewFromString(code); err == nil {
			code, amount = fields[1], fields[0]
		}

		u, err := currency.ParseISO(code)
		if err != nil {
			return Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
		}
		unit, numeric = u, amount
	}

	numeric = strings.TrimSpace(numeric)
	if !strings.Contains(numeric, ".") {
		// decimal comma, "11,99"
		numeric = strings.Replace(numeric, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(numeric)
	if err != nil {
		return Money{}, fmt.Errorf("price[%s] amount is not valid: %w", s, err)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("price[%s] is negative", s)
	}
	if scale, _ := currency.Standard.Rounding(unit); !amount.Equal(amount.Round(int32(scale))) {
		return Money{}, fmt.Errorf("price[%s] has more decimals than %s allows", s, unit)
	}

	return Money{Amount: amount, Currency: unit}, nil
}
