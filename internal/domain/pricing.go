package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var taxRate = decimal.RequireFromString("0.10")

// TaxRate is the flat rate applied to every subtotal.
func TaxRate() decimal.Decimal {
	return taxRate
}

// Totals are kept at full precision; round with Money.Round for display.
type Totals struct {
	ItemCount  int
	Subtotal   Money
	Tax        Money
	Shipping   Money
	GrandTotal Money
}

// PriceLines sums the locked-in line prices. Lines must be in unit.
func PriceLines(unit currency.Unit, lines []CartLine) Totals {
	subtotal := decimal.Zero
	var count int

	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Amount.Mul(decimal.NewFromInt(int64(l.Quantity))))
		count += l.Quantity
	}

	tax := subtotal.Mul(taxRate)

	return Totals{
		ItemCount:  count,
		Subtotal:   NewMoney(subtotal, unit),
		Tax:        NewMoney(tax, unit),
		Shipping:   ZeroMoney(unit),
		GrandTotal: NewMoney(subtotal.Add(tax), unit),
	}
}
