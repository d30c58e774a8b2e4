package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

var (
	ErrUnknownProduct      = errors.New("unknown product")
	ErrProductUnavailable  = errors.New("product is unavailable")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrLineIndexOutOfRange = errors.New("line index out of range")
)

type CartState int

const (
	CartEmpty CartState = iota
	CartNonEmpty
)

func (s CartState) String() string {
	if s == CartEmpty {
		return "empty"
	}

	return "non-empty"
}

type CartLine struct {
	ID            uuid.UUID
	Product       Product
	Quantity      int
	Customization *Customization

	// UnitPrice is locked in when the line is created.
	UnitPrice Money

	AddedAt time.Time
}

func (l CartLine) Customized() bool {
	return l.Customization != nil
}

func (l CartLine) Price() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Description is the product name followed by the customization, if any.
func (l CartLine) Description() string {
	if l.Customization == nil {
		return l.Product.Name
	}

	if d := l.Customization.Describe(); d != "" {
		return l.Product.Name + " (" + d + ")"
	}

	return l.Product.Name
}

// Cart is owned by a single session and is not safe for concurrent use.
type Cart struct {
	Currency currency.Unit

	lines []CartLine
}

func NewCart(unit currency.Unit) *Cart {
	return &Cart{Currency: unit}
}

// Add returns the index of the line that received the quantity.
// Customized adds always create a new line; uncustomized adds merge into the
// existing uncustomized line of the same product.
func (c *Cart) Add(p Product, quantity int, cz *Customization) (int, error) {
	if err := c.checkProduct(p); err != nil {
		return -1, err
	}
	if quantity < 1 {
		return -1, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if err := checkCustomization(p, cz); err != nil {
		return -1, err
	}

	if cz == nil {
		if i := c.uncustomizedLine(p.ID, -1); i >= 0 {
			c.lines[i].Quantity += quantity
			return i, nil
		}
	}

	c.lines = append(c.lines, newCartLine(p, quantity, cz))
	return len(c.lines) - 1, nil
}

// SetQuantity removes the line when quantity <= 0, shifting the indices of
// the lines after it.
func (c *Cart) SetQuantity(index, quantity int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	if quantity <= 0 {
		c.lines = slices.Delete(c.lines, index, index+1)
		return nil
	}

	c.lines[index].Quantity = quantity
	return nil
}

func (c *Cart) Increment(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	return c.SetQuantity(index, c.lines[index].Quantity+1)
}

func (c *Cart) Decrement(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	return c.SetQuantity(index, c.lines[index].Quantity-1)
}

// EditLine removes the line and hands back its product and customization for
// re-customization. Re-adding appends the new line at the end.
func (c *Cart) EditLine(index int) (Product, *Customization, error) {
	if err := c.checkIndex(index); err != nil {
		return Product{}, nil, err
	}

	line := c.lines[index]
	if err := c.SetQuantity(index, 0); err != nil {
		return Product{}, nil, err
	}

	return line.Product, line.Customization, nil
}

// ReplaceLine swaps the customization of a line in place, keeping its position
// and quantity, and locks in a new unit price from the line's product.
// Replacing with nil folds the line into an existing uncustomized line of the
// same product, if there is one.
func (c *Cart) ReplaceLine(index int, cz *Customization) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	line := c.lines[index]
	if err := checkCustomization(line.Product, cz); err != nil {
		return err
	}

	if cz == nil {
		if j := c.uncustomizedLine(line.Product.ID, index); j >= 0 {
			c.lines[j].Quantity += line.Quantity
			c.lines = slices.Delete(c.lines, index, index+1)
			return nil
		}
	}

	line.Customization = cz
	line.UnitPrice = unitPrice(line.Product, cz)
	c.lines[index] = line

	return nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []CartLine {
	return slices.Clone(c.lines)
}

func (c *Cart) Line(index int) (CartLine, error) {
	if err := c.checkIndex(index); err != nil {
		return CartLine{}, err
	}

	return c.lines[index], nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) TotalItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}

	return n
}

func (c *Cart) State() CartState {
	if len(c.lines) == 0 {
		return CartEmpty
	}

	return CartNonEmpty
}

func (c *Cart) CanCheckout() bool {
	return c.State() == CartNonEmpty
}

func (c *Cart) Totals() Totals {
	return PriceLines(c.Currency, c.lines)
}

func (c *Cart) checkProduct(p Product) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: product[%s] has no id", ErrUnknownProduct, p.Name)
	}
	if !p.Available {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name)
	}
	if p.Price.Currency != c.Currency {
		return fmt.Errorf("%w: cart in %s, product[%s] in %s", ErrCurrencyMismatch, c.Currency, p.Name, p.Price.Currency)
	}

	return nil
}

// checkCustomization rejects a customization built for a product of another
// kind, such as a cook level carried over to a salad.
func checkCustomization(p Product, cz *Customization) error {
	if cz == nil {
		return nil
	}
	if cz.CookLevel() != "" && !p.Cookable() {
		return fmt.Errorf("%w: cook level[%s] for product[%s]", ErrUnknownOption, cz.CookLevel(), p.Name)
	}

	return nil
}

func (c *Cart) checkIndex(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("%w: %d of %d", ErrLineIndexOutOfRange, index, len(c.lines))
	}

	return nil
}

func (c *Cart) uncustomizedLine(productID uuid.UUID, skip int) int {
	for i, l := range c.lines {
		if i != skip && l.Product.ID == productID && l.Customization == nil {
			return i
		}
	}

	return -1
}

func newCartLine(p Product, quantity int, cz *Customization) CartLine {
	return CartLine{
		ID:            uuid.New(),
		Product:       p,
		Quantity:      quantity,
		Customization: cz,
		UnitPrice:     unitPrice(p, cz),
		AddedAt:       time.Now(),
	}
}

func unitPrice(p Product, cz *Customization) Money {
	if cz == nil {
		return p.Price
	}

	return Money{Amount: p.Price.Amount.Add(cz.Surcharge()), Currency: p.Price.Currency}
}
