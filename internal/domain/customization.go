package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownOption = errors.New("unknown option")

type CookLevel string

const (
	CookRare       CookLevel = "rare"
	CookMediumRare CookLevel = "medium-rare"
	CookMedium     CookLevel = "medium"
	CookMediumWell CookLevel = "medium-well"
	CookWellDone   CookLevel = "well-done"

	DefaultCookLevel = CookMedium
)

// Option is an entry of a static option table. Price is in the cart currency.
type Option struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

const (
	DefaultSide = "fries"
	NoDrink     = "none"
)

var (
	cookLevels = []CookLevel{CookRare, CookMediumRare, CookMedium, CookMediumWell, CookWellDone}

	extraOptions = []Option{
		{ID: "extra-cheese", Name: "Extra Cheese", Price: decimal.RequireFromString("1.00")},
		{ID: "bacon", Name: "Bacon", Price: decimal.RequireFromString("2.50")},
		{ID: "avocado", Name: "Avocado", Price: decimal.RequireFromString("2.00")},
		{ID: "fried-egg", Name: "Fried Egg", Price: decimal.RequireFromString("1.50")},
		{ID: "jalapenos", Name: "Jalapeños", Price: decimal.RequireFromString("0.75")},
		{ID: "mushrooms", Name: "Mushrooms", Price: decimal.RequireFromString("1.25")},
		{ID: "caramelized-onions", Name: "Caramelized Onions", Price: decimal.RequireFromString("1.00")},
	}

	sideOptions = []Option{
		{ID: DefaultSide, Name: "French Fries", Price: decimal.RequireFromString("0.00")},
		{ID: "sweet-potato-fries", Name: "Sweet Potato Fries", Price: decimal.RequireFromString("1.00")},
		{ID: "onion-rings", Name: "Onion Rings", Price: decimal.RequireFromString("1.50")},
		{ID: "side-salad", Name: "Side Salad", Price: decimal.RequireFromString("1.25")},
		{ID: "coleslaw", Name: "Coleslaw", Price: decimal.RequireFromString("0.75")},
	}

	drinkOptions = []Option{
		{ID: NoDrink, Name: "No Drink", Price: decimal.Zero},
		{ID: "cola", Name: "Cola", Price: decimal.RequireFromString("2.50")},
		{ID: "lemonade", Name: "Lemonade", Price: decimal.RequireFromString("3.00")},
		{ID: "iced-tea", Name: "Iced Tea", Price: decimal.RequireFromString("2.75")},
		{ID: "water", Name: "Still Water", Price: decimal.RequireFromString("1.50")},
	}
)

func CookLevels() []CookLevel { return slices.Clone(cookLevels) }
func Extras() []Option        { return slices.Clone(extraOptions) }
func Sides() []Option         { return slices.Clone(sideOptions) }
func Drinks() []Option        { return slices.Clone(drinkOptions) }

func lookupOption(table []Option, kind, id string) (Option, error) {
	for _, o := range table {
		if o.ID == id {
			return o, nil
		}
	}

	return Option{}, fmt.Errorf("%w: %s[%s]", ErrUnknownOption, kind, id)
}

func mustOption(table []Option, kind, id string) Option {
	o, err := lookupOption(table, kind, id)
	if err != nil {
		// ids are checked when the customization is built
		panic(err)
	}

	return o
}

// Customization is immutable once built by a Customizer or Resolve.
// The surcharge is always derived from the active selections.
type Customization struct {
	cookLevel CookLevel
	extras    []string
	removed   []string
	side      string
	drink     string
}

func (c Customization) CookLevel() CookLevel { return c.cookLevel }
func (c Customization) Extras() []string     { return slices.Clone(c.extras) }
func (c Customization) Removed() []string    { return slices.Clone(c.removed) }

// Side defaults to DefaultSide, which keeps the zero Customization valid.
func (c Customization) Side() string {
	if c.side == "" {
		return DefaultSide
	}

	return c.side
}

func (c Customization) Drink() string {
	if c.drink == "" {
		return NoDrink
	}

	return c.drink
}

func (c Customization) Surcharge() decimal.Decimal {
	total := decimal.Zero

	for _, id := range c.extras {
		total = total.Add(mustOption(extraOptions, "extra", id).Price)
	}

	base := mustOption(sideOptions, "side", DefaultSide).Price
	total = total.Add(mustOption(sideOptions, "side", c.Side()).Price.Sub(base))

	return total.Add(mustOption(drinkOptions, "drink", c.Drink()).Price)
}

// Describe renders the customization for the kitchen ticket.
func (c Customization) Describe() string {
	var parts []string

	if c.cookLevel != "" {
		parts = append(parts, string(c.cookLevel))
	}
	for _, id := range c.extras {
		parts = append(parts, "+ "+mustOption(extraOptions, "extra", id).Name)
	}
	for _, name := range c.removed {
		parts = append(parts, "no "+name)
	}
	if c.Side() != DefaultSide {
		parts = append(parts, "side: "+mustOption(sideOptions, "side", c.Side()).Name)
	}
	if c.Drink() != NoDrink {
		parts = append(parts, "drink: "+mustOption(drinkOptions, "drink", c.Drink()).Name)
	}

	return strings.Join(parts, "; ")
}

// Customizer tracks option-by-option selection for one product.
type Customizer struct {
	product Product
	c       Customization
}

func NewCustomizer(p Product) *Customizer {
	c := Customization{side: DefaultSide, drink: NoDrink}
	if p.Cookable() {
		c.cookLevel = DefaultCookLevel
	}

	return &Customizer{product: p, c: c}
}

// NewCustomizerFrom seeds a Customizer with an existing customization,
// used when a cart line is edited.
func NewCustomizerFrom(p Product, c *Customization) *Customizer {
	if c == nil {
		return NewCustomizer(p)
	}

	z := &Customizer{product: p, c: *c}
	z.c.extras = slices.Clone(c.extras)
	z.c.removed = slices.Clone(c.removed)

	return z
}

// SetCookLevel is a no-op for products that are not cooked to order.
func (z *Customizer) SetCookLevel(level CookLevel) error {
	if !slices.Contains(cookLevels, level) {
		return fmt.Errorf("%w: cook level[%s]", ErrUnknownOption, level)
	}
	if z.product.Cookable() {
		z.c.cookLevel = level
	}

	return nil
}

// ToggleExtra adds the extra if absent, otherwise removes it.
func (z *Customizer) ToggleExtra(id string) error {
	if _, err := lookupOption(extraOptions, "extra", id); err != nil {
		return err
	}

	if i := slices.Index(z.c.extras, id); i >= 0 {
		z.c.extras = slices.Delete(z.c.extras, i, i+1)
		return nil
	}

	z.c.extras = append(z.c.extras, id)
	return nil
}

// ToggleRemoved marks a base ingredient as left out, or puts it back.
func (z *Customizer) ToggleRemoved(ingredient string) error {
	name := strings.TrimSpace(ingredient)
	if name == "" {
		return fmt.Errorf("ingredient is empty")
	}

	if i := slices.Index(z.c.removed, name); i >= 0 {
		z.c.removed = slices.Delete(z.c.removed, i, i+1)
		return nil
	}

	z.c.removed = append(z.c.removed, name)
	return nil
}

func (z *Customizer) SelectSide(id string) error {
	if _, err := lookupOption(sideOptions, "side", id); err != nil {
		return err
	}

	z.c.side = id
	return nil
}

func (z *Customizer) SelectDrink(id string) error {
	if _, err := lookupOption(drinkOptions, "drink", id); err != nil {
		return err
	}

	z.c.drink = id
	return nil
}

func (z *Customizer) Surcharge() decimal.Decimal {
	return z.c.Surcharge()
}

func (z *Customizer) Product() Product {
	return z.product
}

// Build returns a snapshot; further changes to the Customizer do not affect it.
func (z *Customizer) Build() *Customization {
	c := z.c
	c.extras = slices.Clone(z.c.extras)
	c.removed = slices.Clone(z.c.removed)

	return &c
}

// Selection is the one-shot form of a customization. Empty Side and Drink
// mean the default side and no drink.
type Selection struct {
	CookLevel CookLevel
	Extras    []string
	Removed   []string
	Side      string
	Drink     string
}

func Resolve(p Product, sel Selection) (*Customization, error) {
	z := NewCustomizer(p)

	if sel.CookLevel != "" {
		if err := z.SetCookLevel(sel.CookLevel); err != nil {
			return nil, err
		}
	}

	for _, id := range sel.Extras {
		if slices.Contains(z.c.extras, id) {
			continue
		}
		if err := z.ToggleExtra(id); err != nil {
			return nil, err
		}
	}

	for _, name := range sel.Removed {
		if slices.Contains(z.c.removed, strings.TrimSpace(name)) {
			continue
		}
		if err := z.ToggleRemoved(name); err != nil {
			return nil, err
		}
	}

	if sel.Side != "" {
		if err := z.SelectSide(sel.Side); err != nil {
			return nil, err
		}
	}

	if sel.Drink != "" {
		if err := z.SelectDrink(sel.Drink); err != nil {
			return nil, err
		}
	}

	return z.Build(), nil
}
