package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryBurgers  Category = "burgers"
	CategorySides    Category = "sides"
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
	CategorySalads   Category = "salads"
)

var categories = []Category{
	CategoryBurgers,
	CategorySides,
	CategoryDrinks,
	CategoryDesserts,
	CategorySalads,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("category[%s] is not valid", s)
}

// Product is a menu entry. The cart keeps a copy and never mutates it.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     Money
	Category  Category
	Available bool

	UpdatedAt time.Time
}

// Cookable reports whether a cook level applies to the product.
func (p Product) Cookable() bool {
	return p.Category == CategoryBurgers
}
