package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/bistro-cart/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// MenuCatalog is the read-only view of the menu used by the cart.
type MenuCatalog interface {
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
	FindProductByName(ctx context.Context, name string) (domain.Product, error)
}

type MenuRepository interface {
	MenuCatalog

	UpsertProduct(ctx context.Context, product domain.Product) error
	SetAvailability(ctx context.Context, productID uuid.UUID, available bool) (bool, error)
}
