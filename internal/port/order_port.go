package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/bistro-cart/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// CreateOrder also credits the customer's loyalty points.
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	LoyaltyPoints(ctx context.Context, customerID string) (int64, error)
}
