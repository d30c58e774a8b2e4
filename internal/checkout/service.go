// Package checkout turns a session cart into an order and back.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/bistro-cart/internal/domain"
	"github.com/nikolayk812/bistro-cart/internal/port"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

type Details struct {
	CustomerID      string
	DeliveryAddress string
	Phone           string
	PaymentMethod   domain.PaymentMethod
}

type Service struct {
	catalog port.MenuCatalog
	orders  port.OrderRepository
	logger  *zap.Logger
}

func NewService(catalog port.MenuCatalog, orders port.OrderRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		catalog: catalog,
		orders:  orders,
		logger:  logger,
	}
}

func (s *Service) Menu(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListAvailableProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAvailableProducts: %w", err)
	}

	return products, nil
}

// PlaceOrder stores the cart as an order and clears it. The cart is left
// untouched when the order cannot be stored.
func (s *Service) PlaceOrder(ctx context.Context, cart *domain.Cart, details Details) (domain.Order, error) {
	if !cart.CanCheckout() {
		return domain.Order{}, ErrEmptyCart
	}

	totals := cart.Totals()
	req := domain.OrderRequest{
		CustomerID:      details.CustomerID,
		Total:           totals.GrandTotal,
		Lines:           orderLines(cart.Lines()),
		DeliveryAddress: details.DeliveryAddress,
		Phone:           details.Phone,
		PaymentMethod:   details.PaymentMethod,
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Warn("order not placed",
			zap.String("customer_id", details.CustomerID),
			zap.Int("lines", cart.Len()),
			zap.Error(err))
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	cart.Clear()

	s.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		zap.String("customer_id", order.CustomerID),
		zap.Stringer("total", order.Total.Round()),
		zap.Int64("points_earned", order.PointsEarned))

	return order, nil
}

// Reorder adds the products of a past order to the cart, uncustomized.
// Products no longer on the menu are skipped and their names returned.
// On error the cart is left as it was.
func (s *Service) Reorder(ctx context.Context, orderID uuid.UUID, cart *domain.Cart) ([]string, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("orders.GetOrder: %w", err)
	}

	var skipped []string
	scratch := domain.NewCart(cart.Currency)

	for _, line := range order.Lines {
		product, err := s.catalog.FindProductByName(ctx, line.ProductName)
		if errors.Is(err, port.ErrProductNotFound) {
			skipped = append(skipped, line.ProductName)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("catalog.FindProductByName: %w", err)
		}

		_, err = scratch.Add(product, line.Quantity, nil)
		if errors.Is(err, domain.ErrProductUnavailable) {
			skipped = append(skipped, line.ProductName)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cart.Add[%s]: %w", line.ProductName, err)
		}
	}

	// scratch passed the same checks against the same currency
	for _, line := range scratch.Lines() {
		if _, err := cart.Add(line.Product, line.Quantity, nil); err != nil {
			return nil, fmt.Errorf("cart.Add[%s]: %w", line.Product.Name, err)
		}
	}

	if len(skipped) > 0 {
		s.logger.Info("reorder skipped products",
			zap.Stringer("order_id", orderID),
			zap.Strings("products", skipped))
	}

	return skipped, nil
}

func orderLines(lines []domain.CartLine) []domain.OrderLine {
	result := make([]domain.OrderLine, 0, len(lines))

	for _, l := range lines {
		result = append(result, domain.OrderLine{
			ProductName: l.Product.Name,
			Description: l.Description(),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return result
}
