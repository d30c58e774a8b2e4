package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/bistro-cart/internal/domain"
	"github.com/nikolayk812/bistro-cart/internal/port"
)

// mockCatalog implements port.MenuCatalog over a fixed product list.
type mockCatalog struct {
	Products []domain.Product
	Err      error
}

func (m *mockCatalog) ListAvailableProducts(_ context.Context) ([]domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var result []domain.Product
	for _, p := range m.Products {
		if p.Available {
			result = append(result, p)
		}
	}

	return result, nil
}

func (m *mockCatalog) FindProductByName(_ context.Context, name string) (domain.Product, error) {
	if m.Err != nil {
		return domain.Product{}, m.Err
	}

	for _, p := range m.Products {
		if p.Name == name {
			return p, nil
		}
	}

	return domain.Product{}, fmt.Errorf("%w: %s", port.ErrProductNotFound, name)
}

// mockOrders implements port.OrderRepository, capturing the created request.
type mockOrders struct {
	Created   *domain.OrderRequest
	CreateErr error
	Order     domain.Order
	GetErr    error
}

func (m *mockOrders) CreateOrder(_ context.Context, req domain.OrderRequest) (domain.Order, error) {
	m.Created = &req
	if m.CreateErr != nil {
		return domain.Order{}, m.CreateErr
	}

	return domain.Order{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		Total:           req.Total,
		Lines:           req.Lines,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
		PointsEarned:    domain.LoyaltyPoints(req.Total),
	}, nil
}

func (m *mockOrders) GetOrder(_ context.Context, _ uuid.UUID) (domain.Order, error) {
	return m.Order, m.GetErr
}

func (m *mockOrders) LoyaltyPoints(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
