package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bistro-cart/internal/db"
	"github.com/nikolayk812/bistro-cart/internal/domain"
	"github.com/nikolayk812/bistro-cart/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		Total:           req.Total,
		Lines:           req.Lines,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
		PointsEarned:    domain.LoyaltyPoints(req.Total),
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		createdAt, err := q.CreateOrder(ctx, db.CreateOrderParams{
			ID:              order.ID,
			CustomerID:      order.CustomerID,
			TotalAmount:     order.Total.Amount,
			TotalCurrency:   order.Total.Currency.String(),
			DeliveryAddress: order.DeliveryAddress,
			Phone:           order.Phone,
			PaymentMethod:   string(order.PaymentMethod),
			PointsEarned:    order.PointsEarned,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}
		order.CreatedAt = createdAt

		for i, line := range order.Lines {
			err := q.AddOrderLine(ctx, db.AddOrderLineParams{
				OrderID:           order.ID,
				LineNo:            int32(i + 1),
				ProductName:       line.ProductName,
				Description:       line.Description,
				Quantity:          int32(line.Quantity),
				UnitPriceAmount:   line.UnitPrice.Amount,
				UnitPriceCurrency: line.UnitPrice.Currency.String(),
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.AddOrderLine[%d]: %w", i, err)
			}
		}

		if order.PointsEarned > 0 {
			err = q.AddLoyaltyPoints(ctx, db.AddLoyaltyPointsParams{
				CustomerID: order.CustomerID,
				Points:     order.PointsEarned,
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.AddLoyaltyPoints: %w", err)
			}
		}

		return order, nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	if orderID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	row, err := r.q.GetOrder(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("%w: %s", port.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	lineRows, err := r.q.GetOrderLines(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderLines: %w", err)
	}

	order, err := mapOrderToDomain(row, lineRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) LoyaltyPoints(ctx context.Context, customerID string) (int64, error) {
	if customerID == "" {
		return 0, fmt.Errorf("customerID is empty")
	}

	points, err := r.q.GetLoyaltyPoints(ctx, customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("q.GetLoyaltyPoints: %w", err)
	}

	return points, nil
}

func validateOrderRequest(req domain.OrderRequest) error {
	switch {
	case req.CustomerID == "":
		return fmt.Errorf("customerID is empty")
	case len(req.Lines) == 0:
		return fmt.Errorf("lines are empty")
	case req.DeliveryAddress == "":
		return fmt.Errorf("deliveryAddress is empty")
	case req.Phone == "":
		return fmt.Errorf("phone is empty")
	}

	if _, err := domain.ParsePaymentMethod(string(req.PaymentMethod)); err != nil {
		return err
	}

	for i, line := range req.Lines {
		if line.Quantity < 1 {
			return fmt.Errorf("line[%d] quantity is not positive", i)
		}
		if line.UnitPrice.Currency != req.Total.Currency {
			return fmt.Errorf("line[%d]: %w", i, domain.ErrCurrencyMismatch)
		}
	}

	return nil
}

func mapOrderToDomain(row db.Order, lineRows []db.GetOrderLinesRow) (domain.Order, error) {
	totalCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	lines := make([]domain.OrderLine, 0, len(lineRows))
	for _, lr := range lineRows {
		lineCurrency, err := currency.ParseISO(lr.UnitPriceCurrency)
		if err != nil {
			return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", lr.UnitPriceCurrency, err)
		}

		lines = append(lines, domain.OrderLine{
			ProductName: lr.ProductName,
			Description: lr.Description,
			Quantity:    int(lr.Quantity),
			UnitPrice:   domain.Money{Amount: lr.UnitPriceAmount, Currency: lineCurrency},
		})
	}

	return domain.Order{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		Total:           domain.Money{Amount: row.TotalAmount, Currency: totalCurrency},
		Lines:           lines,
		DeliveryAddress: row.DeliveryAddress,
		Phone:           row.Phone,
		PaymentMethod:   domain.PaymentMethod(row.PaymentMethod),
		PointsEarned:    row.PointsEarned,
		CreatedAt:       row.CreatedAt,
	}, nil
}
