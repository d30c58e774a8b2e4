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

type menuRepository struct {
	q *db.Queries
}

func NewMenu(pool *pgxpool.Pool) port.MenuRepository {
	return &menuRepository{
		q: db.New(pool),
	}
}

func NewMenuWithTx(tx pgx.Tx) port.MenuRepository {
	return &menuRepository{
		q: db.New(tx),
	}
}

func (r *menuRepository) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListAvailableProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListAvailableProducts: %w", err)
	}

	products, err := mapMenuProductsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapMenuProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *menuRepository) FindProductByName(ctx context.Context, name string) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, fmt.Errorf("name is empty")
	}

	row, err := r.q.GetProductByName(ctx, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("%w: %s", port.ErrProductNotFound, name)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProductByName: %w", err)
	}

	product, err := mapMenuProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapMenuProductToDomain: %w", err)
	}

	return product, nil
}

func (r *menuRepository) UpsertProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}
	if product.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if _, err := domain.ParseCategory(string(product.Category)); err != nil {
		return err
	}

	err := r.q.UpsertProduct(ctx, db.UpsertProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Category:      string(product.Category),
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Available:     product.Available,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", err)
	}

	return nil
}

func (r *menuRepository) SetAvailability(ctx context.Context, productID uuid.UUID, available bool) (bool, error) {
	rowsAffected, err := r.q.SetProductAvailability(ctx, db.SetProductAvailabilityParams{
		ID:        productID,
		Available: available,
	})
	if err != nil {
		return false, fmt.Errorf("q.SetProductAvailability: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapMenuProductToDomain(row db.MenuProduct) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	category, err := domain.ParseCategory(row.Category)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:        row.ID,
		Name:      row.Name,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Category:  category,
		Available: row.Available,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func mapMenuProductsToDomain(rows []db.MenuProduct) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapMenuProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapMenuProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
