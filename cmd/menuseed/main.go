// Command menuseed loads a JSON menu into Postgres and prints what is on offer.
//
//	menuseed -file menu.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bistro-cart/internal/config"
	"github.com/nikolayk812/bistro-cart/internal/domain"
	"github.com/nikolayk812/bistro-cart/internal/repository"
	"go.uber.org/zap"
)

type menuEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Available *bool  `json:"available"`
}

func main() {
	file := flag.String("file", "menu.json", "menu file to load")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *file, logger); err != nil {
		logger.Error("menuseed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, file string, logger *zap.Logger) error {
	products, err := readMenu(file)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	menu := repository.NewMenu(pool)

	for _, p := range products {
		if p.Price.Currency != cfg.Currency {
			logger.Warn("skipping product priced in another currency",
				zap.String("name", p.Name),
				zap.Stringer("currency", p.Price.Currency))
			continue
		}

		if err := menu.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("menu.UpsertProduct[%s]: %w", p.Name, err)
		}
		logger.Debug("product upserted", zap.String("name", p.Name), zap.Stringer("price", p.Price))
	}

	available, err := menu.ListAvailableProducts(ctx)
	if err != nil {
		return fmt.Errorf("menu.ListAvailableProducts: %w", err)
	}

	logger.Info("menu loaded", zap.Int("read", len(products)), zap.Int("available", len(available)))

	for _, p := range available {
		fmt.Printf("%-10s %-30s %s\n", p.Category, p.Name, p.Price)
	}

	return nil
}

func readMenu(file string) ([]domain.Product, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var entries []menuEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return mapEntriesToDomain(entries)
}

func mapEntriesToDomain(entries []menuEntry) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(entries))

	for i, e := range entries {
		price, err := domain.ParseMoney(e.Price)
		if err != nil {
			return nil, fmt.Errorf("entry[%d]: %w", i, err)
		}

		category, err := domain.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("entry[%d]: %w", i, err)
		}

		// stable ids keep re-seeding idempotent
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(e.Name))
		if e.ID != "" {
			if id, err = uuid.Parse(e.ID); err != nil {
				return nil, fmt.Errorf("entry[%d] id: %w", i, err)
			}
		}

		products = append(products, domain.Product{
			ID:        id,
			Name:      e.Name,
			Price:     price,
			Category:  category,
			Available: e.Available == nil || *e.Available,
		})
	}

	return products, nil
}
