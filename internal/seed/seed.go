// Package seed заменяет содержимое каталога фиксированным набором товаров.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"catalog/internal/products"
)

// Catalog — то, что нужно сиду от сервиса товаров
type Catalog interface {
	DeleteAll(ctx context.Context) error
	Create(ctx context.Context, in products.CreateInput) (*products.ProductView, error)
}

// Service — сид каталога из фикстур
type Service struct {
	catalog  Catalog
	fixtures []products.CreateInput
	logger   *zap.Logger
}

// NewService — fixtures могут быть пустыми: тогда Run просто чистит каталог
func NewService(catalog Catalog, fixtures []products.CreateInput, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, fixtures: fixtures, logger: logger.Named("seed")}
}

// Run удаляет все товары и параллельно вставляет фикстуры.
// Первая ошибка отменяет остальные вставки и возвращается.
func (s *Service) Run(ctx context.Context) error {
	if err := s.catalog.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, fixture := range s.fixtures {
		fixture := fixture
		g.Go(func() error {
			_, err := s.catalog.Create(gctx, fixture)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("insert fixtures: %w", err)
	}

	s.logger.Info("seed executed", zap.Int("products", len(s.fixtures)))
	return nil
}
