package cli

import (
	"fmt"

	"gorm.io/gorm"

	"catalog/internal/db"
	"catalog/internal/products"
	"catalog/internal/seed"
)

type app struct {
	db       *gorm.DB
	products *products.Service
	seeder   *seed.Service
}

// openApp валидирует конфиг, открывает БД (при ошибке соединения — Fatal), мигрирует и собирает сервисы
func openApp() (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gdb := db.MustOpen(cfg.DBDSN, logger)
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	fixtures, err := seed.LoadFixturesFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed fixtures: %w", err)
	}
	svc := products.NewService(gdb, logger)
	return &app{
		db:       gdb,
		products: svc,
		seeder:   seed.NewService(svc, fixtures, logger),
	}, nil
}

func (a *app) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
