package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catalog/internal/models"
)

// zapWriter пропускает вывод логгера gorm через zap
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}

// Dialector выбирает драйвер по схеме DSN: postgres:// или sqlite://
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		// без этого sqlite не соблюдает ON DELETE CASCADE
		if !strings.Contains(path, "_foreign_keys") {
			sep := "?"
			if strings.Contains(path, "?") {
				sep = "&"
			}
			path += sep + "_foreign_keys=on"
		}
		return sqlite.Open(path), nil
	}
	return nil, fmt.Errorf("unsupported database URL: %q", dsn)
}

// Open открывает соединение с БД
func Open(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(zapWriter{log: logger.Sugar()}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if dialector.Name() == "sqlite" {
		// sqlite пишет в один поток; shared-cache in-memory иначе ловит SQLITE_LOCKED
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// MustOpen открывает соединение или завершает процесс
func MustOpen(dsn string, logger *zap.Logger) *gorm.DB {
	if dsn == "" {
		logger.Fatal("DB_DSN is empty (check your .env)")
	}
	db, err := Open(dsn, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	return db
}

// Migrate создаёт/обновляет таблицы каталога
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.ProductImage{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
