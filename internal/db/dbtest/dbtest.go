// Package dbtest поднимает изолированную in-memory БД для тестов.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/db"
)

// New возвращает мигрированную sqlite-базу, живущую до конца теста
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "sqlite://file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := db.Open(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}
