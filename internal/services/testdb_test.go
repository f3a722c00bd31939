package services

import (
	"fmt"
	"testing"

	"github.com/drilledtools/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database and migrates the full
// model set. A single connection keeps concurrent transactions serialized the
// way the real store's concurrency control would.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Purchase{},
		&models.PaymentReceipt{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
