package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daily-ledger/backend/internal/domain/entity"
	"github.com/daily-ledger/backend/internal/integration/persistence/model"
)

// testDB opens an isolated in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.EntryModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	repo := NewUserRepository(db)
	user := entity.NewUser(uuid.NewString()+"@example.com", "tester", "hash")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
