// Package stats contains the statistics aggregation use cases.
package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// StatsRepository defines the read capability the aggregator needs from the
// transaction store: user-scoped grouped sums over the amount column.
type StatsRepository interface {
	// SumByDateAndType returns one row per (date, type) group with the summed
	// amount and row count. Either date bound may be nil, meaning unbounded
	// on that side.
	SumByDateAndType(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate *time.Time,
	) ([]DateTypeSum, error)

	// SumByCategory returns one row per category with the summed amount and
	// row count, restricted to transactions of the given type. Either date
	// bound may be nil.
	SumByCategory(
		ctx context.Context,
		userID uuid.UUID,
		transactionType entity.TransactionType,
		startDate, endDate *time.Time,
	) ([]CategorySum, error)
}

// DateTypeSum represents a raw (date, type) aggregate row from the store.
type DateTypeSum struct {
	Date  time.Time
	Type  entity.TransactionType
	Total decimal.Decimal
	Count int
}

// CategorySum represents a raw per-category aggregate row from the store.
type CategorySum struct {
	Category string
	Total    decimal.Decimal
	Count    int
}
