package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/daily-ledger/backend/internal/application/usecase/stats"
	"github.com/daily-ledger/backend/internal/domain/entity"
	"github.com/daily-ledger/backend/internal/integration/persistence/model"
)

// statsRepository implements the stats.StatsRepository interface. The
// queries stick to plain GROUP BY so they run unchanged on PostgreSQL and
// on the SQLite database used in tests.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance.
func NewStatsRepository(db *gorm.DB) stats.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

type dateTypeRow struct {
	Date  time.Time
	Type  string
	Total decimal.Decimal
	Count int
}

type categoryRow struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// SumByDateAndType returns one row per (date, type) group with the summed
// amount and row count.
func (r *statsRepository) SumByDateAndType(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]stats.DateTypeSum, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("date, type, SUM(amount) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID)

	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var rows []dateTypeRow
	if err := query.Group("date, type").Order("date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make([]stats.DateTypeSum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, stats.DateTypeSum{
			Date:  row.Date,
			Type:  entity.TransactionType(row.Type),
			Total: row.Total,
			Count: row.Count,
		})
	}
	return sums, nil
}

// SumByCategory returns one row per category with the summed amount and row
// count, restricted to transactions of the given type.
func (r *statsRepository) SumByCategory(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, startDate, endDate *time.Time) ([]stats.CategorySum, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("user_id = ? AND type = ?", userID, string(transactionType))

	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var rows []categoryRow
	if err := query.Group("category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make([]stats.CategorySum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, stats.CategorySum{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}
	return sums, nil
}
