// Package stats contains the statistics aggregation use cases.
package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// GetCategoryStatsInput represents the input for getting category statistics.
// Date bounds are independently optional; Type selects which transaction side
// the breakdown covers and defaults to expense at the HTTP layer.
type GetCategoryStatsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      entity.TransactionType
}

// CategoryStat represents the share of one category in the filtered result set.
type CategoryStat struct {
	Category         string          `json:"category"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	Percentage       float64         `json:"percentage"`
}

// GetCategoryStatsOutput represents the output of getting category statistics.
type GetCategoryStatsOutput struct {
	Stats []CategoryStat `json:"stats"`
}

// GetCategoryStatsUseCase computes the per-category breakdown of one
// transaction type for a user.
type GetCategoryStatsUseCase struct {
	statsRepo StatsRepository
}

// NewGetCategoryStatsUseCase creates a new GetCategoryStatsUseCase instance.
func NewGetCategoryStatsUseCase(statsRepo StatsRepository) *GetCategoryStatsUseCase {
	return &GetCategoryStatsUseCase{
		statsRepo: statsRepo,
	}
}

// Execute retrieves the category breakdown, largest total first. Ties on
// total_amount are broken by category name ascending so the output order is
// deterministic. Percentages are computed against the grand total of the
// returned set and rounded to two decimal places; a zero grand total yields
// zero percentages rather than a division error.
func (uc *GetCategoryStatsUseCase) Execute(
	ctx context.Context,
	input GetCategoryStatsInput,
) (*GetCategoryStatsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	rows, err := uc.statsRepo.SumByCategory(ctx, input.UserID, input.Type, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get category sums: %w", err)
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
	}

	stats := make([]CategoryStat, 0, len(rows))
	for _, row := range rows {
		var percentage float64
		if grandTotal.IsPositive() {
			pct := row.Total.Mul(decimal.NewFromInt(100)).Div(grandTotal)
			percentage, _ = pct.Round(2).Float64()
		}

		stats = append(stats, CategoryStat{
			Category:         row.Category,
			TotalAmount:      row.Total,
			TransactionCount: row.Count,
			Percentage:       percentage,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		cmp := stats[i].TotalAmount.Cmp(stats[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return stats[i].Category < stats[j].Category
	})

	return &GetCategoryStatsOutput{Stats: stats}, nil
}

// validateInput validates the input parameters.
func (uc *GetCategoryStatsUseCase) validateInput(input GetCategoryStatsInput) error {
	if !entity.IsValidTransactionType(input.Type) {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidStatsType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidStatsType,
		)
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
