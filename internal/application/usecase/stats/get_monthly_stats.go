// Package stats contains the statistics aggregation use cases.
package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// GetMonthlyStatsInput represents the input for getting monthly statistics.
// Year and Month are independently optional equality filters; with both nil
// the query spans the user's entire history.
type GetMonthlyStatsInput struct {
	UserID uuid.UUID
	Year   *int
	Month  *int
}

// MonthlyStat represents income, expense, net and transaction count for a
// single (year, month) bucket.
type MonthlyStat struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// GetMonthlyStatsOutput represents the output of getting monthly statistics.
type GetMonthlyStatsOutput struct {
	Stats []MonthlyStat `json:"stats"`
}

// GetMonthlyStatsUseCase computes per-month income/expense totals for a user.
type GetMonthlyStatsUseCase struct {
	statsRepo StatsRepository
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(statsRepo StatsRepository) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		statsRepo: statsRepo,
	}
}

// monthKey identifies one (year, month) bucket.
type monthKey struct {
	year  int
	month int
}

// monthlyAccumulator collects the income and expense sides of one month bucket.
type monthlyAccumulator struct {
	income  decimal.Decimal
	expense decimal.Decimal
	count   int
}

// Execute retrieves monthly income/expense totals, most recent month first.
// Months without transactions produce no row.
func (uc *GetMonthlyStatsUseCase) Execute(
	ctx context.Context,
	input GetMonthlyStatsInput,
) (*GetMonthlyStatsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	rows, err := uc.statsRepo.SumByDateAndType(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly sums: %w", err)
	}

	// Extract (year, month) from each grouped row, apply the equality
	// filters, and merge into one accumulator per month. The transaction
	// count of a bucket is the number of income rows plus expense rows.
	buckets := make(map[monthKey]*monthlyAccumulator)
	for _, row := range rows {
		key := monthKey{
			year:  row.Date.Year(),
			month: int(row.Date.Month()),
		}

		if input.Year != nil && key.year != *input.Year {
			continue
		}
		if input.Month != nil && key.month != *input.Month {
			continue
		}

		acc, ok := buckets[key]
		if !ok {
			acc = &monthlyAccumulator{
				income:  decimal.Zero,
				expense: decimal.Zero,
			}
			buckets[key] = acc
		}

		if row.Type == entity.TransactionTypeIncome {
			acc.income = acc.income.Add(row.Total)
		} else {
			acc.expense = acc.expense.Add(row.Total)
		}
		acc.count += row.Count
	}

	stats := make([]MonthlyStat, 0, len(buckets))
	for key, acc := range buckets {
		stats = append(stats, MonthlyStat{
			Year:             key.year,
			Month:            key.month,
			TotalIncome:      acc.income,
			TotalExpense:     acc.expense,
			Net:              acc.income.Sub(acc.expense),
			TransactionCount: acc.count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Year != stats[j].Year {
			return stats[i].Year > stats[j].Year
		}
		return stats[i].Month > stats[j].Month
	})

	return &GetMonthlyStatsOutput{Stats: stats}, nil
}

// validateInput validates the input parameters.
func (uc *GetMonthlyStatsUseCase) validateInput(input GetMonthlyStatsInput) error {
	if input.Year != nil && *input.Year <= 0 {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidYear,
			"year must be a positive number",
			domainerror.ErrInvalidYear,
		)
	}

	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	return nil
}
