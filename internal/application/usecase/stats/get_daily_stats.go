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

// GetDailyStatsInput represents the input for getting daily statistics.
type GetDailyStatsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// DailyStat represents income, expense and net totals for a single date.
type DailyStat struct {
	Date         time.Time       `json:"date"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// GetDailyStatsOutput represents the output of getting daily statistics.
type GetDailyStatsOutput struct {
	Stats []DailyStat `json:"stats"`
}

// GetDailyStatsUseCase computes per-date income/expense totals for a user.
type GetDailyStatsUseCase struct {
	statsRepo StatsRepository
}

// NewGetDailyStatsUseCase creates a new GetDailyStatsUseCase instance.
func NewGetDailyStatsUseCase(statsRepo StatsRepository) *GetDailyStatsUseCase {
	return &GetDailyStatsUseCase{
		statsRepo: statsRepo,
	}
}

// dailyAccumulator collects the income and expense sides of one date bucket.
type dailyAccumulator struct {
	date    time.Time
	income  decimal.Decimal
	expense decimal.Decimal
}

// Execute retrieves daily income/expense totals for the given date range.
// Dates without transactions produce no row; a date with only one side still
// produces a row with the other total at zero.
func (uc *GetDailyStatsUseCase) Execute(
	ctx context.Context,
	input GetDailyStatsInput,
) (*GetDailyStatsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	rows, err := uc.statsRepo.SumByDateAndType(ctx, input.UserID, &input.StartDate, &input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sums: %w", err)
	}

	// Merge the per-(date, type) rows into one accumulator per date,
	// defaulting the absent side to zero.
	buckets := make(map[string]*dailyAccumulator)
	for _, row := range rows {
		key := row.Date.Format("2006-01-02")
		acc, ok := buckets[key]
		if !ok {
			acc = &dailyAccumulator{
				date:    row.Date,
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
	}

	stats := make([]DailyStat, 0, len(buckets))
	for _, acc := range buckets {
		stats = append(stats, DailyStat{
			Date:         acc.date,
			TotalIncome:  acc.income,
			TotalExpense: acc.expense,
			Net:          acc.income.Sub(acc.expense),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date.Before(stats[j].Date)
	})

	return &GetDailyStatsOutput{Stats: stats}, nil
}

// validateInput validates the input parameters.
func (uc *GetDailyStatsUseCase) validateInput(input GetDailyStatsInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewStatsError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewStatsError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
