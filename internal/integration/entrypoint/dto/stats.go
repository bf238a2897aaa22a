package dto

import (
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/usecase/stats"
)

// DailyStatResponse represents per-day totals in API responses.
type DailyStatResponse struct {
	Date         string          `json:"date"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// DailyStatsResponse represents the daily statistics listing.
type DailyStatsResponse struct {
	Stats     []DailyStatResponse `json:"stats"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
}

// MonthlyStatsResponse represents the monthly statistics listing.
type MonthlyStatsResponse struct {
	Stats []stats.MonthlyStat `json:"stats"`
}

// CategoryStatsResponse represents the per-category statistics listing.
type CategoryStatsResponse struct {
	Stats []stats.CategoryStat `json:"stats"`
	Type  string               `json:"type"`
}

// ToDailyStatsResponse converts daily stats output to a response DTO.
func ToDailyStatsResponse(output *stats.GetDailyStatsOutput, startDate, endDate string) DailyStatsResponse {
	results := make([]DailyStatResponse, 0, len(output.Stats))
	for _, stat := range output.Stats {
		results = append(results, DailyStatResponse{
			Date:         stat.Date.Format("2006-01-02"),
			TotalIncome:  stat.TotalIncome,
			TotalExpense: stat.TotalExpense,
			Net:          stat.Net,
		})
	}
	return DailyStatsResponse{
		Stats:     results,
		StartDate: startDate,
		EndDate:   endDate,
	}
}
