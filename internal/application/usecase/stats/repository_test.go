// Package stats contains the statistics aggregation use cases.
package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// fakeStatsRepository computes grouped sums in memory from a fixed
// transaction set, mirroring what the SQL implementation returns.
type fakeStatsRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeStatsRepository) SumByDateAndType(
	_ context.Context,
	userID uuid.UUID,
	startDate, endDate *time.Time,
) ([]DateTypeSum, error) {
	if f.err != nil {
		return nil, f.err
	}

	type groupKey struct {
		date string
		typ  entity.TransactionType
	}

	groups := make(map[groupKey]*DateTypeSum)
	var order []groupKey
	for _, txn := range f.transactions {
		if txn.UserID != userID {
			continue
		}
		if startDate != nil && txn.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && txn.Date.After(*endDate) {
			continue
		}

		key := groupKey{date: txn.Date.Format("2006-01-02"), typ: txn.Type}
		sum, ok := groups[key]
		if !ok {
			sum = &DateTypeSum{Date: txn.Date, Type: txn.Type, Total: decimal.Zero}
			groups[key] = sum
			order = append(order, key)
		}
		sum.Total = sum.Total.Add(txn.Amount)
		sum.Count++
	}

	rows := make([]DateTypeSum, 0, len(order))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	return rows, nil
}

func (f *fakeStatsRepository) SumByCategory(
	_ context.Context,
	userID uuid.UUID,
	transactionType entity.TransactionType,
	startDate, endDate *time.Time,
) ([]CategorySum, error) {
	if f.err != nil {
		return nil, f.err
	}

	groups := make(map[string]*CategorySum)
	var order []string
	for _, txn := range f.transactions {
		if txn.UserID != userID || txn.Type != transactionType {
			continue
		}
		if startDate != nil && txn.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && txn.Date.After(*endDate) {
			continue
		}

		sum, ok := groups[txn.Category]
		if !ok {
			sum = &CategorySum{Category: txn.Category, Total: decimal.Zero}
			groups[txn.Category] = sum
			order = append(order, txn.Category)
		}
		sum.Total = sum.Total.Add(txn.Amount)
		sum.Count++
	}

	rows := make([]CategorySum, 0, len(order))
	for _, category := range order {
		rows = append(rows, *groups[category])
	}
	return rows, nil
}

// day builds a calendar date in UTC.
func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// amount parses a decimal literal, failing loudly on typos in fixtures.
func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// txn builds a transaction fixture for the given user.
func txn(userID uuid.UUID, date time.Time, typ entity.TransactionType, category, value string) *entity.Transaction {
	return entity.NewTransaction(userID, nil, date, typ, category, amount(value), "", "")
}
