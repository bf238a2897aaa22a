package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory TransactionRepository for tests.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	stored := *transaction
	f.transactions = append(f.transactions, &stored)
	return nil
}

func (f *fakeTransactionRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, transaction := range f.transactions {
		if transaction.ID == id && transaction.UserID == userID {
			found := *transaction
			return &found, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindByEntry(_ context.Context, entryID uuid.UUID) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var linked []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.EntryID != nil && *transaction.EntryID == entryID {
			found := *transaction
			linked = append(linked, &found)
		}
	}
	return linked, nil
}

func (f *fakeTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && transaction.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && transaction.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Category != nil && transaction.Category != *filter.Category {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		found := *transaction
		matched = append(matched, &found)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	total := int64(len(matched))
	if pagination.Skip >= len(matched) {
		matched = nil
	} else {
		matched = matched[pagination.Skip:]
	}
	if len(matched) > pagination.Limit {
		matched = matched[:pagination.Limit]
	}
	return &adapter.TransactionListResult{Transactions: matched, Total: total}, nil
}

func (f *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.transactions {
		if stored.ID == transaction.ID {
			updated := *transaction
			f.transactions[i] = &updated
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.transactions {
		if stored.ID == id && stored.UserID == userID {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

// fakeEntryRepository is an in-memory EntryRepository for tests.
type fakeEntryRepository struct {
	entries []*entity.Entry
	err     error
}

func (f *fakeEntryRepository) Create(_ context.Context, entry *entity.Entry) error {
	if f.err != nil {
		return f.err
	}
	stored := *entry
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeEntryRepository) CreateWithTransactions(_ context.Context, entry *entity.Entry, _ []*entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	stored := *entry
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeEntryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, entry := range f.entries {
		if entry.ID == id && entry.UserID == userID {
			found := *entry
			return &found, nil
		}
	}
	return nil, domainerror.ErrEntryNotFound
}

func (f *fakeEntryRepository) FindByFilter(_ context.Context, _ adapter.EntryFilter, _ adapter.EntryPagination) (*entity.EntryListResult, error) {
	return &entity.EntryListResult{}, f.err
}

func (f *fakeEntryRepository) Update(_ context.Context, _ *entity.Entry) error {
	return f.err
}

func (f *fakeEntryRepository) Delete(_ context.Context, _, _ uuid.UUID) error {
	return f.err
}

func mustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}
