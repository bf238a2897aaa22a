package entry

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// fakeStore is an in-memory store implementing both EntryRepository and
// TransactionRepository so entry/transaction tests can share state.
type fakeStore struct {
	entries      []*entity.Entry
	transactions []*entity.Transaction
	err          error
}

func (f *fakeStore) Create(_ context.Context, entry *entity.Entry) error {
	if f.err != nil {
		return f.err
	}
	stored := *entry
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeStore) CreateWithTransactions(_ context.Context, entry *entity.Entry, transactions []*entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	stored := *entry
	f.entries = append(f.entries, &stored)
	for _, transaction := range transactions {
		storedTxn := *transaction
		f.transactions = append(f.transactions, &storedTxn)
	}
	return nil
}

func (f *fakeStore) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Entry, error) {
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

func (f *fakeStore) FindByFilter(_ context.Context, filter adapter.EntryFilter, pagination adapter.EntryPagination) (*entity.EntryListResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Entry
	for _, entry := range f.entries {
		if entry.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && entry.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && entry.Date.After(*filter.EndDate) {
			continue
		}
		found := *entry
		matched = append(matched, &found)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	total := int64(len(matched))
	offset := (pagination.Page - 1) * pagination.PageSize
	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
	}
	if len(matched) > pagination.PageSize {
		matched = matched[:pagination.PageSize]
	}
	return &entity.EntryListResult{
		Entries:  matched,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func (f *fakeStore) Update(_ context.Context, entry *entity.Entry) error {
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.entries {
		if stored.ID == entry.ID {
			updated := *entry
			f.entries[i] = &updated
			return nil
		}
	}
	return domainerror.ErrEntryNotFound
}

func (f *fakeStore) Delete(_ context.Context, id, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.entries {
		if stored.ID == id && stored.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			// Cascade to linked transactions.
			remaining := f.transactions[:0]
			for _, transaction := range f.transactions {
				if transaction.EntryID == nil || *transaction.EntryID != id {
					remaining = append(remaining, transaction)
				}
			}
			f.transactions = remaining
			return nil
		}
	}
	return domainerror.ErrEntryNotFound
}

// transactionStore adapts fakeStore to adapter.TransactionRepository.
type transactionStore struct {
	store *fakeStore
}

func (t *transactionStore) Create(_ context.Context, transaction *entity.Transaction) error {
	if t.store.err != nil {
		return t.store.err
	}
	stored := *transaction
	t.store.transactions = append(t.store.transactions, &stored)
	return nil
}

func (t *transactionStore) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	if t.store.err != nil {
		return nil, t.store.err
	}
	for _, transaction := range t.store.transactions {
		if transaction.ID == id && transaction.UserID == userID {
			found := *transaction
			return &found, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (t *transactionStore) FindByEntry(_ context.Context, entryID uuid.UUID) ([]*entity.Transaction, error) {
	if t.store.err != nil {
		return nil, t.store.err
	}
	var linked []*entity.Transaction
	for _, transaction := range t.store.transactions {
		if transaction.EntryID != nil && *transaction.EntryID == entryID {
			found := *transaction
			linked = append(linked, &found)
		}
	}
	return linked, nil
}

func (t *transactionStore) FindByFilter(_ context.Context, _ adapter.TransactionFilter, _ adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return &adapter.TransactionListResult{}, t.store.err
}

func (t *transactionStore) Update(_ context.Context, _ *entity.Transaction) error {
	return t.store.err
}

func (t *transactionStore) Delete(_ context.Context, _, _ uuid.UUID) error {
	return t.store.err
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func mustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}
