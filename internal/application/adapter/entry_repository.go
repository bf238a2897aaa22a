// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing entries.
type EntryFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// EntryPagination defines pagination options for listing entries.
type EntryPagination struct {
	Page     int
	PageSize int
}

// EntryRepository defines the interface for diary entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// CreateWithTransactions creates an entry and its linked transactions atomically.
	// Every transaction is stored with its EntryID set to the new entry's ID.
	CreateWithTransactions(ctx context.Context, entry *entity.Entry, transactions []*entity.Transaction) error

	// FindByIDAndUser retrieves an entry by ID scoped to the owning user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error)

	// FindByFilter retrieves entries matching the filter, newest date first.
	FindByFilter(ctx context.Context, filter EntryFilter, pagination EntryPagination) (*entity.EntryListResult, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry and cascades to its linked transactions.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
