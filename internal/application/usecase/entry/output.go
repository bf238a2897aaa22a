// Package entry contains diary entry use cases.
package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
	"github.com/daily-ledger/backend/internal/domain/entity"
)

// EntryOutput represents a single entry in use case output.
type EntryOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Title     string
	Content   string
	Mood      string
	Photos    []string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToEntryOutput converts an entry entity into its output representation.
func ToEntryOutput(entry *entity.Entry) *EntryOutput {
	return &EntryOutput{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Date:      entry.Date,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Photos:    entry.Photos,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// EntryWithTransactionsOutput represents an entry with its linked transactions.
type EntryWithTransactionsOutput struct {
	Entry        *EntryOutput
	Transactions []*transaction.TransactionOutput
}
