package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
)

const (
	// DefaultPageSize is used when the caller does not specify a page size.
	DefaultPageSize = 20
	// MaxPageSize caps the page size for entry listings.
	MaxPageSize = 100
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries  []*EntryOutput
	Total    int64
	Page     int
	PageSize int
}

// ListEntriesUseCase handles listing entries logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry listing, newest date first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter := adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	result, err := uc.entryRepo.FindByFilter(ctx, filter, adapter.EntryPagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := make([]*EntryOutput, 0, len(result.Entries))
	for _, entry := range result.Entries {
		entries = append(entries, ToEntryOutput(entry))
	}

	return &ListEntriesOutput{
		Entries:  entries,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
