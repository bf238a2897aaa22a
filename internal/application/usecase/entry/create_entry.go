package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID  uuid.UUID
	Date    time.Time
	Title   string
	Content string
	Mood    string
	Photos  []string
	Tags    []string
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *EntryOutput
}

// CreateEntryUseCase handles entry creation logic.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateEntryFields(input.Date, input.Title, input.Mood); err != nil {
		return nil, err
	}

	entry := entity.NewEntry(input.UserID, input.Date, input.Title, input.Content, input.Mood, input.Photos, input.Tags)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &CreateEntryOutput{Entry: ToEntryOutput(entry)}, nil
}
