package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for entry update. Nil fields are
// left unchanged.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
	Date    *time.Time
	Title   *string
	Content *string
	Mood    *string
	Photos  []string
	Tags    []string
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *EntryOutput
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.entryRepo.FindByIDAndUser(ctx, input.EntryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Content != nil {
		entry.Content = *input.Content
	}
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}
	if input.Photos != nil {
		entry.Photos = input.Photos
	}
	if input.Tags != nil {
		entry.Tags = input.Tags
	}

	if err := validateEntryFields(entry.Date, entry.Title, entry.Mood); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: ToEntryOutput(entry)}, nil
}
