package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// GetEntryInput represents the input for fetching a single entry.
type GetEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// GetEntryOutput represents the output of fetching a single entry.
type GetEntryOutput struct {
	Entry *EntryOutput
}

// GetEntryUseCase handles fetching a single entry.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute fetches the entry scoped to the owning user.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
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

	return &GetEntryOutput{Entry: ToEntryOutput(entry)}, nil
}
