package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryUseCase handles entry deletion. Deleting an entry also removes
// the transactions linked to it.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	if err := uc.entryRepo.Delete(ctx, input.EntryID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
