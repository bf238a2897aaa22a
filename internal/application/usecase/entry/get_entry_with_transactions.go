package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// GetEntryWithTransactionsInput represents the input for fetching an entry
// with its linked transactions.
type GetEntryWithTransactionsInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// GetEntryWithTransactionsUseCase fetches an entry together with its
// linked transactions.
type GetEntryWithTransactionsUseCase struct {
	entryRepo       adapter.EntryRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetEntryWithTransactionsUseCase creates a new use case instance.
func NewGetEntryWithTransactionsUseCase(
	entryRepo adapter.EntryRepository,
	transactionRepo adapter.TransactionRepository,
) *GetEntryWithTransactionsUseCase {
	return &GetEntryWithTransactionsUseCase{
		entryRepo:       entryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the entry and its transactions scoped to the owning user.
func (uc *GetEntryWithTransactionsUseCase) Execute(ctx context.Context, input GetEntryWithTransactionsInput) (*EntryWithTransactionsOutput, error) {
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

	linked, err := uc.transactionRepo.FindByEntry(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry transactions: %w", err)
	}

	transactions := make([]*transaction.TransactionOutput, 0, len(linked))
	for _, txn := range linked {
		transactions = append(transactions, transaction.ToTransactionOutput(txn))
	}

	return &EntryWithTransactionsOutput{
		Entry:        ToEntryOutput(entry),
		Transactions: transactions,
	}, nil
}
