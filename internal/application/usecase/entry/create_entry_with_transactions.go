package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
	"github.com/daily-ledger/backend/internal/domain/entity"
)

// InlineTransactionInput represents a transaction created together with an entry.
// The transaction date defaults to the entry date when zero.
type InlineTransactionInput struct {
	Date          time.Time
	Type          entity.TransactionType
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
}

// CreateEntryWithTransactionsInput represents the input for creating an entry
// together with its linked transactions.
type CreateEntryWithTransactionsInput struct {
	Entry        CreateEntryInput
	Transactions []InlineTransactionInput
}

// CreateEntryWithTransactionsOutput represents the output of the combined creation.
type CreateEntryWithTransactionsOutput struct {
	Entry        *EntryOutput
	Transactions []*transaction.TransactionOutput
}

// CreateEntryWithTransactionsUseCase creates an entry and its linked
// transactions in a single atomic operation.
type CreateEntryWithTransactionsUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCreateEntryWithTransactionsUseCase creates a new use case instance.
func NewCreateEntryWithTransactionsUseCase(entryRepo adapter.EntryRepository) *CreateEntryWithTransactionsUseCase {
	return &CreateEntryWithTransactionsUseCase{
		entryRepo: entryRepo,
	}
}

// Execute validates the entry and every transaction before anything is
// persisted, so a single invalid transaction rejects the whole request.
func (uc *CreateEntryWithTransactionsUseCase) Execute(ctx context.Context, input CreateEntryWithTransactionsInput) (*CreateEntryWithTransactionsOutput, error) {
	if err := validateEntryFields(input.Entry.Date, input.Entry.Title, input.Entry.Mood); err != nil {
		return nil, err
	}
	for _, txn := range input.Transactions {
		if err := transaction.ValidateFields(txn.Type, txn.Category, txn.Amount, txn.Description, txn.PaymentMethod); err != nil {
			return nil, err
		}
	}

	entry := entity.NewEntry(
		input.Entry.UserID,
		input.Entry.Date,
		input.Entry.Title,
		input.Entry.Content,
		input.Entry.Mood,
		input.Entry.Photos,
		input.Entry.Tags,
	)

	transactions := make([]*entity.Transaction, 0, len(input.Transactions))
	for _, txn := range input.Transactions {
		date := txn.Date
		if date.IsZero() {
			date = entry.Date
		}
		transactions = append(transactions, entity.NewTransaction(
			entry.UserID,
			&entry.ID,
			date,
			txn.Type,
			txn.Category,
			txn.Amount,
			txn.Description,
			txn.PaymentMethod,
		))
	}

	if err := uc.entryRepo.CreateWithTransactions(ctx, entry, transactions); err != nil {
		return nil, fmt.Errorf("failed to create entry with transactions: %w", err)
	}

	outputs := make([]*transaction.TransactionOutput, 0, len(transactions))
	for _, txn := range transactions {
		outputs = append(outputs, transaction.ToTransactionOutput(txn))
	}

	return &CreateEntryWithTransactionsOutput{
		Entry:        ToEntryOutput(entry),
		Transactions: outputs,
	}, nil
}
