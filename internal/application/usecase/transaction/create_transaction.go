package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	EntryID       *uuid.UUID
	Date          time.Time
	Type          entity.TransactionType
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	entryRepo       adapter.EntryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	entryRepo adapter.EntryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := ValidateFields(input.Type, input.Category, input.Amount, input.Description, input.PaymentMethod); err != nil {
		return nil, err
	}

	// A linked entry must exist and belong to the same user.
	if input.EntryID != nil {
		if _, err := uc.entryRepo.FindByIDAndUser(ctx, *input.EntryID, input.UserID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeLinkedEntryNotFound,
				"linked entry not found",
				domainerror.ErrLinkedEntryNotFound,
			)
		}
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.EntryID,
		input.Date,
		input.Type,
		input.Category,
		input.Amount,
		input.Description,
		input.PaymentMethod,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: ToTransactionOutput(transaction)}, nil
}
