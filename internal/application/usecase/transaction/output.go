// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// TransactionOutput represents a single transaction in use case output.
type TransactionOutput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EntryID       *uuid.UUID
	Date          time.Time
	Type          entity.TransactionType
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToTransactionOutput converts a transaction entity into its output representation.
func ToTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		EntryID:       transaction.EntryID,
		Date:          transaction.Date,
		Type:          transaction.Type,
		Category:      transaction.Category,
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		PaymentMethod: transaction.PaymentMethod,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
