// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// MaxCategoryLength is the maximum allowed length for transaction categories.
const MaxCategoryLength = 100

// MaxTransactionDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxTransactionDescriptionLength = 500

// MaxPaymentMethodLength is the maximum allowed length for payment methods.
const MaxPaymentMethodLength = 50

// MaxTransactionAmount is the largest amount a single transaction may carry.
var MaxTransactionAmount = decimal.RequireFromString("9999999999.99")

// Transaction represents a financial record (income or expense) in the
// Daily Ledger system. Amounts are always positive; the Type field decides
// whether the amount counts toward income or expense.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EntryID       *uuid.UUID // Optional link to a diary entry
	Date          time.Time
	Type          TransactionType
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string // cash, card, bank transfer, etc.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	entryID *uuid.UUID,
	date time.Time,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	paymentMethod string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		EntryID:       entryID,
		Date:          date,
		Type:          transactionType,
		Category:      category,
		Amount:        amount,
		Description:   description,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidTransactionType reports whether the given type is income or expense.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}
