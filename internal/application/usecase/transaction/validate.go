package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// ValidateFields checks the user-supplied fields of a transaction. It is
// shared with the entry use cases that accept inline transactions.
func ValidateFields(
	transactionType entity.TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	paymentMethod string,
) error {
	if !entity.IsValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if category == "" || len(category) > entity.MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category is required and must not exceed %d characters", entity.MaxCategoryLength),
			domainerror.ErrInvalidCategory,
		)
	}

	if err := validateAmount(amount); err != nil {
		return err
	}

	if len(description) > entity.MaxTransactionDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxTransactionDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(paymentMethod) > entity.MaxPaymentMethodLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodePaymentMethodTooLong,
			fmt.Sprintf("payment method must not exceed %d characters", entity.MaxPaymentMethodLength),
			domainerror.ErrPaymentMethodTooLong,
		)
	}

	return nil
}

// validateAmount enforces the monetary bounds: strictly positive, at most
// two decimal places, and within the column precision.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	if amount.Exponent() < -2 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidAmount,
		)
	}
	if amount.GreaterThan(entity.MaxTransactionAmount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("amount must not exceed %s", entity.MaxTransactionAmount.String()),
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}
