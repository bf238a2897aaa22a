package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Dates use the YYYY-MM-DD format.
type CreateTransactionRequest struct {
	EntryID       *string         `json:"entry_id"`
	Date          string          `json:"date" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Date          *string          `json:"date"`
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   *string          `json:"description"`
	PaymentMethod *string          `json:"payment_method"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	EntryID       *string         `json:"entry_id,omitempty"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionListResponse represents a paginated transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Skip         int                   `json:"skip"`
	Limit        int                   `json:"limit"`
}

// ToTransactionResponse converts a use case transaction output to a response DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:            output.ID.String(),
		Date:          output.Date.Format("2006-01-02"),
		Type:          string(output.Type),
		Category:      output.Category,
		Amount:        output.Amount,
		Description:   output.Description,
		PaymentMethod: output.PaymentMethod,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
	if output.EntryID != nil {
		entryID := output.EntryID.String()
		response.EntryID = &entryID
	}
	return response
}
