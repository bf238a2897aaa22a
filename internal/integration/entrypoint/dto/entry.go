package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daily-ledger/backend/internal/application/usecase/entry"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Date    string   `json:"date" binding:"required"`
	Title   string   `json:"title" binding:"max=200"`
	Content string   `json:"content"`
	Mood    string   `json:"mood" binding:"max=50"`
	Photos  []string `json:"photos"`
	Tags    []string `json:"tags"`
}

// UpdateEntryRequest represents the request body for entry update. Absent
// fields are left unchanged.
type UpdateEntryRequest struct {
	Date    *string  `json:"date"`
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Mood    *string  `json:"mood"`
	Photos  []string `json:"photos"`
	Tags    []string `json:"tags"`
}

// InlineTransactionRequest represents a transaction submitted together with
// a new entry. The date defaults to the entry date when absent.
type InlineTransactionRequest struct {
	Date          *string         `json:"date"`
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}

// CreateEntryWithTransactionsRequest represents the combined creation request.
type CreateEntryWithTransactionsRequest struct {
	Entry        CreateEntryRequest         `json:"entry" binding:"required"`
	Transactions []InlineTransactionRequest `json:"transactions"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	Photos    []string  `json:"photos"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryListResponse represents a paginated entry listing.
type EntryListResponse struct {
	Entries  []EntryResponse `json:"entries"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EntryWithTransactionsResponse represents an entry with its linked transactions.
type EntryWithTransactionsResponse struct {
	Entry        EntryResponse         `json:"entry"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToEntryResponse converts a use case entry output to a response DTO.
func ToEntryResponse(output *entry.EntryOutput) EntryResponse {
	return EntryResponse{
		ID:        output.ID.String(),
		Date:      output.Date.Format("2006-01-02"),
		Title:     output.Title,
		Content:   output.Content,
		Mood:      output.Mood,
		Photos:    output.Photos,
		Tags:      output.Tags,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}
