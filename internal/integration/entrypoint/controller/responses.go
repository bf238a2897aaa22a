package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-ledger/backend/internal/application/usecase/entry"
	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated is used when the auth middleware context is missing.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
	})
}

func respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date, expected YYYY-MM-DD",
	})
}

func toEntryWithTransactionsResponse(entryOutput *entry.EntryOutput, transactions []*transaction.TransactionOutput) dto.EntryWithTransactionsResponse {
	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, dto.ToTransactionResponse(txn))
	}
	return dto.EntryWithTransactionsResponse{
		Entry:        dto.ToEntryResponse(entryOutput),
		Transactions: items,
	}
}
