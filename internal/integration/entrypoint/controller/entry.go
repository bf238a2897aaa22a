package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/usecase/entry"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for dates.
const dateLayout = "2006-01-02"

// EntryController handles diary entry endpoints.
type EntryController struct {
	createUseCase              *entry.CreateEntryUseCase
	listUseCase                *entry.ListEntriesUseCase
	getUseCase                 *entry.GetEntryUseCase
	updateUseCase              *entry.UpdateEntryUseCase
	deleteUseCase              *entry.DeleteEntryUseCase
	createWithTxnsUseCase      *entry.CreateEntryWithTransactionsUseCase
	getWithTransactionsUseCase *entry.GetEntryWithTransactionsUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	createWithTxnsUseCase *entry.CreateEntryWithTransactionsUseCase,
	getWithTransactionsUseCase *entry.GetEntryWithTransactionsUseCase,
) *EntryController {
	return &EntryController{
		createUseCase:              createUseCase,
		listUseCase:                listUseCase,
		getUseCase:                 getUseCase,
		updateUseCase:              updateUseCase,
		deleteUseCase:              deleteUseCase,
		createWithTxnsUseCase:      createWithTxnsUseCase,
		getWithTransactionsUseCase: getWithTransactionsUseCase,
	}
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input, err := c.buildCreateInput(userID, req)
	if err != nil {
		respondInvalidDate(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// CreateWithTransactions handles POST /entries/with-transactions requests.
func (c *EntryController) CreateWithTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEntryWithTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	entryInput, err := c.buildCreateInput(userID, req.Entry)
	if err != nil {
		respondInvalidDate(ctx)
		return
	}

	transactions := make([]entry.InlineTransactionInput, 0, len(req.Transactions))
	for _, txn := range req.Transactions {
		inline := entry.InlineTransactionInput{
			Type:          entity.TransactionType(txn.Type),
			Category:      txn.Category,
			Amount:        txn.Amount,
			Description:   txn.Description,
			PaymentMethod: txn.PaymentMethod,
		}
		if txn.Date != nil {
			date, err := time.Parse(dateLayout, *txn.Date)
			if err != nil {
				respondInvalidDate(ctx)
				return
			}
			inline.Date = date
		}
		transactions = append(transactions, inline)
	}

	output, err := c.createWithTxnsUseCase.Execute(ctx.Request.Context(), entry.CreateEntryWithTransactionsInput{
		Entry:        entryInput,
		Transactions: transactions,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toEntryWithTransactionsResponse(output.Entry, output.Transactions))
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	input := entry.ListEntriesInput{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	}

	if raw := ctx.Query("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.StartDate = &date
	}
	if raw := ctx.Query("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.EndDate = &date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	entries := make([]dto.EntryResponse, 0, len(output.Entries))
	for _, item := range output.Entries {
		entries = append(entries, dto.ToEntryResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.EntryListResponse{
		Entries:  entries,
		Total:    output.Total,
		Page:     output.Page,
		PageSize: output.PageSize,
	})
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	userID, entryID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), entry.GetEntryInput{EntryID: entryID, UserID: userID})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// GetWithTransactions handles GET /entries/:id/full requests.
func (c *EntryController) GetWithTransactions(ctx *gin.Context) {
	userID, entryID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	output, err := c.getWithTransactionsUseCase.Execute(ctx.Request.Context(), entry.GetEntryWithTransactionsInput{
		EntryID: entryID,
		UserID:  userID,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEntryWithTransactionsResponse(output.Entry, output.Transactions))
}

// Update handles PUT /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, entryID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := entry.UpdateEntryInput{
		EntryID: entryID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Photos:  req.Photos,
		Tags:    req.Tags,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, entryID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{EntryID: entryID, UserID: userID}); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Entry deleted"})
}

// pathIDs extracts the authenticated user and the :id path parameter.
func (c *EntryController) pathIDs(ctx *gin.Context) (userID, entryID uuid.UUID, ok bool) {
	userID, authed := middleware.GetUserIDFromContext(ctx)
	if !authed {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "entry not found",
			Code:  string(domainerror.ErrCodeEntryNotFound),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, entryID, true
}

func (c *EntryController) buildCreateInput(userID uuid.UUID, req dto.CreateEntryRequest) (entry.CreateEntryInput, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return entry.CreateEntryInput{}, err
	}
	return entry.CreateEntryInput{
		UserID:  userID,
		Date:    date,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Photos:  req.Photos,
		Tags:    req.Tags,
	}, nil
}

// handleEntryError maps entry and transaction errors to HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		status := http.StatusBadRequest
		if entryErr.Code == domainerror.ErrCodeEntryNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
