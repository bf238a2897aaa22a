package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daily-ledger/backend/internal/application/usecase/stats"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/middleware"
)

// defaultDailyRangeDays is the window applied when no date range is given.
const defaultDailyRangeDays = 30

// StatsController handles statistics endpoints.
type StatsController struct {
	dailyUseCase    *stats.GetDailyStatsUseCase
	monthlyUseCase  *stats.GetMonthlyStatsUseCase
	categoryUseCase *stats.GetCategoryStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	dailyUseCase *stats.GetDailyStatsUseCase,
	monthlyUseCase *stats.GetMonthlyStatsUseCase,
	categoryUseCase *stats.GetCategoryStatsUseCase,
) *StatsController {
	return &StatsController{
		dailyUseCase:    dailyUseCase,
		monthlyUseCase:  monthlyUseCase,
		categoryUseCase: categoryUseCase,
	}
}

// Daily handles GET /stats/daily requests. A missing end_date defaults to
// today and a missing start_date to 30 days before the resolved end_date,
// so an end_date on its own selects the 30 days leading up to it.
func (c *StatsController) Daily(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := ctx.Query("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.respondStatsDateError(ctx)
			return
		}
		endDate = date
	}

	startDate := endDate.AddDate(0, 0, -defaultDailyRangeDays)
	if raw := ctx.Query("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.respondStatsDateError(ctx)
			return
		}
		startDate = date
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), stats.GetDailyStatsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyStatsResponse(output, startDate.Format(dateLayout), endDate.Format(dateLayout)))
}

// Monthly handles GET /stats/monthly requests. Year and month are
// independently optional equality filters.
func (c *StatsController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := stats.GetMonthlyStatsInput{UserID: userID}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid year",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = &year
	}
	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid month",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.Month = &month
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlyStatsResponse{Stats: output.Stats})
}

// Category handles GET /stats/category requests. The type defaults to
// expense; the date range is optional.
func (c *StatsController) Category(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	statsType := entity.TransactionType(ctx.DefaultQuery("type", string(entity.TransactionTypeExpense)))

	input := stats.GetCategoryStatsInput{
		UserID: userID,
		Type:   statsType,
	}

	if raw := ctx.Query("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.respondStatsDateError(ctx)
			return
		}
		input.StartDate = &date
	}
	if raw := ctx.Query("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.respondStatsDateError(ctx)
			return
		}
		input.EndDate = &date
	}

	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryStatsResponse{
		Stats: output.Stats,
		Type:  string(statsType),
	})
}

func (c *StatsController) respondStatsDateError(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "invalid date, expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}

// handleStatsError maps stats errors to HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		status := http.StatusBadRequest
		if statsErr.Code == domainerror.ErrCodeStatsInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
