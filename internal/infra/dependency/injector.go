// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/daily-ledger/backend/config"
	"github.com/daily-ledger/backend/internal/application/usecase/auth"
	"github.com/daily-ledger/backend/internal/application/usecase/entry"
	"github.com/daily-ledger/backend/internal/application/usecase/stats"
	"github.com/daily-ledger/backend/internal/application/usecase/transaction"
	"github.com/daily-ledger/backend/internal/infra/server/router"
	"github.com/daily-ledger/backend/internal/integration/adapters"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/daily-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/daily-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	statsRepo := persistence.NewStatsRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Entry use cases
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)
	createEntryWithTransactionsUseCase := entry.NewCreateEntryWithTransactionsUseCase(entryRepo)
	getEntryWithTransactionsUseCase := entry.NewGetEntryWithTransactionsUseCase(entryRepo, transactionRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, entryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Stats use cases
	dailyStatsUseCase := stats.NewGetDailyStatsUseCase(statsRepo)
	monthlyStatsUseCase := stats.NewGetMonthlyStatsUseCase(statsRepo)
	categoryStatsUseCase := stats.NewGetCategoryStatsUseCase(statsRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		getCurrentUserUseCase,
	)

	entryController := controller.NewEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		createEntryWithTransactionsUseCase,
		getEntryWithTransactionsUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	statsController := controller.NewStatsController(
		dailyStatsUseCase,
		monthlyStatsUseCase,
		categoryStatsUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.Window,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		entryController,
		transactionController,
		statsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
