// Package main is the entry point for the Personal Finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/personal-finance/backend/config"
	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/application/usecase/budget"
	"github.com/personal-finance/backend/internal/application/usecase/expense"
	"github.com/personal-finance/backend/internal/application/usecase/income"
	"github.com/personal-finance/backend/internal/application/usecase/insights"
	"github.com/personal-finance/backend/internal/application/usecase/transaction"
	"github.com/personal-finance/backend/internal/infra/db"
	"github.com/personal-finance/backend/internal/infra/server/router"
	"github.com/personal-finance/backend/internal/integration/adapters"
	"github.com/personal-finance/backend/internal/integration/cache"
	"github.com/personal-finance/backend/internal/integration/entrypoint/controller"
	"github.com/personal-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/personal-finance/backend/internal/integration/persistence"
	"github.com/personal-finance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Personal Finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.ExpenseSummaryModel{},
		&model.IncomeSummaryModel{},
		&model.BudgetAnalysisModel{},
		&model.SavingsGoalsModel{},
		&model.FinancialHealthModel{},
		&model.ExpenseTrendModel{},
		&model.IncomeTrendModel{},
		&model.BudgetTrendModel{},
		&model.CategorySpendingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Repositories
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	incomeRepo := persistence.NewIncomeRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())

	var insightRepo adapter.InsightRepository = persistence.NewInsightRepository(database.DB())

	// Optional Redis cache for latest summaries
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
		insightRepo = cache.NewLatestSummaryCache(insightRepo, redisClient, cfg.Redis.CacheTTL)
		slog.Info("Latest-summary cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	thresholds := insights.NewThresholds(&cfg.Insights)

	// Ledger use cases
	createExpense := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpenses := expense.NewListExpensesUseCase(expenseRepo)
	updateExpense := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpense := expense.NewDeleteExpenseUseCase(expenseRepo)

	createIncome := income.NewCreateIncomeUseCase(incomeRepo)
	listIncomes := income.NewListIncomesUseCase(incomeRepo)
	updateIncome := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncome := income.NewDeleteIncomeUseCase(incomeRepo)

	createTransaction := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactions := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransaction := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransaction := transaction.NewDeleteTransactionUseCase(transactionRepo)

	createBudget := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgets := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudget := budget.NewUpdateBudgetUseCase(budgetRepo)
	closeBudget := budget.NewCloseBudgetUseCase(budgetRepo)
	deleteBudget := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Insight use cases
	expenseSummary := insights.NewGetExpenseSummaryUseCase(expenseRepo, transactionRepo, insightRepo, thresholds)
	incomeSummary := insights.NewGetIncomeSummaryUseCase(incomeRepo, insightRepo, thresholds)
	budgetAnalysis := insights.NewGetBudgetAnalysisUseCase(budgetRepo, expenseRepo, transactionRepo, insightRepo)
	savingsGoals := insights.NewGetSavingsGoalsUseCase(incomeRepo, transactionRepo, insightRepo, thresholds)
	expenseTrends := insights.NewGetExpenseTrendsUseCase(expenseRepo, insightRepo)
	incomeTrends := insights.NewGetIncomeTrendsUseCase(incomeRepo, insightRepo)
	budgetTrends := insights.NewGetBudgetTrendsUseCase(budgetRepo, insightRepo)
	categorySpending := insights.NewGetCategorySpendingUseCase(expenseRepo, transactionRepo, insightRepo)
	incomeSources := insights.NewGetIncomeSourcesUseCase(incomeRepo)
	financialHealth := insights.NewGetFinancialHealthUseCase(insightRepo, thresholds)

	// Controllers and middleware
	expenseController := controller.NewExpenseController(createExpense, listExpenses, updateExpense, deleteExpense)
	incomeController := controller.NewIncomeController(createIncome, listIncomes, updateIncome, deleteIncome)
	transactionController := controller.NewTransactionController(createTransaction, listTransactions, updateTransaction, deleteTransaction)
	budgetController := controller.NewBudgetController(createBudget, listBudgets, updateBudget, closeBudget, deleteBudget)
	insightController := controller.NewInsightController(
		expenseSummary,
		incomeSummary,
		budgetAnalysis,
		savingsGoals,
		expenseTrends,
		incomeTrends,
		budgetTrends,
		categorySpending,
		incomeSources,
		financialHealth,
	)

	insightRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		transactionController,
		budgetController,
		insightController,
		insightRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
