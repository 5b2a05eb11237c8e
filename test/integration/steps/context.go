// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/personal-finance/backend/config"
	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/application/usecase/budget"
	"github.com/personal-finance/backend/internal/application/usecase/expense"
	"github.com/personal-finance/backend/internal/application/usecase/income"
	"github.com/personal-finance/backend/internal/application/usecase/insights"
	"github.com/personal-finance/backend/internal/application/usecase/transaction"
	"github.com/personal-finance/backend/internal/infra/server/router"
	"github.com/personal-finance/backend/internal/integration/adapters"
	"github.com/personal-finance/backend/internal/integration/entrypoint/controller"
	"github.com/personal-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/personal-finance/backend/internal/integration/persistence"
	"github.com/personal-finance/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	db     *gorm.DB
	userID uuid.UUID
	token  string

	expenseRepo     adapter.ExpenseRepository
	incomeRepo      adapter.IncomeRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository

	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions. Each scenario gets
// a fresh in-memory database and a fully wired server.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerLedgerSteps(ctx)
	registerHTTPSteps(ctx)
}

// newTestContext wires the whole application against an in-memory
// SQLite database and starts a test server.
func newTestContext() (*TestContext, error) {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
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
		return nil, err
	}

	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	insightRepo := persistence.NewInsightRepository(db)

	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	thresholds := insights.NewThresholds(&cfg.Insights)

	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)
	incomeController := controller.NewIncomeController(
		income.NewCreateIncomeUseCase(incomeRepo),
		income.NewListIncomesUseCase(incomeRepo),
		income.NewUpdateIncomeUseCase(incomeRepo),
		income.NewDeleteIncomeUseCase(incomeRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewCreateBudgetUseCase(budgetRepo),
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewUpdateBudgetUseCase(budgetRepo),
		budget.NewCloseBudgetUseCase(budgetRepo),
		budget.NewDeleteBudgetUseCase(budgetRepo),
	)
	insightController := controller.NewInsightController(
		insights.NewGetExpenseSummaryUseCase(expenseRepo, transactionRepo, insightRepo, thresholds),
		insights.NewGetIncomeSummaryUseCase(incomeRepo, insightRepo, thresholds),
		insights.NewGetBudgetAnalysisUseCase(budgetRepo, expenseRepo, transactionRepo, insightRepo),
		insights.NewGetSavingsGoalsUseCase(incomeRepo, transactionRepo, insightRepo, thresholds),
		insights.NewGetExpenseTrendsUseCase(expenseRepo, insightRepo),
		insights.NewGetIncomeTrendsUseCase(incomeRepo, insightRepo),
		insights.NewGetBudgetTrendsUseCase(budgetRepo, insightRepo),
		insights.NewGetCategorySpendingUseCase(expenseRepo, transactionRepo, insightRepo),
		insights.NewGetIncomeSourcesUseCase(incomeRepo),
		insights.NewGetFinancialHealthUseCase(insightRepo, thresholds),
	)

	healthController := controller.NewHealthController(func() bool { return true })
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		transactionController,
		budgetController,
		insightController,
		middleware.NewRateLimiter(),
		authMiddleware,
	)
	engine := r.Setup("test")

	tc := &TestContext{
		server:          httptest.NewServer(engine),
		db:              db,
		expenseRepo:     expenseRepo,
		incomeRepo:      incomeRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		cfg:             cfg,
	}
	return tc, nil
}

// issueToken signs an access token for the given user with the
// configured secret.
func (tc *TestContext) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tc.cfg.JWT.Secret))
}
