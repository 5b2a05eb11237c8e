// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/personal-finance/backend/internal/integration/entrypoint/controller"
	"github.com/personal-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	expenseController     *controller.ExpenseController
	incomeController      *controller.IncomeController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	insightController     *controller.InsightController
	insightRateLimiter    *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	insightController *controller.InsightController,
	insightRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		expenseController:     expenseController,
		incomeController:      incomeController,
		transactionController: transactionController,
		budgetController:      budgetController,
		insightController:     insightController,
		insightRateLimiter:    insightRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PUT("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PUT("/:id", r.budgetController.Update)
				budgets.POST("/:id/close", r.budgetController.Close)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Insight routes recompute and persist derived records on
		// every request, so they carry the rate limiter in addition
		// to authentication.
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			if r.insightRateLimiter != nil {
				insights.Use(r.insightRateLimiter.Middleware())
			}
			{
				insights.GET("/expense-summary", r.insightController.GetExpenseSummary)
				insights.GET("/income-summary", r.insightController.GetIncomeSummary)
				insights.GET("/budget-analysis", r.insightController.GetBudgetAnalysis)
				insights.GET("/savings-goals", r.insightController.GetSavingsGoals)
				insights.GET("/expense-trends", r.insightController.GetExpenseTrends)
				insights.GET("/income-trends", r.insightController.GetIncomeTrends)
				insights.GET("/budget-trends", r.insightController.GetBudgetTrends)
				insights.GET("/category-spending", r.insightController.GetCategorySpending)
				insights.GET("/income-sources", r.insightController.GetIncomeSources)
				insights.GET("/financial-health", r.insightController.GetFinancialHealth)
			}
		}
	}
}
