package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/usecase/insights"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
	"github.com/personal-finance/backend/internal/integration/entrypoint/dto"
	"github.com/personal-finance/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles the insight report endpoints.
type InsightController struct {
	expenseSummaryUseCase   *insights.GetExpenseSummaryUseCase
	incomeSummaryUseCase    *insights.GetIncomeSummaryUseCase
	budgetAnalysisUseCase   *insights.GetBudgetAnalysisUseCase
	savingsGoalsUseCase     *insights.GetSavingsGoalsUseCase
	expenseTrendsUseCase    *insights.GetExpenseTrendsUseCase
	incomeTrendsUseCase     *insights.GetIncomeTrendsUseCase
	budgetTrendsUseCase     *insights.GetBudgetTrendsUseCase
	categorySpendingUseCase *insights.GetCategorySpendingUseCase
	incomeSourcesUseCase    *insights.GetIncomeSourcesUseCase
	financialHealthUseCase  *insights.GetFinancialHealthUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	expenseSummaryUseCase *insights.GetExpenseSummaryUseCase,
	incomeSummaryUseCase *insights.GetIncomeSummaryUseCase,
	budgetAnalysisUseCase *insights.GetBudgetAnalysisUseCase,
	savingsGoalsUseCase *insights.GetSavingsGoalsUseCase,
	expenseTrendsUseCase *insights.GetExpenseTrendsUseCase,
	incomeTrendsUseCase *insights.GetIncomeTrendsUseCase,
	budgetTrendsUseCase *insights.GetBudgetTrendsUseCase,
	categorySpendingUseCase *insights.GetCategorySpendingUseCase,
	incomeSourcesUseCase *insights.GetIncomeSourcesUseCase,
	financialHealthUseCase *insights.GetFinancialHealthUseCase,
) *InsightController {
	return &InsightController{
		expenseSummaryUseCase:   expenseSummaryUseCase,
		incomeSummaryUseCase:    incomeSummaryUseCase,
		budgetAnalysisUseCase:   budgetAnalysisUseCase,
		savingsGoalsUseCase:     savingsGoalsUseCase,
		expenseTrendsUseCase:    expenseTrendsUseCase,
		incomeTrendsUseCase:     incomeTrendsUseCase,
		budgetTrendsUseCase:     budgetTrendsUseCase,
		categorySpendingUseCase: categorySpendingUseCase,
		incomeSourcesUseCase:    incomeSourcesUseCase,
		financialHealthUseCase:  financialHealthUseCase,
	}
}

// GetExpenseSummary handles GET /insights/expense-summary requests.
func (c *InsightController) GetExpenseSummary(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	summary, err := c.expenseSummaryUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}

// GetIncomeSummary handles GET /insights/income-summary requests.
func (c *InsightController) GetIncomeSummary(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	summary, err := c.incomeSummaryUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSummaryResponse(summary))
}

// GetBudgetAnalysis handles GET /insights/budget-analysis requests.
func (c *InsightController) GetBudgetAnalysis(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	analysis, err := c.budgetAnalysisUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAnalysisResponse(analysis))
}

// GetSavingsGoals handles GET /insights/savings-goals requests.
func (c *InsightController) GetSavingsGoals(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	goals, err := c.savingsGoalsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalsResponse(goals))
}

// GetExpenseTrends handles GET /insights/expense-trends requests.
func (c *InsightController) GetExpenseTrends(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input, ok := trendInput(ctx, userID)
	if !ok {
		return
	}

	trends, err := c.expenseTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseTrendListResponse(trends))
}

// GetIncomeTrends handles GET /insights/income-trends requests.
func (c *InsightController) GetIncomeTrends(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input, ok := trendInput(ctx, userID)
	if !ok {
		return
	}

	trends, err := c.incomeTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeTrendListResponse(trends))
}

// GetBudgetTrends handles GET /insights/budget-trends requests.
func (c *InsightController) GetBudgetTrends(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input, ok := trendInput(ctx, userID)
	if !ok {
		return
	}

	trends, err := c.budgetTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetTrendListResponse(trends))
}

// GetCategorySpending handles GET /insights/category-spending requests.
func (c *InsightController) GetCategorySpending(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	spending, err := c.categorySpendingUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySpendingListResponse(spending))
}

// GetIncomeSources handles GET /insights/income-sources requests.
func (c *InsightController) GetIncomeSources(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	sources, err := c.incomeSourcesUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSourceListResponse(sources))
}

// GetFinancialHealth handles GET /insights/financial-health requests.
func (c *InsightController) GetFinancialHealth(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	health, err := c.financialHealthUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialHealthResponse(health))
}

// authenticatedUser extracts the authenticated user or writes a 401.
func authenticatedUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// trendInput parses and validates the start_date/end_date query
// parameters shared by the trend endpoints.
func trendInput(ctx *gin.Context, userID uuid.UUID) (insights.TrendInput, bool) {
	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return insights.TrendInput{}, false
	}

	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return insights.TrendInput{}, false
	}

	startDate, err := time.Parse(dto.DateFormat, startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return insights.TrendInput{}, false
	}

	endDate, err := time.Parse(dto.DateFormat, endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return insights.TrendInput{}, false
	}

	return insights.TrendInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}

// respondInsightError maps domain errors to HTTP responses.
func respondInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute insight",
		Code:  string(domainerror.ErrCodeInsightInternalError),
	})
}
