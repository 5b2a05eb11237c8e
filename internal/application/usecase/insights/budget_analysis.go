// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// GetBudgetAnalysisUseCase compares everything a user has budgeted
// against everything they have spent, over the full unbounded ledger.
type GetBudgetAnalysisUseCase struct {
	budgetRepo      adapter.BudgetRepository
	expenseRepo     adapter.ExpenseRepository
	transactionRepo adapter.TransactionRepository
	insightRepo     adapter.InsightRepository
}

// NewGetBudgetAnalysisUseCase creates a new GetBudgetAnalysisUseCase instance.
func NewGetBudgetAnalysisUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	insightRepo adapter.InsightRepository,
) *GetBudgetAnalysisUseCase {
	return &GetBudgetAnalysisUseCase{
		budgetRepo:      budgetRepo,
		expenseRepo:     expenseRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
	}
}

// Execute computes, stores, and returns the budget analysis for a user.
// Variance is budgeted minus spent; a negative variance (over budget)
// is a valid result.
func (uc *GetBudgetAnalysisUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.BudgetAnalysis, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalBudgeted := decimal.Zero
	for _, budget := range budgets {
		totalBudgeted = totalBudgeted.Add(budget.Amount)
	}

	totalSpent := decimal.Zero
	for _, expense := range expenses {
		totalSpent = totalSpent.Add(expense.Amount)
	}
	for _, transaction := range transactions {
		totalSpent = totalSpent.Add(transaction.Amount)
	}

	analysis := entity.NewBudgetAnalysis(userID, totalBudgeted, totalSpent)

	if err := uc.insightRepo.StoreBudgetAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store budget analysis: %w", err)
	}

	return analysis, nil
}
