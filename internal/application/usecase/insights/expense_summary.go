// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// GetExpenseSummaryUseCase computes the combined total of a user's
// expenses and transactions, classifies it, and appends the result to
// the derived store.
type GetExpenseSummaryUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	transactionRepo adapter.TransactionRepository
	insightRepo     adapter.InsightRepository
	thresholds      Thresholds
}

// NewGetExpenseSummaryUseCase creates a new GetExpenseSummaryUseCase instance.
func NewGetExpenseSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	insightRepo adapter.InsightRepository,
	thresholds Thresholds,
) *GetExpenseSummaryUseCase {
	return &GetExpenseSummaryUseCase{
		expenseRepo:     expenseRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
		thresholds:      thresholds,
	}
}

// Execute computes, stores, and returns the expense summary for a user.
// Transactions count as expense-like entries; a user with an empty
// ledger gets a zero-total summary.
func (uc *GetExpenseSummaryUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error) {
	expenseTotal, err := uc.expenseRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	transactionTotal, err := uc.transactionRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	total := expenseTotal.Add(transactionTotal)
	summary := entity.NewExpenseSummary(userID, total, uc.thresholds.ClassifyExpenses(total))

	if err := uc.insightRepo.StoreExpenseSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to store expense summary: %w", err)
	}

	return summary, nil
}
