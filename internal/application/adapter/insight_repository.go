// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// InsightRepository defines the interface for the derived-record store.
// All store operations append: recomputing an insight with unchanged
// ledger data produces a second record with identical content. A future
// upsert-by-(user, type, period) policy can replace this implementation
// without touching the engine.
type InsightRepository interface {
	// StoreExpenseSummary appends an expense summary record.
	StoreExpenseSummary(ctx context.Context, summary *entity.ExpenseSummary) error

	// StoreIncomeSummary appends an income summary record.
	StoreIncomeSummary(ctx context.Context, summary *entity.IncomeSummary) error

	// StoreBudgetAnalysis appends a budget analysis record.
	StoreBudgetAnalysis(ctx context.Context, analysis *entity.BudgetAnalysis) error

	// StoreSavingsGoals appends a savings goals record.
	StoreSavingsGoals(ctx context.Context, goals *entity.SavingsGoals) error

	// StoreFinancialHealth appends a financial health record.
	StoreFinancialHealth(ctx context.Context, health *entity.FinancialHealth) error

	// StoreExpenseTrends appends a batch of expense trend records.
	StoreExpenseTrends(ctx context.Context, trends []*entity.ExpenseTrend) error

	// StoreIncomeTrends appends a batch of income trend records.
	StoreIncomeTrends(ctx context.Context, trends []*entity.IncomeTrend) error

	// StoreBudgetTrends appends a batch of budget trend records.
	StoreBudgetTrends(ctx context.Context, trends []*entity.BudgetTrend) error

	// StoreCategorySpending appends a batch of category spending records.
	StoreCategorySpending(ctx context.Context, spending []*entity.CategorySpending) error

	// MostRecentExpenseSummary retrieves the latest stored expense
	// summary for a user, ordered by creation time then ID. Returns nil
	// when none has been stored.
	MostRecentExpenseSummary(ctx context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error)

	// MostRecentIncomeSummary retrieves the latest stored income
	// summary for a user. Returns nil when none has been stored.
	MostRecentIncomeSummary(ctx context.Context, userID uuid.UUID) (*entity.IncomeSummary, error)
}
