// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// GetBudgetTrendsUseCase produces a one-point budget direction summary
// for a date range: the most recent budget's amount compared against
// the peak budget amount in the same range. The result carries the
// range start as its month; it is not month-bucketed.
type GetBudgetTrendsUseCase struct {
	budgetRepo  adapter.BudgetRepository
	insightRepo adapter.InsightRepository
}

// NewGetBudgetTrendsUseCase creates a new GetBudgetTrendsUseCase instance.
func NewGetBudgetTrendsUseCase(
	budgetRepo adapter.BudgetRepository,
	insightRepo adapter.InsightRepository,
) *GetBudgetTrendsUseCase {
	return &GetBudgetTrendsUseCase{
		budgetRepo:  budgetRepo,
		insightRepo: insightRepo,
	}
}

// Execute computes, stores, and returns the budget trend for the range
// as a one-element collection. A range containing no closed budget
// returns an empty collection and stores nothing.
func (uc *GetBudgetTrendsUseCase) Execute(ctx context.Context, input TrendInput) ([]*entity.BudgetTrend, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	mostRecent, err := uc.budgetRepo.FindMostRecent(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find most recent budget: %w", err)
	}
	if mostRecent == nil {
		return []*entity.BudgetTrend{}, nil
	}

	budgets, err := uc.budgetRepo.FindByUserAndDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in range: %w", err)
	}

	highest := decimal.Zero
	for _, budget := range budgets {
		if budget.Amount.GreaterThan(highest) {
			highest = budget.Amount
		}
	}

	status := entity.StatusBad
	if mostRecent.Amount.GreaterThanOrEqual(highest) {
		status = entity.StatusGood
	}

	trends := []*entity.BudgetTrend{
		entity.NewBudgetTrend(input.UserID, input.StartDate, mostRecent.Amount, status),
	}

	if err := uc.insightRepo.StoreBudgetTrends(ctx, trends); err != nil {
		return nil, fmt.Errorf("failed to store budget trends: %w", err)
	}

	return trends, nil
}
