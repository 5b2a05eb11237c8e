// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// GetExpenseTrendsUseCase buckets a user's expenses into calendar
// months. Bucketing is sparse: only months with at least one expense
// produce a record.
type GetExpenseTrendsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	insightRepo adapter.InsightRepository
}

// NewGetExpenseTrendsUseCase creates a new GetExpenseTrendsUseCase instance.
func NewGetExpenseTrendsUseCase(
	expenseRepo adapter.ExpenseRepository,
	insightRepo adapter.InsightRepository,
) *GetExpenseTrendsUseCase {
	return &GetExpenseTrendsUseCase{
		expenseRepo: expenseRepo,
		insightRepo: insightRepo,
	}
}

// Execute computes, stores, and returns the monthly expense trends for
// the inclusive date range, ordered by month.
func (uc *GetExpenseTrendsUseCase) Execute(ctx context.Context, input TrendInput) ([]*entity.ExpenseTrend, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in range: %w", err)
	}

	buckets := make(map[time.Time]decimal.Decimal)
	for _, expense := range expenses {
		month := MonthStart(expense.Date)
		buckets[month] = buckets[month].Add(expense.Amount)
	}

	trends := make([]*entity.ExpenseTrend, 0, len(buckets))
	for month, amount := range buckets {
		trends = append(trends, entity.NewExpenseTrend(input.UserID, month, amount))
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month.Before(trends[j].Month)
	})

	if err := uc.insightRepo.StoreExpenseTrends(ctx, trends); err != nil {
		return nil, fmt.Errorf("failed to store expense trends: %w", err)
	}

	return trends, nil
}
