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

// GetIncomeTrendsUseCase buckets a user's income into calendar months.
// Bucketing is dense: every month in the range produces a record, zero
// amount included, and all records share one direction status.
type GetIncomeTrendsUseCase struct {
	incomeRepo  adapter.IncomeRepository
	insightRepo adapter.InsightRepository
}

// NewGetIncomeTrendsUseCase creates a new GetIncomeTrendsUseCase instance.
func NewGetIncomeTrendsUseCase(
	incomeRepo adapter.IncomeRepository,
	insightRepo adapter.InsightRepository,
) *GetIncomeTrendsUseCase {
	return &GetIncomeTrendsUseCase{
		incomeRepo:  incomeRepo,
		insightRepo: insightRepo,
	}
}

// Execute computes, stores, and returns one income trend per calendar
// month in the inclusive date range.
func (uc *GetIncomeTrendsUseCase) Execute(ctx context.Context, input TrendInput) ([]*entity.IncomeTrend, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	incomes, err := uc.incomeRepo.FindByUserAndDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list income in range: %w", err)
	}

	status := trendStatus(incomes, input)

	months := MonthsBetween(input.StartDate, input.EndDate)
	trends := make([]*entity.IncomeTrend, 0, len(months))
	for _, month := range months {
		monthly := decimal.Zero
		for _, income := range incomes {
			if SameMonth(income.Date, month) {
				monthly = monthly.Add(income.Amount)
			}
		}
		trends = append(trends, entity.NewIncomeTrend(input.UserID, month, monthly, status))
	}

	if err := uc.insightRepo.StoreIncomeTrends(ctx, trends); err != nil {
		return nil, fmt.Errorf("failed to store income trends: %w", err)
	}

	return trends, nil
}

// trendStatus splits the fetched income into a before-start sum and an
// on-or-before-end sum and calls the direction "good" only when the
// latter exceeds the former.
func trendStatus(incomes []*entity.Income, input TrendInput) entity.InsightStatus {
	atStart := decimal.Zero
	atEnd := decimal.Zero

	for _, income := range incomes {
		if income.Date.Before(input.StartDate) {
			atStart = atStart.Add(income.Amount)
		} else if !income.Date.After(input.EndDate) {
			atEnd = atEnd.Add(income.Amount)
		}
	}

	if atEnd.GreaterThan(atStart) {
		return entity.StatusGood
	}
	return entity.StatusBad
}
