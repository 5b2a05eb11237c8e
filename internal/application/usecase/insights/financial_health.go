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

// GetFinancialHealthUseCase classifies overall financial health from
// the most recently stored income and expense summaries instead of
// recomputing from the raw ledger. If the summaries have not been
// refreshed since the last ledger change, health reflects the older
// figures; that staleness is part of the contract. A user with no
// stored summaries is treated as zero income and zero expenses.
type GetFinancialHealthUseCase struct {
	insightRepo adapter.InsightRepository
	thresholds  Thresholds
}

// NewGetFinancialHealthUseCase creates a new GetFinancialHealthUseCase instance.
func NewGetFinancialHealthUseCase(
	insightRepo adapter.InsightRepository,
	thresholds Thresholds,
) *GetFinancialHealthUseCase {
	return &GetFinancialHealthUseCase{
		insightRepo: insightRepo,
		thresholds:  thresholds,
	}
}

// Execute computes, stores, and returns the financial health for a user.
func (uc *GetFinancialHealthUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.FinancialHealth, error) {
	incomeSummary, err := uc.insightRepo.MostRecentIncomeSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest income summary: %w", err)
	}

	expenseSummary, err := uc.insightRepo.MostRecentExpenseSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest expense summary: %w", err)
	}

	totalIncome := decimal.Zero
	if incomeSummary != nil {
		totalIncome = incomeSummary.TotalIncome
	}

	totalExpenses := decimal.Zero
	if expenseSummary != nil {
		totalExpenses = expenseSummary.TotalExpenses
	}

	health := entity.NewFinancialHealth(userID, uc.thresholds.ClassifyHealth(totalIncome, totalExpenses))

	if err := uc.insightRepo.StoreFinancialHealth(ctx, health); err != nil {
		return nil, fmt.Errorf("failed to store financial health: %w", err)
	}

	return health, nil
}
