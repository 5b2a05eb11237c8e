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

// GetSavingsGoalsUseCase derives a savings goal from total income and
// measures achievement against it.
//
// The achieved amount is the sum of all transactions, i.e. the spending
// stream stands in as a proxy for savings. Downstream consumers depend
// on this behavior; changing the proxy is a breaking change.
type GetSavingsGoalsUseCase struct {
	incomeRepo      adapter.IncomeRepository
	transactionRepo adapter.TransactionRepository
	insightRepo     adapter.InsightRepository
	thresholds      Thresholds
}

// NewGetSavingsGoalsUseCase creates a new GetSavingsGoalsUseCase instance.
func NewGetSavingsGoalsUseCase(
	incomeRepo adapter.IncomeRepository,
	transactionRepo adapter.TransactionRepository,
	insightRepo adapter.InsightRepository,
	thresholds Thresholds,
) *GetSavingsGoalsUseCase {
	return &GetSavingsGoalsUseCase{
		incomeRepo:      incomeRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
		thresholds:      thresholds,
	}
}

// Execute computes, stores, and returns the savings goals for a user.
// Meeting the goal exactly counts as on track.
func (uc *GetSavingsGoalsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.SavingsGoals, error) {
	totalIncome, err := uc.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	achieved, err := uc.transactionRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	goal := uc.thresholds.SavingsGoal(totalIncome)
	goals := entity.NewSavingsGoals(userID, goal, achieved, uc.thresholds.ClassifySavings(achieved, goal))

	if err := uc.insightRepo.StoreSavingsGoals(ctx, goals); err != nil {
		return nil, fmt.Errorf("failed to store savings goals: %w", err)
	}

	return goals, nil
}
