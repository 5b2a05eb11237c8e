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

// GetIncomeSummaryUseCase computes the total income of a user,
// classifies it, and appends the result to the derived store.
type GetIncomeSummaryUseCase struct {
	incomeRepo  adapter.IncomeRepository
	insightRepo adapter.InsightRepository
	thresholds  Thresholds
}

// NewGetIncomeSummaryUseCase creates a new GetIncomeSummaryUseCase instance.
func NewGetIncomeSummaryUseCase(
	incomeRepo adapter.IncomeRepository,
	insightRepo adapter.InsightRepository,
	thresholds Thresholds,
) *GetIncomeSummaryUseCase {
	return &GetIncomeSummaryUseCase{
		incomeRepo:  incomeRepo,
		insightRepo: insightRepo,
		thresholds:  thresholds,
	}
}

// Execute computes, stores, and returns the income summary for a user.
func (uc *GetIncomeSummaryUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.IncomeSummary, error) {
	total, err := uc.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	summary := entity.NewIncomeSummary(userID, total, uc.thresholds.ClassifyIncome(total))

	if err := uc.insightRepo.StoreIncomeSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to store income summary: %w", err)
	}

	return summary, nil
}
