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

// GetIncomeSourcesUseCase aggregates income per income type. Unlike the
// other builders it is read-only: nothing is written to the derived
// store.
type GetIncomeSourcesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeSourcesUseCase creates a new GetIncomeSourcesUseCase instance.
func NewGetIncomeSourcesUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeSourcesUseCase {
	return &GetIncomeSourcesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns one aggregate per distinct income type for a user.
func (uc *GetIncomeSourcesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	incomeTypes, err := uc.incomeRepo.DistinctIncomeTypes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income types: %w", err)
	}

	sources := make([]*entity.IncomeSource, 0, len(incomeTypes))
	for _, incomeType := range incomeTypes {
		total, err := uc.incomeRepo.SumByUserAndType(ctx, userID, incomeType)
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for type %q: %w", incomeType, err)
		}

		sources = append(sources, &entity.IncomeSource{
			UserID:     userID,
			IncomeType: incomeType,
			Amount:     total,
		})
	}

	return sources, nil
}
