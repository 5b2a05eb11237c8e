package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// ListIncomesUseCase handles listing a user's incomes.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns all incomes belonging to the user.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	incomes, err := uc.incomeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return incomes, nil
}
