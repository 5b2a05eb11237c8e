package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// ListBudgetsUseCase handles listing a user's budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns all budgets belonging to the user, open and closed.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}
