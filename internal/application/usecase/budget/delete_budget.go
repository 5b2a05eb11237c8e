package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes the budget after verifying ownership.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id, userID uuid.UUID) error {
	budget, err := uc.budgetRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != userID {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
