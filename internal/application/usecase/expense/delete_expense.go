package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense after verifying ownership.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id, userID uuid.UUID) error {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != userID {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
