package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// CloseBudgetInput represents the input for closing a budget.
type CloseBudgetInput struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	EndDate time.Time
}

// CloseBudgetUseCase handles the open-to-closed budget transition.
type CloseBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCloseBudgetUseCase creates a new CloseBudgetUseCase instance.
func NewCloseBudgetUseCase(budgetRepo adapter.BudgetRepository) *CloseBudgetUseCase {
	return &CloseBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute closes the budget. Closing an already-closed budget fails.
func (uc *CloseBudgetUseCase) Execute(ctx context.Context, input CloseBudgetInput) (*entity.Budget, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if budget.Closed() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetClosed,
			"budget is already closed",
			domainerror.ErrBudgetClosed,
		)
	}

	if input.EndDate.Before(budget.StartDate) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget end date must not precede its start date",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budget.Close(input.EndDate)

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to close budget: %w", err)
	}

	return budget, nil
}
