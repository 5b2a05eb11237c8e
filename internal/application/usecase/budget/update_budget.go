package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget updates.
type UpdateBudgetInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	StartDate   time.Time
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update. Closed budgets are immutable.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

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
			"cannot update a closed budget",
			domainerror.ErrBudgetClosed,
		)
	}

	budget.Amount = input.Amount
	budget.Description = input.Description
	budget.StartDate = input.StartDate
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}
