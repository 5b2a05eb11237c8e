package income

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

// UpdateIncomeInput represents the input for income updates.
type UpdateIncomeInput struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	IncomeType string
	Amount     decimal.Decimal
	Date       time.Time
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update. Incomes belonging to another
// user are reported as not found rather than forbidden.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*entity.Income, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	income, err := uc.incomeRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	if income.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	income.IncomeType = input.IncomeType
	income.Amount = input.Amount
	income.Date = input.Date
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return income, nil
}
