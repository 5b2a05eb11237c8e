package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/application/adapter"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute deletes the income after verifying ownership.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, id, userID uuid.UUID) error {
	income, err := uc.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find income: %w", err)
	}

	if income.UserID != userID {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	return nil
}
