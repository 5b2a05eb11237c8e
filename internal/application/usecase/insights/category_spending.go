// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// GetCategorySpendingUseCase merges per-category expense totals with
// per-description transaction totals into one spending map.
//
// A transaction description colliding with an expense category is
// intentional: the two totals add up under the shared key.
type GetCategorySpendingUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	transactionRepo adapter.TransactionRepository
	insightRepo     adapter.InsightRepository
}

// NewGetCategorySpendingUseCase creates a new GetCategorySpendingUseCase instance.
func NewGetCategorySpendingUseCase(
	expenseRepo adapter.ExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	insightRepo adapter.InsightRepository,
) *GetCategorySpendingUseCase {
	return &GetCategorySpendingUseCase{
		expenseRepo:     expenseRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
	}
}

// Execute computes, stores, and returns one spending record per merged
// category, ordered by category name.
func (uc *GetCategorySpendingUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySpending, error) {
	expenseTotals, err := uc.expenseRepo.SumByUserPerCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses per category: %w", err)
	}

	transactionTotals, err := uc.transactionRepo.SumByUserPerDescription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions per description: %w", err)
	}

	combined := make(map[string]decimal.Decimal, len(expenseTotals)+len(transactionTotals))
	for category, total := range expenseTotals {
		combined[category] = combined[category].Add(total)
	}
	for description, total := range transactionTotals {
		combined[description] = combined[description].Add(total)
	}

	spending := make([]*entity.CategorySpending, 0, len(combined))
	for category, total := range combined {
		spending = append(spending, entity.NewCategorySpending(userID, category, total))
	}
	sort.Slice(spending, func(i, j int) bool {
		return spending[i].Category < spending[j].Category
	})

	if err := uc.insightRepo.StoreCategorySpending(ctx, spending); err != nil {
		return nil, fmt.Errorf("failed to store category spending: %w", err)
	}

	return spending, nil
}
