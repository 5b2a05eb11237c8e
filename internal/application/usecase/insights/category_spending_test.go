// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

func TestGetCategorySpending(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("expense category and transaction description merge additively", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(50), "Food", day, ""),
			entity.NewExpense(userID, decimal.NewFromInt(20), "Transport", day, ""),
		}}
		transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, decimal.NewFromInt(30), "Food"),
		}}
		insightRepo := &fakeInsightRepo{}

		uc := NewGetCategorySpendingUseCase(expenseRepo, transactionRepo, insightRepo)

		spending, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(spending) != 2 {
			t.Fatalf("expected 2 merged categories, got %d", len(spending))
		}

		// Sorted by category name: Food, Transport.
		if spending[0].Category != "Food" || !spending[0].TotalSpending.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected Food=80, got %s=%s", spending[0].Category, spending[0].TotalSpending)
		}
		if spending[1].Category != "Transport" || !spending[1].TotalSpending.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected Transport=20, got %s=%s", spending[1].Category, spending[1].TotalSpending)
		}

		if len(insightRepo.categorySpending) != 2 {
			t.Fatalf("expected 2 stored records, got %d", len(insightRepo.categorySpending))
		}
	})

	t.Run("disjoint keys pass through unmerged", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(10), "Rent", day, ""),
		}}
		transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, decimal.NewFromInt(5), "Coffee"),
		}}

		uc := NewGetCategorySpendingUseCase(expenseRepo, transactionRepo, &fakeInsightRepo{})

		spending, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(spending) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(spending))
		}
	})

	t.Run("empty ledger yields empty collection", func(t *testing.T) {
		insightRepo := &fakeInsightRepo{}
		uc := NewGetCategorySpendingUseCase(&fakeExpenseRepo{}, &fakeTransactionRepo{}, insightRepo)

		spending, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(spending) != 0 {
			t.Fatalf("expected empty collection, got %d", len(spending))
		}
	})
}
