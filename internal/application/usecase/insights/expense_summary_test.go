// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

func TestGetExpenseSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("sums expenses and transactions together", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.RequireFromString("120.50"), "Food", day, "groceries"),
			entity.NewExpense(userID, decimal.RequireFromString("79.50"), "Transport", day, "fuel"),
			entity.NewExpense(otherID, decimal.RequireFromString("999"), "Food", day, "not mine"),
		}}
		transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, decimal.RequireFromString("50"), "coffee"),
		}}
		insightRepo := &fakeInsightRepo{}

		uc := NewGetExpenseSummaryUseCase(expenseRepo, transactionRepo, insightRepo, testThresholds())

		summary, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.TotalExpenses.Equal(decimal.RequireFromString("250")) {
			t.Errorf("expected total 250, got %s", summary.TotalExpenses)
		}
		if summary.Status != entity.StatusGood {
			t.Errorf("expected status good, got %s", summary.Status)
		}
		if summary.UserID != userID {
			t.Errorf("summary carries wrong user: %s", summary.UserID)
		}
		if len(insightRepo.expenseSummaries) != 1 {
			t.Fatalf("expected 1 stored summary, got %d", len(insightRepo.expenseSummaries))
		}
	})

	t.Run("empty ledger yields zero total and good status", func(t *testing.T) {
		insightRepo := &fakeInsightRepo{}
		uc := NewGetExpenseSummaryUseCase(&fakeExpenseRepo{}, &fakeTransactionRepo{}, insightRepo, testThresholds())

		summary, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.TotalExpenses.IsZero() {
			t.Errorf("expected zero total, got %s", summary.TotalExpenses)
		}
		if summary.Status != entity.StatusGood {
			t.Errorf("expected status good, got %s", summary.Status)
		}
	})

	t.Run("total at threshold is bad", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(5000), "Rent", day, ""),
		}}
		uc := NewGetExpenseSummaryUseCase(expenseRepo, &fakeTransactionRepo{}, &fakeInsightRepo{}, testThresholds())

		summary, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Status != entity.StatusBad {
			t.Errorf("expected status bad at threshold, got %s", summary.Status)
		}
	})

	t.Run("recomputation appends a duplicate record", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(40), "Food", day, ""),
		}}
		insightRepo := &fakeInsightRepo{}
		uc := NewGetExpenseSummaryUseCase(expenseRepo, &fakeTransactionRepo{}, insightRepo, testThresholds())

		first, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(insightRepo.expenseSummaries) != 2 {
			t.Fatalf("expected 2 stored summaries, got %d", len(insightRepo.expenseSummaries))
		}
		if !first.TotalExpenses.Equal(second.TotalExpenses) || first.Status != second.Status {
			t.Error("expected both computations to carry identical content")
		}
		if first.ID == second.ID {
			t.Error("expected distinct derived records")
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		uc := NewGetExpenseSummaryUseCase(&fakeExpenseRepo{}, &fakeTransactionRepo{}, &fakeInsightRepo{err: storeErr}, testThresholds())

		if _, err := uc.Execute(ctx, userID); !errors.Is(err, storeErr) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
	})
}
