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
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

func TestGetExpenseTrends(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := TrendInput{
		UserID:    userID,
		StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("bucketing is sparse, empty months produce nothing", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(100), "Food",
				time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), ""),
			entity.NewExpense(userID, decimal.NewFromInt(40), "Food",
				time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), ""),
			entity.NewExpense(userID, decimal.NewFromInt(75), "Transport",
				time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), ""),
		}}
		insightRepo := &fakeInsightRepo{}

		uc := NewGetExpenseTrendsUseCase(expenseRepo, insightRepo)

		trends, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trends) != 2 {
			t.Fatalf("expected 2 trend records (no February), got %d", len(trends))
		}

		january := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !trends[0].Month.Equal(january) {
			t.Errorf("expected first bucket %v, got %v", january, trends[0].Month)
		}
		if !trends[0].Amount.Equal(decimal.NewFromInt(140)) {
			t.Errorf("expected January total 140, got %s", trends[0].Amount)
		}

		march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !trends[1].Month.Equal(march) {
			t.Errorf("expected second bucket %v, got %v", march, trends[1].Month)
		}
		if !trends[1].Amount.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected March total 75, got %s", trends[1].Amount)
		}

		if len(insightRepo.expenseTrends) != 2 {
			t.Fatalf("expected 2 stored trends, got %d", len(insightRepo.expenseTrends))
		}
	})

	t.Run("expenses outside the range are ignored", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(500), "Food",
				time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), ""),
		}}
		uc := NewGetExpenseTrendsUseCase(expenseRepo, &fakeInsightRepo{})

		trends, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trends) != 0 {
			t.Fatalf("expected no trends, got %d", len(trends))
		}
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		uc := NewGetExpenseTrendsUseCase(&fakeExpenseRepo{}, &fakeInsightRepo{})

		_, err := uc.Execute(ctx, TrendInput{
			UserID:    userID,
			StartDate: input.EndDate,
			EndDate:   input.StartDate,
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("missing start date is rejected", func(t *testing.T) {
		uc := NewGetExpenseTrendsUseCase(&fakeExpenseRepo{}, &fakeInsightRepo{})

		_, err := uc.Execute(ctx, TrendInput{UserID: userID, EndDate: input.EndDate})
		if !errors.Is(err, domainerror.ErrMissingStartDate) {
			t.Errorf("expected ErrMissingStartDate, got %v", err)
		}
	})
}
