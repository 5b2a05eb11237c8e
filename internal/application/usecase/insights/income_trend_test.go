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

func TestGetIncomeTrends(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := TrendInput{
		UserID:    userID,
		StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("bucketing is dense, empty months produce zero records", func(t *testing.T) {
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{
			entity.NewIncome(userID, "salary", decimal.NewFromInt(3000),
				time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)),
			entity.NewIncome(userID, "freelance", decimal.NewFromInt(800),
				time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)),
		}}
		insightRepo := &fakeInsightRepo{}

		uc := NewGetIncomeTrendsUseCase(incomeRepo, insightRepo)

		trends, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trends) != 3 {
			t.Fatalf("expected 3 trend records including empty February, got %d", len(trends))
		}

		expected := []struct {
			month  time.Time
			amount decimal.Decimal
		}{
			{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(3000)},
			{time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), decimal.Zero},
			{time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(800)},
		}
		for i, want := range expected {
			if !trends[i].Month.Equal(want.month) {
				t.Errorf("month %d: expected %v, got %v", i, want.month, trends[i].Month)
			}
			if !trends[i].Amount.Equal(want.amount) {
				t.Errorf("month %d: expected amount %s, got %s", i, want.amount, trends[i].Amount)
			}
		}

		// Income exists within the range, so the shared direction is good.
		for i, trend := range trends {
			if trend.Status != entity.StatusGood {
				t.Errorf("month %d: expected uniform good status, got %s", i, trend.Status)
			}
		}

		if len(insightRepo.incomeTrends) != 3 {
			t.Fatalf("expected 3 stored trends, got %d", len(insightRepo.incomeTrends))
		}
	})

	t.Run("no income in range yields zero months with bad status", func(t *testing.T) {
		uc := NewGetIncomeTrendsUseCase(&fakeIncomeRepo{}, &fakeInsightRepo{})

		trends, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trends) != 3 {
			t.Fatalf("expected 3 zero-amount records, got %d", len(trends))
		}
		for i, trend := range trends {
			if !trend.Amount.IsZero() {
				t.Errorf("month %d: expected zero amount, got %s", i, trend.Amount)
			}
			if trend.Status != entity.StatusBad {
				t.Errorf("month %d: expected bad status, got %s", i, trend.Status)
			}
		}
	})

	t.Run("single-day range produces one month", func(t *testing.T) {
		day := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{
			entity.NewIncome(userID, "salary", decimal.NewFromInt(100), day),
		}}
		uc := NewGetIncomeTrendsUseCase(incomeRepo, &fakeInsightRepo{})

		trends, err := uc.Execute(ctx, TrendInput{UserID: userID, StartDate: day, EndDate: day})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trends) != 1 {
			t.Fatalf("expected 1 record, got %d", len(trends))
		}
		if !trends[0].Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected amount 100, got %s", trends[0].Amount)
		}
	})
}
