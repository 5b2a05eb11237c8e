// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

func TestGetFinancialHealth(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("income covering expenses is good", func(t *testing.T) {
		insightRepo := &fakeInsightRepo{
			incomeSummaries: []*entity.IncomeSummary{
				entity.NewIncomeSummary(userID, decimal.NewFromInt(5000), entity.StatusBad),
			},
			expenseSummaries: []*entity.ExpenseSummary{
				entity.NewExpenseSummary(userID, decimal.NewFromInt(4000), entity.StatusGood),
			},
		}

		uc := NewGetFinancialHealthUseCase(insightRepo, testThresholds())

		health, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if health.Status != entity.StatusGood {
			t.Errorf("expected good, got %s", health.Status)
		}
		if len(insightRepo.financialHealth) != 1 {
			t.Fatalf("expected 1 stored record, got %d", len(insightRepo.financialHealth))
		}
	})

	t.Run("expenses exceeding income is bad", func(t *testing.T) {
		insightRepo := &fakeInsightRepo{
			incomeSummaries: []*entity.IncomeSummary{
				entity.NewIncomeSummary(userID, decimal.NewFromInt(3000), entity.StatusBad),
			},
			expenseSummaries: []*entity.ExpenseSummary{
				entity.NewExpenseSummary(userID, decimal.RequireFromString("3000.01"), entity.StatusGood),
			},
		}

		uc := NewGetFinancialHealthUseCase(insightRepo, testThresholds())

		health, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if health.Status != entity.StatusBad {
			t.Errorf("expected bad, got %s", health.Status)
		}
	})

	t.Run("missing summaries default to zero and break even", func(t *testing.T) {
		uc := NewGetFinancialHealthUseCase(&fakeInsightRepo{}, testThresholds())

		health, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if health.Status != entity.StatusGood {
			t.Errorf("expected good for zero totals, got %s", health.Status)
		}
	})

	t.Run("reads the latest stored summary, not an older one", func(t *testing.T) {
		insightRepo := &fakeInsightRepo{
			incomeSummaries: []*entity.IncomeSummary{
				entity.NewIncomeSummary(userID, decimal.NewFromInt(9000), entity.StatusBad),
				entity.NewIncomeSummary(userID, decimal.NewFromInt(1000), entity.StatusBad),
			},
			expenseSummaries: []*entity.ExpenseSummary{
				entity.NewExpenseSummary(userID, decimal.NewFromInt(2000), entity.StatusGood),
			},
		}

		uc := NewGetFinancialHealthUseCase(insightRepo, testThresholds())

		// Latest income summary is 1000 against 2000 expenses.
		health, err := uc.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if health.Status != entity.StatusBad {
			t.Errorf("expected bad from latest summaries, got %s", health.Status)
		}
	})
}
