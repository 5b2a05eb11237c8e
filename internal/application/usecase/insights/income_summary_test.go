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

func TestGetIncomeSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		amounts        []string
		expectedTotal  string
		expectedStatus entity.InsightStatus
	}{
		{
			name:           "no income is zero and bad",
			amounts:        nil,
			expectedTotal:  "0",
			expectedStatus: entity.StatusBad,
		},
		{
			name:           "income at threshold is bad",
			amounts:        []string{"4000", "6000"},
			expectedTotal:  "10000",
			expectedStatus: entity.StatusBad,
		},
		{
			name:           "income above threshold is good",
			amounts:        []string{"4000", "6000.01"},
			expectedTotal:  "10000.01",
			expectedStatus: entity.StatusGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incomeRepo := &fakeIncomeRepo{}
			for _, amount := range tt.amounts {
				incomeRepo.incomes = append(incomeRepo.incomes,
					entity.NewIncome(userID, "salary", decimal.RequireFromString(amount), day))
			}
			insightRepo := &fakeInsightRepo{}

			uc := NewGetIncomeSummaryUseCase(incomeRepo, insightRepo, testThresholds())

			summary, err := uc.Execute(ctx, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !summary.TotalIncome.Equal(decimal.RequireFromString(tt.expectedTotal)) {
				t.Errorf("expected total %s, got %s", tt.expectedTotal, summary.TotalIncome)
			}
			if summary.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, summary.Status)
			}
			if len(insightRepo.incomeSummaries) != 1 {
				t.Fatalf("expected 1 stored summary, got %d", len(insightRepo.incomeSummaries))
			}
		})
	}

	t.Run("ledger failure propagates unchanged", func(t *testing.T) {
		repoErr := errors.New("upstream unavailable")
		uc := NewGetIncomeSummaryUseCase(&fakeIncomeRepo{err: repoErr}, &fakeInsightRepo{}, testThresholds())

		if _, err := uc.Execute(ctx, userID); !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})
}
