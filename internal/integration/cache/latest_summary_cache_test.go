package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// fakeInsightRepo records calls so tests can observe whether the cache
// short-circuited the database.
type fakeInsightRepo struct {
	expenseSummaries []*entity.ExpenseSummary
	incomeSummaries  []*entity.IncomeSummary
	mostRecentCalls  int
}

func (f *fakeInsightRepo) StoreExpenseSummary(_ context.Context, s *entity.ExpenseSummary) error {
	f.expenseSummaries = append(f.expenseSummaries, s)
	return nil
}

func (f *fakeInsightRepo) StoreIncomeSummary(_ context.Context, s *entity.IncomeSummary) error {
	f.incomeSummaries = append(f.incomeSummaries, s)
	return nil
}

func (f *fakeInsightRepo) StoreBudgetAnalysis(_ context.Context, _ *entity.BudgetAnalysis) error {
	return nil
}

func (f *fakeInsightRepo) StoreSavingsGoals(_ context.Context, _ *entity.SavingsGoals) error {
	return nil
}

func (f *fakeInsightRepo) StoreFinancialHealth(_ context.Context, _ *entity.FinancialHealth) error {
	return nil
}

func (f *fakeInsightRepo) StoreExpenseTrends(_ context.Context, _ []*entity.ExpenseTrend) error {
	return nil
}

func (f *fakeInsightRepo) StoreIncomeTrends(_ context.Context, _ []*entity.IncomeTrend) error {
	return nil
}

func (f *fakeInsightRepo) StoreBudgetTrends(_ context.Context, _ []*entity.BudgetTrend) error {
	return nil
}

func (f *fakeInsightRepo) StoreCategorySpending(_ context.Context, _ []*entity.CategorySpending) error {
	return nil
}

func (f *fakeInsightRepo) MostRecentExpenseSummary(_ context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error) {
	f.mostRecentCalls++
	for i := len(f.expenseSummaries) - 1; i >= 0; i-- {
		if f.expenseSummaries[i].UserID == userID {
			return f.expenseSummaries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInsightRepo) MostRecentIncomeSummary(_ context.Context, userID uuid.UUID) (*entity.IncomeSummary, error) {
	f.mostRecentCalls++
	for i := len(f.incomeSummaries) - 1; i >= 0; i-- {
		if f.incomeSummaries[i].UserID == userID {
			return f.incomeSummaries[i], nil
		}
	}
	return nil, nil
}

func newTestCache(t *testing.T) (*LatestSummaryCache, *fakeInsightRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &fakeInsightRepo{}
	return NewLatestSummaryCache(repo, client, time.Hour), repo
}

func TestLatestSummaryCache_WriteThrough(t *testing.T) {
	ctx := context.Background()
	c, repo := newTestCache(t)
	userID := uuid.New()

	summary := entity.NewExpenseSummary(userID, decimal.NewFromInt(1200), entity.StatusGood)
	if err := c.StoreExpenseSummary(ctx, summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.expenseSummaries) != 1 {
		t.Fatalf("expected summary persisted, got %d records", len(repo.expenseSummaries))
	}

	got, err := c.MostRecentExpenseSummary(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != summary.ID {
		t.Fatalf("expected cached summary %v, got %v", summary.ID, got)
	}
	if repo.mostRecentCalls != 0 {
		t.Errorf("expected cache hit to skip the database, got %d calls", repo.mostRecentCalls)
	}
}

func TestLatestSummaryCache_BackfillOnMiss(t *testing.T) {
	ctx := context.Background()
	c, repo := newTestCache(t)
	userID := uuid.New()

	summary := entity.NewIncomeSummary(userID, decimal.NewFromInt(9000), entity.StatusBad)
	repo.incomeSummaries = append(repo.incomeSummaries, summary)

	got, err := c.MostRecentIncomeSummary(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != summary.ID {
		t.Fatalf("expected summary from database, got %v", got)
	}
	if repo.mostRecentCalls != 1 {
		t.Fatalf("expected one database lookup, got %d", repo.mostRecentCalls)
	}

	// Second read is served from the backfilled cache.
	if _, err := c.MostRecentIncomeSummary(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.mostRecentCalls != 1 {
		t.Errorf("expected backfilled cache to serve second read, got %d database lookups", repo.mostRecentCalls)
	}
}

func TestLatestSummaryCache_MissingSummary(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	got, err := c.MostRecentExpenseSummary(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a user with no summaries, got %v", got)
	}
}
