// Package cache provides a Redis-backed cache for latest insight
// summaries. It decorates the insight repository: stores write through
// to Redis, lookups try Redis before the database and backfill on a
// miss. Cache failures degrade to the database and are never fatal.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
)

const (
	latestExpenseKeyFormat = "insights:latest:expense:%s"
	latestIncomeKeyFormat  = "insights:latest:income:%s"
)

// LatestSummaryCache wraps an InsightRepository with a Redis cache for
// the most-recent expense and income summaries.
type LatestSummaryCache struct {
	next   adapter.InsightRepository
	client *redis.Client
	ttl    time.Duration
}

// NewLatestSummaryCache creates a new caching decorator around next.
func NewLatestSummaryCache(next adapter.InsightRepository, client *redis.Client, ttl time.Duration) *LatestSummaryCache {
	return &LatestSummaryCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// StoreExpenseSummary appends the summary and refreshes the cached
// latest value.
func (c *LatestSummaryCache) StoreExpenseSummary(ctx context.Context, summary *entity.ExpenseSummary) error {
	if err := c.next.StoreExpenseSummary(ctx, summary); err != nil {
		return err
	}
	c.set(ctx, fmt.Sprintf(latestExpenseKeyFormat, summary.UserID), summary)
	return nil
}

// StoreIncomeSummary appends the summary and refreshes the cached
// latest value.
func (c *LatestSummaryCache) StoreIncomeSummary(ctx context.Context, summary *entity.IncomeSummary) error {
	if err := c.next.StoreIncomeSummary(ctx, summary); err != nil {
		return err
	}
	c.set(ctx, fmt.Sprintf(latestIncomeKeyFormat, summary.UserID), summary)
	return nil
}

// MostRecentExpenseSummary returns the cached latest expense summary,
// falling back to the database and backfilling the cache on a miss.
func (c *LatestSummaryCache) MostRecentExpenseSummary(ctx context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error) {
	key := fmt.Sprintf(latestExpenseKeyFormat, userID)

	var cached entity.ExpenseSummary
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := c.next.MostRecentExpenseSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	if summary != nil {
		c.set(ctx, key, summary)
	}
	return summary, nil
}

// MostRecentIncomeSummary returns the cached latest income summary,
// falling back to the database and backfilling the cache on a miss.
func (c *LatestSummaryCache) MostRecentIncomeSummary(ctx context.Context, userID uuid.UUID) (*entity.IncomeSummary, error) {
	key := fmt.Sprintf(latestIncomeKeyFormat, userID)

	var cached entity.IncomeSummary
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := c.next.MostRecentIncomeSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	if summary != nil {
		c.set(ctx, key, summary)
	}
	return summary, nil
}

// StoreBudgetAnalysis delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreBudgetAnalysis(ctx context.Context, analysis *entity.BudgetAnalysis) error {
	return c.next.StoreBudgetAnalysis(ctx, analysis)
}

// StoreSavingsGoals delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreSavingsGoals(ctx context.Context, goals *entity.SavingsGoals) error {
	return c.next.StoreSavingsGoals(ctx, goals)
}

// StoreFinancialHealth delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreFinancialHealth(ctx context.Context, health *entity.FinancialHealth) error {
	return c.next.StoreFinancialHealth(ctx, health)
}

// StoreExpenseTrends delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreExpenseTrends(ctx context.Context, trends []*entity.ExpenseTrend) error {
	return c.next.StoreExpenseTrends(ctx, trends)
}

// StoreIncomeTrends delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreIncomeTrends(ctx context.Context, trends []*entity.IncomeTrend) error {
	return c.next.StoreIncomeTrends(ctx, trends)
}

// StoreBudgetTrends delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreBudgetTrends(ctx context.Context, trends []*entity.BudgetTrend) error {
	return c.next.StoreBudgetTrends(ctx, trends)
}

// StoreCategorySpending delegates to the wrapped repository.
func (c *LatestSummaryCache) StoreCategorySpending(ctx context.Context, spending []*entity.CategorySpending) error {
	return c.next.StoreCategorySpending(ctx, spending)
}

func (c *LatestSummaryCache) set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to marshal summary for cache", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("Failed to write summary cache", "key", key, "error", err)
	}
}

// get reports whether the key was found and unmarshaled into dest.
func (c *LatestSummaryCache) get(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Failed to read summary cache", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		slog.Warn("Failed to unmarshal cached summary", "key", key, "error", err)
		return false
	}
	return true
}

var _ adapter.InsightRepository = (*LatestSummaryCache)(nil)
