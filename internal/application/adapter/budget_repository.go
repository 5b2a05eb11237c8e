// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the ledger.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndDateRange retrieves budgets whose lifetime overlaps
	// the inclusive range, closed budgets first in end-date descending
	// order. Open budgets (nil end date) are included.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error)

	// FindMostRecent retrieves the budget with the latest end date
	// inside the inclusive range, tie-broken by highest ID. Open
	// budgets are never most recent. Returns nil when no closed budget
	// falls in the range.
	FindMostRecent(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.Budget, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the ledger.
	Delete(ctx context.Context, id uuid.UUID) error
}
