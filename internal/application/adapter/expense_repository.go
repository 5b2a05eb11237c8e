// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the ledger.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByUserAndDateRange retrieves expenses dated within the
	// inclusive range, ordered by date ascending.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the ledger.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByUser returns the total of all expense amounts for a user.
	// Users with no expenses yield zero, not an error.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SumByUserPerCategory returns the expense total per category for a user.
	SumByUserPerCategory(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)
}
