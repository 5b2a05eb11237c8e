// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the ledger.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByUser retrieves all incomes for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// FindByUserAndDateRange retrieves incomes dated within the
	// inclusive range, ordered by date ascending.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Income, error)

	// Update updates an existing income.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income from the ledger.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByUser returns the total of all income amounts for a user.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SumByUserAndType returns the total income of one income type for a user.
	SumByUserAndType(ctx context.Context, userID uuid.UUID, incomeType string) (decimal.Decimal, error)

	// DistinctIncomeTypes returns the distinct income types recorded for a user.
	DistinctIncomeTypes(ctx context.Context, userID uuid.UUID) ([]string, error)
}
