// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the ledger.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByUser returns the total of all transaction amounts for a user.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SumByUserPerDescription returns the transaction total grouped by
	// description, which acts as a pseudo-category in spending reports.
	SumByUserPerDescription(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)
}
