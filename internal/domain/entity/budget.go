// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a spending budget in the ledger. A budget is open
// while EndDate is nil; closing it sets EndDate, after which it is
// immutable but still visible to date-range trend queries.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new open Budget entity.
func NewBudget(userID uuid.UUID, amount decimal.Decimal, description string, startDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		StartDate:   startDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Closed reports whether the budget has been closed.
func (b *Budget) Closed() bool {
	return b.EndDate != nil
}

// Close marks the budget closed as of the given date.
func (b *Budget) Close(date time.Time) {
	b.EndDate = &date
	b.UpdatedAt = time.Now().UTC()
}
