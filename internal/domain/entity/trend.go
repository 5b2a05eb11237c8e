// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseTrend is the expense total for one calendar month. Month is
// always normalized to the first day of the month.
type ExpenseTrend struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     time.Time
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewExpenseTrend creates a new ExpenseTrend entity.
func NewExpenseTrend(userID uuid.UUID, month time.Time, amount decimal.Decimal) *ExpenseTrend {
	return &ExpenseTrend{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// IncomeTrend is the income total for one calendar month. All trends
// produced by a single query share one status value.
type IncomeTrend struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     time.Time
	Amount    decimal.Decimal
	Status    InsightStatus
	CreatedAt time.Time
}

// NewIncomeTrend creates a new IncomeTrend entity.
func NewIncomeTrend(userID uuid.UUID, month time.Time, amount decimal.Decimal, status InsightStatus) *IncomeTrend {
	return &IncomeTrend{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Amount:    amount,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

// BudgetTrend is a one-point summary of budget direction for a queried
// range.
type BudgetTrend struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Month        time.Time
	BudgetAmount decimal.Decimal
	Status       InsightStatus
	CreatedAt    time.Time
}

// NewBudgetTrend creates a new BudgetTrend entity.
func NewBudgetTrend(userID uuid.UUID, month time.Time, budgetAmount decimal.Decimal, status InsightStatus) *BudgetTrend {
	return &BudgetTrend{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		BudgetAmount: budgetAmount,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
}

// CategorySpending is the combined spending total for one category,
// merging expense categories with transaction descriptions.
type CategorySpending struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      string
	TotalSpending decimal.Decimal
	CreatedAt     time.Time
}

// NewCategorySpending creates a new CategorySpending entity.
func NewCategorySpending(userID uuid.UUID, category string, totalSpending decimal.Decimal) *CategorySpending {
	return &CategorySpending{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		TotalSpending: totalSpending,
		CreatedAt:     time.Now().UTC(),
	}
}
