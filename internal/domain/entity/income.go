// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents an earning record in the ledger.
type Income struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	IncomeType string
	Amount     decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, incomeType string, amount decimal.Decimal, date time.Time) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:         uuid.New(),
		UserID:     userID,
		IncomeType: incomeType,
		Amount:     amount,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IncomeSource is the aggregate income for a single income type.
// It is computed on demand and never persisted.
type IncomeSource struct {
	UserID     uuid.UUID
	IncomeType string
	Amount     decimal.Decimal
}
