// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsightStatus classifies a computed insight value.
type InsightStatus string

const (
	StatusGood           InsightStatus = "good"
	StatusBad            InsightStatus = "bad"
	StatusOnTrack        InsightStatus = "on_track"
	StatusNeedsAttention InsightStatus = "needs_attention"
)

// ExpenseSummary is the derived total of all expenses and transactions
// for a user. Every computation appends a new record; history is kept.
type ExpenseSummary struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TotalExpenses decimal.Decimal
	Status        InsightStatus
	CreatedAt     time.Time
}

// NewExpenseSummary creates a new ExpenseSummary entity.
func NewExpenseSummary(userID uuid.UUID, totalExpenses decimal.Decimal, status InsightStatus) *ExpenseSummary {
	return &ExpenseSummary{
		ID:            uuid.New(),
		UserID:        userID,
		TotalExpenses: totalExpenses,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
}

// IncomeSummary is the derived total of all income for a user.
type IncomeSummary struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalIncome decimal.Decimal
	Status      InsightStatus
	CreatedAt   time.Time
}

// NewIncomeSummary creates a new IncomeSummary entity.
func NewIncomeSummary(userID uuid.UUID, totalIncome decimal.Decimal, status InsightStatus) *IncomeSummary {
	return &IncomeSummary{
		ID:          uuid.New(),
		UserID:      userID,
		TotalIncome: totalIncome,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
}

// BudgetAnalysis compares total budgeted amounts against total spending.
// A negative variance means spending exceeded the budget; that is a
// valid state, not an error.
type BudgetAnalysis struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TotalBudgeted  decimal.Decimal
	TotalSpent     decimal.Decimal
	BudgetVariance decimal.Decimal
	CreatedAt      time.Time
}

// NewBudgetAnalysis creates a new BudgetAnalysis entity.
func NewBudgetAnalysis(userID uuid.UUID, totalBudgeted, totalSpent decimal.Decimal) *BudgetAnalysis {
	return &BudgetAnalysis{
		ID:             uuid.New(),
		UserID:         userID,
		TotalBudgeted:  totalBudgeted,
		TotalSpent:     totalSpent,
		BudgetVariance: totalBudgeted.Sub(totalSpent),
		CreatedAt:      time.Now().UTC(),
	}
}

// SavingsGoals tracks achieved savings against a goal derived from
// total income.
type SavingsGoals struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	GoalAmount     decimal.Decimal
	AchievedAmount decimal.Decimal
	Status         InsightStatus
	CreatedAt      time.Time
}

// NewSavingsGoals creates a new SavingsGoals entity.
func NewSavingsGoals(userID uuid.UUID, goalAmount, achievedAmount decimal.Decimal, status InsightStatus) *SavingsGoals {
	return &SavingsGoals{
		ID:             uuid.New(),
		UserID:         userID,
		GoalAmount:     goalAmount,
		AchievedAmount: achievedAmount,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}
}

// FinancialHealth is the overall status derived from the most recently
// stored income and expense summaries.
type FinancialHealth struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    InsightStatus
	CreatedAt time.Time
}

// NewFinancialHealth creates a new FinancialHealth entity.
func NewFinancialHealth(userID uuid.UUID, status InsightStatus) *FinancialHealth {
	return &FinancialHealth{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}
