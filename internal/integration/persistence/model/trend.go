package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// ExpenseTrendModel represents the expense_trends table.
type ExpenseTrendModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month     time.Time       `gorm:"type:date;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ExpenseTrendModel.
func (ExpenseTrendModel) TableName() string {
	return "expense_trends"
}

// ToEntity converts an ExpenseTrendModel to a domain entity.
func (m *ExpenseTrendModel) ToEntity() *entity.ExpenseTrend {
	return &entity.ExpenseTrend{
		ID:        m.ID,
		UserID:    m.UserID,
		Month:     m.Month,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseTrendFromEntity creates an ExpenseTrendModel from a domain entity.
func ExpenseTrendFromEntity(t *entity.ExpenseTrend) *ExpenseTrendModel {
	return &ExpenseTrendModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Month:     t.Month,
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
	}
}

// IncomeTrendModel represents the income_trends table.
type IncomeTrendModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month     time.Time       `gorm:"type:date;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the IncomeTrendModel.
func (IncomeTrendModel) TableName() string {
	return "income_trends"
}

// ToEntity converts an IncomeTrendModel to a domain entity.
func (m *IncomeTrendModel) ToEntity() *entity.IncomeTrend {
	return &entity.IncomeTrend{
		ID:        m.ID,
		UserID:    m.UserID,
		Month:     m.Month,
		Amount:    m.Amount,
		Status:    entity.InsightStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// IncomeTrendFromEntity creates an IncomeTrendModel from a domain entity.
func IncomeTrendFromEntity(t *entity.IncomeTrend) *IncomeTrendModel {
	return &IncomeTrendModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Month:     t.Month,
		Amount:    t.Amount,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

// BudgetTrendModel represents the budget_trends table.
type BudgetTrendModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month        time.Time       `gorm:"type:date;not null"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the BudgetTrendModel.
func (BudgetTrendModel) TableName() string {
	return "budget_trends"
}

// ToEntity converts a BudgetTrendModel to a domain entity.
func (m *BudgetTrendModel) ToEntity() *entity.BudgetTrend {
	return &entity.BudgetTrend{
		ID:           m.ID,
		UserID:       m.UserID,
		Month:        m.Month,
		BudgetAmount: m.BudgetAmount,
		Status:       entity.InsightStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

// BudgetTrendFromEntity creates a BudgetTrendModel from a domain entity.
func BudgetTrendFromEntity(t *entity.BudgetTrend) *BudgetTrendModel {
	return &BudgetTrendModel{
		ID:           t.ID,
		UserID:       t.UserID,
		Month:        t.Month,
		BudgetAmount: t.BudgetAmount,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
	}
}

// CategorySpendingModel represents the category_spendings table.
type CategorySpendingModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category      string          `gorm:"type:varchar(255);not null"`
	TotalSpending decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the CategorySpendingModel.
func (CategorySpendingModel) TableName() string {
	return "category_spendings"
}

// ToEntity converts a CategorySpendingModel to a domain entity.
func (m *CategorySpendingModel) ToEntity() *entity.CategorySpending {
	return &entity.CategorySpending{
		ID:            m.ID,
		UserID:        m.UserID,
		Category:      m.Category,
		TotalSpending: m.TotalSpending,
		CreatedAt:     m.CreatedAt,
	}
}

// CategorySpendingFromEntity creates a CategorySpendingModel from a domain entity.
func CategorySpendingFromEntity(c *entity.CategorySpending) *CategorySpendingModel {
	return &CategorySpendingModel{
		ID:            c.ID,
		UserID:        c.UserID,
		Category:      c.Category,
		TotalSpending: c.TotalSpending,
		CreatedAt:     c.CreatedAt,
	}
}
