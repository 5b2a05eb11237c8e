package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// Derived insight tables are append-only: rows are inserted on every
// computation and never updated or deleted.

// ExpenseSummaryModel represents the expense_summaries table.
type ExpenseSummaryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ExpenseSummaryModel.
func (ExpenseSummaryModel) TableName() string {
	return "expense_summaries"
}

// ToEntity converts an ExpenseSummaryModel to a domain entity.
func (m *ExpenseSummaryModel) ToEntity() *entity.ExpenseSummary {
	return &entity.ExpenseSummary{
		ID:            m.ID,
		UserID:        m.UserID,
		TotalExpenses: m.TotalExpenses,
		Status:        entity.InsightStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// ExpenseSummaryFromEntity creates an ExpenseSummaryModel from a domain entity.
func ExpenseSummaryFromEntity(s *entity.ExpenseSummary) *ExpenseSummaryModel {
	return &ExpenseSummaryModel{
		ID:            s.ID,
		UserID:        s.UserID,
		TotalExpenses: s.TotalExpenses,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}

// IncomeSummaryModel represents the income_summaries table.
type IncomeSummaryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the IncomeSummaryModel.
func (IncomeSummaryModel) TableName() string {
	return "income_summaries"
}

// ToEntity converts an IncomeSummaryModel to a domain entity.
func (m *IncomeSummaryModel) ToEntity() *entity.IncomeSummary {
	return &entity.IncomeSummary{
		ID:          m.ID,
		UserID:      m.UserID,
		TotalIncome: m.TotalIncome,
		Status:      entity.InsightStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// IncomeSummaryFromEntity creates an IncomeSummaryModel from a domain entity.
func IncomeSummaryFromEntity(s *entity.IncomeSummary) *IncomeSummaryModel {
	return &IncomeSummaryModel{
		ID:          s.ID,
		UserID:      s.UserID,
		TotalIncome: s.TotalIncome,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

// BudgetAnalysisModel represents the budget_analyses table.
type BudgetAnalysisModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalBudgeted  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalSpent     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BudgetVariance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the BudgetAnalysisModel.
func (BudgetAnalysisModel) TableName() string {
	return "budget_analyses"
}

// ToEntity converts a BudgetAnalysisModel to a domain entity.
func (m *BudgetAnalysisModel) ToEntity() *entity.BudgetAnalysis {
	return &entity.BudgetAnalysis{
		ID:             m.ID,
		UserID:         m.UserID,
		TotalBudgeted:  m.TotalBudgeted,
		TotalSpent:     m.TotalSpent,
		BudgetVariance: m.BudgetVariance,
		CreatedAt:      m.CreatedAt,
	}
}

// BudgetAnalysisFromEntity creates a BudgetAnalysisModel from a domain entity.
func BudgetAnalysisFromEntity(a *entity.BudgetAnalysis) *BudgetAnalysisModel {
	return &BudgetAnalysisModel{
		ID:             a.ID,
		UserID:         a.UserID,
		TotalBudgeted:  a.TotalBudgeted,
		TotalSpent:     a.TotalSpent,
		BudgetVariance: a.BudgetVariance,
		CreatedAt:      a.CreatedAt,
	}
}

// SavingsGoalsModel represents the savings_goals table.
type SavingsGoalsModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AchievedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the SavingsGoalsModel.
func (SavingsGoalsModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalsModel to a domain entity.
func (m *SavingsGoalsModel) ToEntity() *entity.SavingsGoals {
	return &entity.SavingsGoals{
		ID:             m.ID,
		UserID:         m.UserID,
		GoalAmount:     m.GoalAmount,
		AchievedAmount: m.AchievedAmount,
		Status:         entity.InsightStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

// SavingsGoalsFromEntity creates a SavingsGoalsModel from a domain entity.
func SavingsGoalsFromEntity(s *entity.SavingsGoals) *SavingsGoalsModel {
	return &SavingsGoalsModel{
		ID:             s.ID,
		UserID:         s.UserID,
		GoalAmount:     s.GoalAmount,
		AchievedAmount: s.AchievedAmount,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
	}
}

// FinancialHealthModel represents the financial_health table.
type FinancialHealthModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the FinancialHealthModel.
func (FinancialHealthModel) TableName() string {
	return "financial_health"
}

// ToEntity converts a FinancialHealthModel to a domain entity.
func (m *FinancialHealthModel) ToEntity() *entity.FinancialHealth {
	return &entity.FinancialHealth{
		ID:        m.ID,
		UserID:    m.UserID,
		Status:    entity.InsightStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FinancialHealthFromEntity creates a FinancialHealthModel from a domain entity.
func FinancialHealthFromEntity(h *entity.FinancialHealth) *FinancialHealthModel {
	return &FinancialHealthModel{
		ID:        h.ID,
		UserID:    h.UserID,
		Status:    string(h.Status),
		CreatedAt: h.CreatedAt,
	}
}
