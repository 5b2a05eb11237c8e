package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	IncomeType string          `gorm:"type:varchar(100);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:         m.ID,
		UserID:     m.UserID,
		IncomeType: m.IncomeType,
		Amount:     m.Amount,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:         income.ID,
		UserID:     income.UserID,
		IncomeType: income.IncomeType,
		Amount:     income.Amount,
		Date:       income.Date,
		CreatedAt:  income.CreatedAt,
		UpdatedAt:  income.UpdatedAt,
	}
}
