package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
	"github.com/personal-finance/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUser retrieves all incomes for a given user.
func (r *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// FindByUserAndDateRange retrieves incomes dated within the inclusive
// range, ordered by date ascending.
func (r *incomeRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// Update updates an existing income.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Save(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SumByUser returns the total of all income amounts for a user.
func (r *incomeRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// SumByUserAndType returns the total income of one income type for a user.
func (r *incomeRepository) SumByUserAndType(ctx context.Context, userID uuid.UUID, incomeType string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND income_type = ?", userID, incomeType).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// DistinctIncomeTypes returns the distinct income types recorded for a user.
func (r *incomeRepository) DistinctIncomeTypes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var types []string
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Distinct("income_type").
		Where("user_id = ?", userID).
		Order("income_type ASC").
		Pluck("income_type", &types)
	if result.Error != nil {
		return nil, result.Error
	}
	return types, nil
}
