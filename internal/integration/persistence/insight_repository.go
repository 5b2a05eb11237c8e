package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
	"github.com/personal-finance/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
// Every store is a plain insert; derived tables grow with each
// computation and are never updated in place.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// StoreExpenseSummary appends an expense summary record.
func (r *insightRepository) StoreExpenseSummary(ctx context.Context, summary *entity.ExpenseSummary) error {
	result := r.db.WithContext(ctx).Create(model.ExpenseSummaryFromEntity(summary))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreIncomeSummary appends an income summary record.
func (r *insightRepository) StoreIncomeSummary(ctx context.Context, summary *entity.IncomeSummary) error {
	result := r.db.WithContext(ctx).Create(model.IncomeSummaryFromEntity(summary))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreBudgetAnalysis appends a budget analysis record.
func (r *insightRepository) StoreBudgetAnalysis(ctx context.Context, analysis *entity.BudgetAnalysis) error {
	result := r.db.WithContext(ctx).Create(model.BudgetAnalysisFromEntity(analysis))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreSavingsGoals appends a savings goals record.
func (r *insightRepository) StoreSavingsGoals(ctx context.Context, goals *entity.SavingsGoals) error {
	result := r.db.WithContext(ctx).Create(model.SavingsGoalsFromEntity(goals))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreFinancialHealth appends a financial health record.
func (r *insightRepository) StoreFinancialHealth(ctx context.Context, health *entity.FinancialHealth) error {
	result := r.db.WithContext(ctx).Create(model.FinancialHealthFromEntity(health))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreExpenseTrends appends a batch of expense trend records.
func (r *insightRepository) StoreExpenseTrends(ctx context.Context, trends []*entity.ExpenseTrend) error {
	if len(trends) == 0 {
		return nil
	}
	models := make([]*model.ExpenseTrendModel, len(trends))
	for i, t := range trends {
		models[i] = model.ExpenseTrendFromEntity(t)
	}
	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreIncomeTrends appends a batch of income trend records.
func (r *insightRepository) StoreIncomeTrends(ctx context.Context, trends []*entity.IncomeTrend) error {
	if len(trends) == 0 {
		return nil
	}
	models := make([]*model.IncomeTrendModel, len(trends))
	for i, t := range trends {
		models[i] = model.IncomeTrendFromEntity(t)
	}
	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreBudgetTrends appends a batch of budget trend records.
func (r *insightRepository) StoreBudgetTrends(ctx context.Context, trends []*entity.BudgetTrend) error {
	if len(trends) == 0 {
		return nil
	}
	models := make([]*model.BudgetTrendModel, len(trends))
	for i, t := range trends {
		models[i] = model.BudgetTrendFromEntity(t)
	}
	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// StoreCategorySpending appends a batch of category spending records.
func (r *insightRepository) StoreCategorySpending(ctx context.Context, spending []*entity.CategorySpending) error {
	if len(spending) == 0 {
		return nil
	}
	models := make([]*model.CategorySpendingModel, len(spending))
	for i, s := range spending {
		models[i] = model.CategorySpendingFromEntity(s)
	}
	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MostRecentExpenseSummary retrieves the latest stored expense summary
// for a user. Ties on creation time break toward the higher ID.
func (r *insightRepository) MostRecentExpenseSummary(ctx context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error) {
	var summaryModel model.ExpenseSummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}

// MostRecentIncomeSummary retrieves the latest stored income summary
// for a user. Ties on creation time break toward the higher ID.
func (r *insightRepository) MostRecentIncomeSummary(ctx context.Context, userID uuid.UUID) (*entity.IncomeSummary, error) {
	var summaryModel model.IncomeSummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}
