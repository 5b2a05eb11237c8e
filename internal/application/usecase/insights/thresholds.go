// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/config"
	"github.com/personal-finance/backend/internal/domain/entity"
)

// Thresholds holds the classification policy for insight statuses. All
// methods are pure; the values come from configuration so boundaries
// can be probed in tests without rebuilding.
type Thresholds struct {
	expenseCeiling  decimal.Decimal
	incomeFloor     decimal.Decimal
	savingsGoalRate decimal.Decimal
}

// NewThresholds creates a Thresholds policy from configuration.
func NewThresholds(cfg *config.InsightsConfig) Thresholds {
	return Thresholds{
		expenseCeiling:  cfg.ExpenseThreshold,
		incomeFloor:     cfg.IncomeThreshold,
		savingsGoalRate: cfg.SavingsGoalRate,
	}
}

// ClassifyExpenses returns "good" while total expenses stay strictly
// below the ceiling; reaching the ceiling is already "bad".
func (t Thresholds) ClassifyExpenses(total decimal.Decimal) entity.InsightStatus {
	if total.LessThan(t.expenseCeiling) {
		return entity.StatusGood
	}
	return entity.StatusBad
}

// ClassifyIncome returns "good" only when total income strictly exceeds
// the floor; income exactly at the floor is "bad".
func (t Thresholds) ClassifyIncome(total decimal.Decimal) entity.InsightStatus {
	if total.GreaterThan(t.incomeFloor) {
		return entity.StatusGood
	}
	return entity.StatusBad
}

// ClassifySavings returns "on_track" when achieved savings meet or
// exceed the goal.
func (t Thresholds) ClassifySavings(achieved, goal decimal.Decimal) entity.InsightStatus {
	if achieved.GreaterThanOrEqual(goal) {
		return entity.StatusOnTrack
	}
	return entity.StatusNeedsAttention
}

// ClassifyHealth returns "good" when income covers expenses, including
// the break-even case.
func (t Thresholds) ClassifyHealth(income, expenses decimal.Decimal) entity.InsightStatus {
	if income.Sub(expenses).Sign() >= 0 {
		return entity.StatusGood
	}
	return entity.StatusBad
}

// SavingsGoal returns the goal amount derived from total income.
func (t Thresholds) SavingsGoal(totalIncome decimal.Decimal) decimal.Decimal {
	return totalIncome.Mul(t.savingsGoalRate)
}
