package dto

import (
	"github.com/personal-finance/backend/internal/domain/entity"
)

// ExpenseSummaryResponse represents the expense summary insight.
type ExpenseSummaryResponse struct {
	TotalExpenses float64 `json:"total_expenses"`
	Status        string  `json:"status"`
	ComputedAt    string  `json:"computed_at"`
}

// ToExpenseSummaryResponse converts an ExpenseSummary entity.
func ToExpenseSummaryResponse(summary *entity.ExpenseSummary) ExpenseSummaryResponse {
	total, _ := summary.TotalExpenses.Float64()
	return ExpenseSummaryResponse{
		TotalExpenses: total,
		Status:        string(summary.Status),
		ComputedAt:    summary.CreatedAt.Format(DateFormat),
	}
}

// IncomeSummaryResponse represents the income summary insight.
type IncomeSummaryResponse struct {
	TotalIncome float64 `json:"total_income"`
	Status      string  `json:"status"`
	ComputedAt  string  `json:"computed_at"`
}

// ToIncomeSummaryResponse converts an IncomeSummary entity.
func ToIncomeSummaryResponse(summary *entity.IncomeSummary) IncomeSummaryResponse {
	total, _ := summary.TotalIncome.Float64()
	return IncomeSummaryResponse{
		TotalIncome: total,
		Status:      string(summary.Status),
		ComputedAt:  summary.CreatedAt.Format(DateFormat),
	}
}

// BudgetAnalysisResponse represents the budget analysis insight.
type BudgetAnalysisResponse struct {
	TotalBudgeted  float64 `json:"total_budgeted"`
	TotalSpent     float64 `json:"total_spent"`
	BudgetVariance float64 `json:"budget_variance"`
	ComputedAt     string  `json:"computed_at"`
}

// ToBudgetAnalysisResponse converts a BudgetAnalysis entity.
func ToBudgetAnalysisResponse(analysis *entity.BudgetAnalysis) BudgetAnalysisResponse {
	budgeted, _ := analysis.TotalBudgeted.Float64()
	spent, _ := analysis.TotalSpent.Float64()
	variance, _ := analysis.BudgetVariance.Float64()
	return BudgetAnalysisResponse{
		TotalBudgeted:  budgeted,
		TotalSpent:     spent,
		BudgetVariance: variance,
		ComputedAt:     analysis.CreatedAt.Format(DateFormat),
	}
}

// SavingsGoalsResponse represents the savings goals insight.
type SavingsGoalsResponse struct {
	GoalAmount     float64 `json:"goal_amount"`
	AchievedAmount float64 `json:"achieved_amount"`
	Status         string  `json:"status"`
	ComputedAt     string  `json:"computed_at"`
}

// ToSavingsGoalsResponse converts a SavingsGoals entity.
func ToSavingsGoalsResponse(goals *entity.SavingsGoals) SavingsGoalsResponse {
	goal, _ := goals.GoalAmount.Float64()
	achieved, _ := goals.AchievedAmount.Float64()
	return SavingsGoalsResponse{
		GoalAmount:     goal,
		AchievedAmount: achieved,
		Status:         string(goals.Status),
		ComputedAt:     goals.CreatedAt.Format(DateFormat),
	}
}

// FinancialHealthResponse represents the financial health insight.
type FinancialHealthResponse struct {
	Status     string `json:"status"`
	ComputedAt string `json:"computed_at"`
}

// ToFinancialHealthResponse converts a FinancialHealth entity.
func ToFinancialHealthResponse(health *entity.FinancialHealth) FinancialHealthResponse {
	return FinancialHealthResponse{
		Status:     string(health.Status),
		ComputedAt: health.CreatedAt.Format(DateFormat),
	}
}

// ExpenseTrendResponse represents one month of the expense trend insight.
type ExpenseTrendResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// ToExpenseTrendListResponse converts a slice of ExpenseTrend entities.
func ToExpenseTrendListResponse(trends []*entity.ExpenseTrend) []ExpenseTrendResponse {
	responses := make([]ExpenseTrendResponse, len(trends))
	for i, t := range trends {
		amount, _ := t.Amount.Float64()
		responses[i] = ExpenseTrendResponse{
			Month:  t.Month.Format(DateFormat),
			Amount: amount,
		}
	}
	return responses
}

// IncomeTrendResponse represents one month of the income trend insight.
type IncomeTrendResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// ToIncomeTrendListResponse converts a slice of IncomeTrend entities.
func ToIncomeTrendListResponse(trends []*entity.IncomeTrend) []IncomeTrendResponse {
	responses := make([]IncomeTrendResponse, len(trends))
	for i, t := range trends {
		amount, _ := t.Amount.Float64()
		responses[i] = IncomeTrendResponse{
			Month:  t.Month.Format(DateFormat),
			Amount: amount,
			Status: string(t.Status),
		}
	}
	return responses
}

// BudgetTrendResponse represents the budget trend insight.
type BudgetTrendResponse struct {
	Month        string  `json:"month"`
	BudgetAmount float64 `json:"budget_amount"`
	Status       string  `json:"status"`
}

// ToBudgetTrendListResponse converts a slice of BudgetTrend entities.
func ToBudgetTrendListResponse(trends []*entity.BudgetTrend) []BudgetTrendResponse {
	responses := make([]BudgetTrendResponse, len(trends))
	for i, t := range trends {
		amount, _ := t.BudgetAmount.Float64()
		responses[i] = BudgetTrendResponse{
			Month:        t.Month.Format(DateFormat),
			BudgetAmount: amount,
			Status:       string(t.Status),
		}
	}
	return responses
}

// CategorySpendingResponse represents one category of the spending insight.
type CategorySpendingResponse struct {
	Category      string  `json:"category"`
	TotalSpending float64 `json:"total_spending"`
}

// ToCategorySpendingListResponse converts a slice of CategorySpending entities.
func ToCategorySpendingListResponse(spending []*entity.CategorySpending) []CategorySpendingResponse {
	responses := make([]CategorySpendingResponse, len(spending))
	for i, s := range spending {
		total, _ := s.TotalSpending.Float64()
		responses[i] = CategorySpendingResponse{
			Category:      s.Category,
			TotalSpending: total,
		}
	}
	return responses
}

// IncomeSourceResponse represents one income source aggregate.
type IncomeSourceResponse struct {
	IncomeType string  `json:"income_type"`
	Amount     float64 `json:"amount"`
}

// ToIncomeSourceListResponse converts a slice of IncomeSource entities.
func ToIncomeSourceListResponse(sources []*entity.IncomeSource) []IncomeSourceResponse {
	responses := make([]IncomeSourceResponse, len(sources))
	for i, s := range sources {
		amount, _ := s.Amount.Float64()
		responses[i] = IncomeSourceResponse{
			IncomeType: s.IncomeType,
			Amount:     amount,
		}
	}
	return responses
}
