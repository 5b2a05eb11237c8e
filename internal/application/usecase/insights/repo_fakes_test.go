// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// In-memory repository fakes backing the builder tests. Each fake keeps
// its records in a slice and answers queries the way the real gorm
// repositories do; setting err makes every method fail with it.

type fakeExpenseRepo struct {
	expenses []*entity.Expense
	err      error
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	if f.err != nil {
		return f.err
	}
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, expense := range f.expenses {
		if expense.ID == id {
			return expense, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Expense
	for _, expense := range f.expenses {
		if expense.UserID == userID {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (f *fakeExpenseRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Expense
	for _, expense := range f.expenses {
		if expense.UserID == userID && !expense.Date.Before(start) && !expense.Date.After(end) {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return f.err }

func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

func (f *fakeExpenseRepo) SumByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, expense := range f.expenses {
		if expense.UserID == userID {
			total = total.Add(expense.Amount)
		}
	}
	return total, nil
}

func (f *fakeExpenseRepo) SumByUserPerCategory(_ context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := make(map[string]decimal.Decimal)
	for _, expense := range f.expenses {
		if expense.UserID == userID {
			totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
		}
	}
	return totals, nil
}

type fakeIncomeRepo struct {
	incomes []*entity.Income
	err     error
}

func (f *fakeIncomeRepo) Create(_ context.Context, income *entity.Income) error {
	if f.err != nil {
		return f.err
	}
	f.incomes = append(f.incomes, income)
	return nil
}

func (f *fakeIncomeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, income := range f.incomes {
		if income.ID == id {
			return income, nil
		}
	}
	return nil, nil
}

func (f *fakeIncomeRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Income
	for _, income := range f.incomes {
		if income.UserID == userID {
			result = append(result, income)
		}
	}
	return result, nil
}

func (f *fakeIncomeRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Income
	for _, income := range f.incomes {
		if income.UserID == userID && !income.Date.Before(start) && !income.Date.After(end) {
			result = append(result, income)
		}
	}
	return result, nil
}

func (f *fakeIncomeRepo) Update(_ context.Context, _ *entity.Income) error { return f.err }

func (f *fakeIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

func (f *fakeIncomeRepo) SumByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, income := range f.incomes {
		if income.UserID == userID {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (f *fakeIncomeRepo) SumByUserAndType(_ context.Context, userID uuid.UUID, incomeType string) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, income := range f.incomes {
		if income.UserID == userID && income.IncomeType == incomeType {
			total = total.Add(income.Amount)
		}
	}
	return total, nil
}

func (f *fakeIncomeRepo) DistinctIncomeTypes(_ context.Context, userID uuid.UUID) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[string]bool)
	var types []string
	for _, income := range f.incomes {
		if income.UserID == userID && !seen[income.IncomeType] {
			seen[income.IncomeType] = true
			types = append(types, income.IncomeType)
		}
	}
	return types, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, transaction := range f.transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return f.err }

func (f *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

func (f *fakeTransactionRepo) SumByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			total = total.Add(transaction.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactionRepo) SumByUserPerDescription(_ context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := make(map[string]decimal.Decimal)
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			totals[transaction.Description] = totals[transaction.Description].Add(transaction.Amount)
		}
	}
	return totals, nil
}

type fakeBudgetRepo struct {
	budgets []*entity.Budget
	err     error
}

func (f *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	if f.err != nil {
		return f.err
	}
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, budget := range f.budgets {
		if budget.ID == id {
			return budget, nil
		}
	}
	return nil, nil
}

func (f *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Budget
	for _, budget := range f.budgets {
		if budget.UserID == userID {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (f *fakeBudgetRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Budget
	for _, budget := range f.budgets {
		if budget.UserID != userID || budget.StartDate.After(end) {
			continue
		}
		if budget.EndDate == nil || !budget.EndDate.Before(start) {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (f *fakeBudgetRepo) FindMostRecent(_ context.Context, userID uuid.UUID, start, end time.Time) (*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	var mostRecent *entity.Budget
	for _, budget := range f.budgets {
		if budget.UserID != userID || budget.EndDate == nil {
			continue
		}
		if budget.EndDate.Before(start) || budget.EndDate.After(end) {
			continue
		}
		if mostRecent == nil || budget.EndDate.After(*mostRecent.EndDate) {
			mostRecent = budget
		}
	}
	return mostRecent, nil
}

func (f *fakeBudgetRepo) Update(_ context.Context, _ *entity.Budget) error { return f.err }

func (f *fakeBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

// fakeInsightRepo records every append so tests can assert on stored
// history, including the deliberate duplicates.
type fakeInsightRepo struct {
	expenseSummaries []*entity.ExpenseSummary
	incomeSummaries  []*entity.IncomeSummary
	budgetAnalyses   []*entity.BudgetAnalysis
	savingsGoals     []*entity.SavingsGoals
	financialHealth  []*entity.FinancialHealth
	expenseTrends    []*entity.ExpenseTrend
	incomeTrends     []*entity.IncomeTrend
	budgetTrends     []*entity.BudgetTrend
	categorySpending []*entity.CategorySpending
	storeCalls       int
	err              error
}

func (f *fakeInsightRepo) StoreExpenseSummary(_ context.Context, summary *entity.ExpenseSummary) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.expenseSummaries = append(f.expenseSummaries, summary)
	return nil
}

func (f *fakeInsightRepo) StoreIncomeSummary(_ context.Context, summary *entity.IncomeSummary) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.incomeSummaries = append(f.incomeSummaries, summary)
	return nil
}

func (f *fakeInsightRepo) StoreBudgetAnalysis(_ context.Context, analysis *entity.BudgetAnalysis) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.budgetAnalyses = append(f.budgetAnalyses, analysis)
	return nil
}

func (f *fakeInsightRepo) StoreSavingsGoals(_ context.Context, goals *entity.SavingsGoals) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.savingsGoals = append(f.savingsGoals, goals)
	return nil
}

func (f *fakeInsightRepo) StoreFinancialHealth(_ context.Context, health *entity.FinancialHealth) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.financialHealth = append(f.financialHealth, health)
	return nil
}

func (f *fakeInsightRepo) StoreExpenseTrends(_ context.Context, trends []*entity.ExpenseTrend) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.expenseTrends = append(f.expenseTrends, trends...)
	return nil
}

func (f *fakeInsightRepo) StoreIncomeTrends(_ context.Context, trends []*entity.IncomeTrend) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.incomeTrends = append(f.incomeTrends, trends...)
	return nil
}

func (f *fakeInsightRepo) StoreBudgetTrends(_ context.Context, trends []*entity.BudgetTrend) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.budgetTrends = append(f.budgetTrends, trends...)
	return nil
}

func (f *fakeInsightRepo) StoreCategorySpending(_ context.Context, spending []*entity.CategorySpending) error {
	if f.err != nil {
		return f.err
	}
	f.storeCalls++
	f.categorySpending = append(f.categorySpending, spending...)
	return nil
}

func (f *fakeInsightRepo) MostRecentExpenseSummary(_ context.Context, userID uuid.UUID) (*entity.ExpenseSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.expenseSummaries) - 1; i >= 0; i-- {
		if f.expenseSummaries[i].UserID == userID {
			return f.expenseSummaries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInsightRepo) MostRecentIncomeSummary(_ context.Context, userID uuid.UUID) (*entity.IncomeSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.incomeSummaries) - 1; i >= 0; i-- {
		if f.incomeSummaries[i].UserID == userID {
			return f.incomeSummaries[i], nil
		}
	}
	return nil, nil
}

// testThresholds mirrors the default policy values.
func testThresholds() Thresholds {
	return Thresholds{
		expenseCeiling:  decimal.NewFromInt(5000),
		incomeFloor:     decimal.NewFromInt(10000),
		savingsGoalRate: decimal.RequireFromString("0.20"),
	}
}
