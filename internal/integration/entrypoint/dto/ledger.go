package dto

import (
	"github.com/personal-finance/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

// UpdateExpenseRequest represents the request body for expense updates.
type UpdateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	amount, _ := expense.Amount.Float64()
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Amount:      amount,
		Category:    expense.Category,
		Date:        expense.Date.Format(DateFormat),
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt.Format(DateFormat),
	}
}

// ToExpenseListResponse converts a slice of Expense entities.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	IncomeType string  `json:"income_type" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Date       string  `json:"date" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income updates.
type UpdateIncomeRequest struct {
	IncomeType string  `json:"income_type" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Date       string  `json:"date" binding:"required"`
}

// IncomeResponse represents an income in API responses.
type IncomeResponse struct {
	ID         string  `json:"id"`
	IncomeType string  `json:"income_type"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	CreatedAt  string  `json:"created_at"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	amount, _ := income.Amount.Float64()
	return IncomeResponse{
		ID:         income.ID.String(),
		IncomeType: income.IncomeType,
		Amount:     amount,
		Date:       income.Date.Format(DateFormat),
		CreatedAt:  income.CreatedAt.Format(DateFormat),
	}
}

// ToIncomeListResponse converts a slice of Income entities.
func ToIncomeListResponse(incomes []*entity.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		responses[i] = ToIncomeResponse(in)
	}
	return responses
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction updates.
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	amount, _ := transaction.Amount.Float64()
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Amount:      amount,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt.Format(DateFormat),
	}
}

// ToTransactionListResponse converts a slice of Transaction entities.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, tr := range transactions {
		responses[i] = ToTransactionResponse(tr)
	}
	return responses
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget updates.
type UpdateBudgetRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
}

// CloseBudgetRequest represents the request body for closing a budget.
type CloseBudgetRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	CreatedAt   string  `json:"created_at"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	amount, _ := budget.Amount.Float64()

	var endDate *string
	if budget.EndDate != nil {
		formatted := budget.EndDate.Format(DateFormat)
		endDate = &formatted
	}

	return BudgetResponse{
		ID:          budget.ID.String(),
		Amount:      amount,
		Description: budget.Description,
		StartDate:   budget.StartDate.Format(DateFormat),
		EndDate:     endDate,
		CreatedAt:   budget.CreatedAt.Format(DateFormat),
	}
}

// ToBudgetListResponse converts a slice of Budget entities.
func ToBudgetListResponse(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}
