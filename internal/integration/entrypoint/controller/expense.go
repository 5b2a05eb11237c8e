package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/usecase/expense"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
	"github.com/personal-finance/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense CRUD endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	expenses, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ID:          id,
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, userID); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter or writes a 400.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondLedgerError maps ledger domain errors to HTTP responses.
func respondLedgerError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrExpenseNotFound),
		errors.Is(err, domainerror.ErrIncomeNotFound),
		errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrBudgetNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  ledgerErrorCode(err),
		})

	case errors.Is(err, domainerror.ErrInvalidAmount),
		errors.Is(err, domainerror.ErrBudgetClosed),
		errors.Is(err, domainerror.ErrInvalidBudgetPeriod):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  ledgerErrorCode(err),
		})

	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  string(domainerror.ErrCodeLedgerInternalError),
		})
	}
}

// ledgerErrorCode extracts the structured code from a ledger error
// chain, if present.
func ledgerErrorCode(err error) string {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return string(ledgerErr.Code)
	}
	return ""
}
