package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/usecase/income"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
	"github.com/personal-finance/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income CRUD endpoints.
type IncomeController struct {
	createUseCase *income.CreateIncomeUseCase
	listUseCase   *income.ListIncomesUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	listUseCase *income.ListIncomesUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
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

	created, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:     userID,
		IncomeType: req.IncomeType,
		Amount:     decimal.NewFromFloat(req.Amount),
		Date:       date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(created))
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	incomes, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(incomes))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateIncomeRequest
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

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		ID:         id,
		UserID:     userID,
		IncomeType: req.IncomeType,
		Amount:     decimal.NewFromFloat(req.Amount),
		Date:       date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(updated))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
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
