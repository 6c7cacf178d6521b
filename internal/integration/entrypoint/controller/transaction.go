package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles the transaction log and allowance endpoints.
type TransactionController struct {
	listHistoryUseCase     *ledger.ListHistoryUseCase
	updateAllowanceUseCase *ledger.UpdateAllowanceUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listHistoryUseCase *ledger.ListHistoryUseCase,
	updateAllowanceUseCase *ledger.UpdateAllowanceUseCase,
) *TransactionController {
	return &TransactionController{
		listHistoryUseCase:     listHistoryUseCase,
		updateAllowanceUseCase: updateAllowanceUseCase,
	}
}

// List handles GET /transactions requests.
// Supports ?type=all|income|expense and ?search= query parameters.
func (c *TransactionController) List(ctx *gin.Context) {
	filter := ledger.HistoryFilter(ctx.DefaultQuery("type", string(ledger.HistoryFilterAll)))
	switch filter {
	case ledger.HistoryFilterAll, ledger.HistoryFilterIncome, ledger.HistoryFilterExpense:
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "type must be one of: all, income, expense",
		})
		return
	}

	input := ledger.ListHistoryInput{
		Filter: filter,
		Search: ctx.Query("search"),
	}

	output, err := c.listHistoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(output))
}

// UpdateAllowance handles PUT /allowance requests.
func (c *TransactionController) UpdateAllowance(ctx *gin.Context) {
	var req dto.UpdateAllowanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	input := ledger.UpdateAllowanceInput{
		Allowance: decimal.NewFromFloat(req.Allowance),
	}

	output, err := c.updateAllowanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllowanceResponse(output))
}
