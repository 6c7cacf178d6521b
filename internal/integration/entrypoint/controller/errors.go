package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/moneytree/backend/internal/domain/error"
	"github.com/moneytree/backend/internal/integration/entrypoint/dto"
)

// handleLedgerError maps ledger errors to HTTP responses.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeCategoryTypeMismatch,
		domainerror.ErrCodeInvalidAllowance:
		return http.StatusBadRequest
	case domainerror.ErrCodeLedgerPersist:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// handleWorkflowError maps workflow errors to HTTP responses. Ledger errors
// surface here too: the confirmation and income steps commit through the
// ledger.
func handleWorkflowError(ctx *gin.Context, err error) {
	var workflowErr *domainerror.WorkflowError
	if errors.As(err, &workflowErr) {
		ctx.JSON(statusCodeForWorkflowError(workflowErr.Code), dto.ErrorResponse{
			Error: workflowErr.Message,
			Code:  string(workflowErr.Code),
		})
		return
	}

	handleLedgerError(ctx, err)
}

// statusCodeForWorkflowError maps workflow error codes to HTTP status codes.
func statusCodeForWorkflowError(code domainerror.WorkflowErrorCode) int {
	switch code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidWorkflowState,
		domainerror.ErrCodeAnalysisInFlight:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyContext,
		domainerror.ErrCodeInvalidIncomeSource,
		domainerror.ErrCodeEmptyBillImage,
		domainerror.ErrCodeInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleInsightError maps insight errors to HTTP responses.
func handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
