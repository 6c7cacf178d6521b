package controller

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/usecase/workflow"
	"github.com/moneytree/backend/internal/domain/entity"
	"github.com/moneytree/backend/internal/integration/entrypoint/dto"
)

// WorkflowController handles the categorization workflow endpoints.
type WorkflowController struct {
	startUseCase        *workflow.StartSessionUseCase
	getUseCase          *workflow.GetSessionUseCase
	submitAmountUseCase *workflow.SubmitAmountUseCase
	selectTypeUseCase   *workflow.SelectTypeUseCase
	submitContextUC     *workflow.SubmitContextUseCase
	selectIncomeUC      *workflow.SelectIncomeSourceUseCase
	scanBillUseCase     *workflow.ScanBillUseCase
	confirmUseCase      *workflow.ConfirmUseCase
	restartUseCase      *workflow.RestartUseCase
	cancelUseCase       *workflow.CancelUseCase
}

// NewWorkflowController creates a new workflow controller instance.
func NewWorkflowController(
	startUseCase *workflow.StartSessionUseCase,
	getUseCase *workflow.GetSessionUseCase,
	submitAmountUseCase *workflow.SubmitAmountUseCase,
	selectTypeUseCase *workflow.SelectTypeUseCase,
	submitContextUC *workflow.SubmitContextUseCase,
	selectIncomeUC *workflow.SelectIncomeSourceUseCase,
	scanBillUseCase *workflow.ScanBillUseCase,
	confirmUseCase *workflow.ConfirmUseCase,
	restartUseCase *workflow.RestartUseCase,
	cancelUseCase *workflow.CancelUseCase,
) *WorkflowController {
	return &WorkflowController{
		startUseCase:        startUseCase,
		getUseCase:          getUseCase,
		submitAmountUseCase: submitAmountUseCase,
		selectTypeUseCase:   selectTypeUseCase,
		submitContextUC:     submitContextUC,
		selectIncomeUC:      selectIncomeUC,
		scanBillUseCase:     scanBillUseCase,
		confirmUseCase:      confirmUseCase,
		restartUseCase:      restartUseCase,
		cancelUseCase:       cancelUseCase,
	}
}

// sessionID parses the :id path parameter.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// Start handles POST /workflow requests.
func (c *WorkflowController) Start(ctx *gin.Context) {
	output, err := c.startUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output.Session))
}

// Get handles GET /workflow/:id requests. Clients poll this while the
// session sits in ai_thinking.
func (c *WorkflowController) Get(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), workflow.GetSessionInput{SessionID: id})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// QuickOptions handles GET /workflow/quick-options requests.
func (c *WorkflowController) QuickOptions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"options": dto.ToQuickOptionResponses(workflow.QuickOptions()),
	})
}

// SubmitAmount handles POST /workflow/:id/amount requests.
func (c *WorkflowController) SubmitAmount(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.submitAmountUseCase.Execute(ctx.Request.Context(), workflow.SubmitAmountInput{
		SessionID: id,
		Amount:    decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// SelectType handles POST /workflow/:id/type requests.
func (c *WorkflowController) SelectType(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req dto.SelectTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.selectTypeUseCase.Execute(ctx.Request.Context(), workflow.SelectTypeInput{
		SessionID: id,
		Type:      entity.TransactionType(req.Type),
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// SubmitContext handles POST /workflow/:id/context requests.
// The session moves to ai_thinking and analysis continues asynchronously;
// 202 Accepted signals the client to poll.
func (c *WorkflowController) SubmitContext(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitContextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.submitContextUC.Execute(ctx.Request.Context(), workflow.SubmitContextInput{
		SessionID: id,
		Context:   req.Context,
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToSessionResponse(output.Session))
}

// SelectIncomeSource handles POST /workflow/:id/income-source requests.
func (c *WorkflowController) SelectIncomeSource(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req dto.SelectIncomeSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.selectIncomeUC.Execute(ctx.Request.Context(), workflow.SelectIncomeSourceInput{
		SessionID: id,
		Source:    workflow.IncomeSource(req.Source),
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CommitResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Balance:     output.Balance.String(),
	})
}

// ScanBill handles POST /workflow/:id/scan requests.
func (c *WorkflowController) ScanBill(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req dto.ScanBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image must be base64 encoded",
		})
		return
	}

	output, err := c.scanBillUseCase.Execute(ctx.Request.Context(), workflow.ScanBillInput{
		SessionID:  id,
		ImageBytes: imageBytes,
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToSessionResponse(output.Session))
}

// Confirm handles POST /workflow/:id/confirm requests.
func (c *WorkflowController) Confirm(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	// The body is optional: an empty confirm accepts the suggestion as-is.
	var req dto.ConfirmRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), workflow.ConfirmInput{
		SessionID:    id,
		SubCategory:  req.SubCategory,
		IsForFriends: req.IsForFriends,
	})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CommitResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Balance:     output.Balance.String(),
	})
}

// Restart handles POST /workflow/:id/restart requests.
func (c *WorkflowController) Restart(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	output, err := c.restartUseCase.Execute(ctx.Request.Context(), workflow.RestartInput{SessionID: id})
	if err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// Cancel handles DELETE /workflow/:id requests.
func (c *WorkflowController) Cancel(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := c.cancelUseCase.Execute(ctx.Request.Context(), workflow.CancelInput{SessionID: id}); err != nil {
		handleWorkflowError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
