package api

import (
	"errors"
	"net/http"

	reqdto "booking-billing/internal/handler/dto/request"
	resdto "booking-billing/internal/handler/dto/response"
	"booking-billing/internal/handler/httperr"
	"booking-billing/internal/infra"
	"booking-billing/internal/usecase/commands"
	"booking-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatementHandler struct {
	cmds commands.StatementCommands
	q    queries.StatementQueries
}

func NewStatementHandler(cmds commands.StatementCommands, q queries.StatementQueries) *StatementHandler {
	return &StatementHandler{cmds: cmds, q: q}
}

// @Summary Generate statement
// @Description Generate the commission statement for the billing period containing the reference date
// @Tags statements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.GenerateStatementRequest false "Reference date"
// @Success 200 {object} resdto.StatementResponse
// @Success 201 {object} resdto.StatementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /resources/{id}/statements [post]
func (h *StatementHandler) Generate(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var req reqdto.GenerateStatementRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	result, err := h.cmds.Generate(c.Request.Context(), resourceID, req.RefTime())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, commands.ErrFxRateNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No fx rate for resource currency", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid billing configuration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate statement", nil)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromStatementView(result.Statement))
}

// @Summary Pay statement
// @Description Charge the statement amount through the payment gateway
// @Tags statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {object} resdto.StatementResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /statements/{id}/pay [post]
func (h *StatementHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement id", nil)
		return
	}

	result, err := h.cmds.Pay(c.Request.Context(), id)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatementView(result.Statement))
}

// @Summary Reconcile statement
// @Description Resolve a statement stuck in processing by querying the gateway for the charge outcome
// @Tags statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {object} resdto.StatementResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /statements/{id}/reconcile [post]
func (h *StatementHandler) Reconcile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement id", nil)
		return
	}

	result, err := h.cmds.Reconcile(c.Request.Context(), id)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatementView(result.Statement))
}

// @Summary Get statement
// @Tags statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {object} resdto.StatementResponse
// @Failure 404 {object} httperr.Response
// @Router /statements/{id} [get]
func (h *StatementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Statement not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load statement", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatementView(view))
}

// @Summary List statements for a resource
// @Tags statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param status query string false "Filter by status" Enums(pending, processing, paid, failed)
// @Success 200 {array} resdto.StatementListResponse
// @Router /resources/{id}/statements [get]
func (h *StatementHandler) ListByResource(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var q reqdto.ListStatementsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}

	items, err := h.q.ListByResource(c.Request.Context(), resourceID, q.StatusPtr())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list statements", nil)
		return
	}

	resp := make([]*resdto.StatementListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromStatementListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List payment attempts for a statement
// @Tags statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statement ID"
// @Success 200 {array} resdto.TransactionResponse
// @Router /statements/{id}/transactions [get]
func (h *StatementHandler) ListTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid statement id", nil)
		return
	}

	items, err := h.q.ListTransactions(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list transactions", nil)
		return
	}

	resp := make([]*resdto.TransactionResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromTransactionView(item)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatementHandler) abortPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrStatementNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Statement not found", nil)
	case errors.Is(err, commands.ErrStatementNotPayable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Statement is not payable", nil)
	case errors.Is(err, commands.ErrStatementNotProcessing):
		httperr.AbortWithError(c, http.StatusConflict, err, "Statement has no payment in flight", nil)
	case errors.Is(err, commands.ErrPaymentInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment already in progress", nil)
	case errors.Is(err, commands.ErrPaymentDeclined):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment declined", nil)
	case errors.Is(err, commands.ErrPaymentOutcomeUnknown):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Payment outcome unknown, reconcile later", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment failed", nil)
	}
}
