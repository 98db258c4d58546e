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

type BillingHandler struct {
	enforcement  commands.EnforcementCommands
	resourceCmds commands.ResourceCommands
	q            queries.BillingQueries
}

func NewBillingHandler(
	enforcement commands.EnforcementCommands,
	resourceCmds commands.ResourceCommands,
	q queries.BillingQueries,
) *BillingHandler {
	return &BillingHandler{enforcement: enforcement, resourceCmds: resourceCmds, q: q}
}

// @Summary Billable summary
// @Description Preview what the current period's statement would contain if generated now
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param ref query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BillableSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/billable-summary [get]
func (h *BillingHandler) BillableSummary(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var q reqdto.PeriodQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}

	view, err := h.q.BillableSummary(c.Request.Context(), resourceID, q.RefTime())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource or fx rate not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build summary", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillableSummaryView(view))
}

// @Summary List conflicts
// @Description List the period's reservations with double-booking flags
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param ref query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ConflictResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/conflicts [get]
func (h *BillingHandler) Conflicts(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var q reqdto.PeriodQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}

	views, err := h.q.Conflicts(c.Request.Context(), resourceID, q.RefTime())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list conflicts", nil)
		return
	}

	resp := make([]*resdto.ConflictResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromConflictView(v)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Run enforcement sweep
// @Description Enforce every overdue unpaid statement immediately instead of waiting for the background worker
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /billing/sweep [post]
func (h *BillingHandler) Sweep(c *gin.Context) {
	result, err := h.enforcement.Sweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}

// @Summary List reactivation candidates
// @Description List deactivated resources whose enforced statements have all been paid
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReactivationCandidateResponse
// @Router /billing/reactivation-eligible [get]
func (h *BillingHandler) ReactivationEligible(c *gin.Context) {
	views, err := h.q.ReactivationEligible(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list candidates", nil)
		return
	}

	resp := make([]*resdto.ReactivationCandidateResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromReactivationCandidateView(v)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reactivate resource
// @Description Turn a deactivated resource back on once its enforced statements are paid
// @Tags billing
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources/{id}/activate [post]
func (h *BillingHandler) Reactivate(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	if err := h.resourceCmds.Reactivate(c.Request.Context(), resourceID); err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, commands.ErrResourceAlreadyActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource is already active", nil)
		case errors.Is(err, commands.ErrOutstandingStatements):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource has unpaid enforced statements", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reactivation failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
