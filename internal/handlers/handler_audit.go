package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	audit portssvc.AuditSvc
}

// RegisterAuditRoutes registers the auditor-only audit trail routes.
func RegisterAuditRoutes(rg *gin.RouterGroup, audit portssvc.AuditSvc) {
	h := &auditHandler{audit: audit}

	a := rg.Group("/audit")
	{
		a.GET("/events", h.listEvents)
		a.GET("/history/:account", h.listHistory)
	}
}

// listEvents godoc
// @Summary List committed audit events
// @Description Pages through the audit trail, newest first (auditor only)
// @Tags audit
// @Produce json
// @Param account query string false "Only events touching this account"
// @Param action query string false "Only events of this action"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListAuditEventsResponse
// @Failure 403 {object} map[string]string "Caller is not an auditor"
// @Security BearerAuth
// @Router /audit/events [get]
func (h *auditHandler) listEvents(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListAuditEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.audit.ListAuditEvents(c.Request.Context(), params, caller)
	if err != nil {
		respondError(c, err, "Failed to list audit events")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listHistory godoc
// @Summary List the persisted audit history of an account
// @Tags audit
// @Produce json
// @Param account path string true "Account address"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListAuditEventsResponse
// @Failure 404 {object} map[string]string "No audit store configured"
// @Security BearerAuth
// @Router /audit/history/{account} [get]
func (h *auditHandler) listHistory(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	var params dto.ListAuditHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.audit.ListAuditHistory(c.Request.Context(), account, params, caller)
	if err != nil {
		respondError(c, err, "Failed to list audit history")
		return
	}
	c.JSON(http.StatusOK, resp)
}
