package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/SscSPs/securities_vault/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// tokenHandler handles HTTP requests for the security token and its compliance rules.
type tokenHandler struct {
	compliance portssvc.ComplianceSvcFacade
	regulator  portssvc.RegulatorSvc
}

// RegisterTokenRoutes registers routes of the security token, the compliance
// engine and the forced transfer authority.
func RegisterTokenRoutes(rg *gin.RouterGroup, compliance portssvc.ComplianceSvcFacade, regulator portssvc.RegulatorSvc) {
	h := &tokenHandler{compliance: compliance, regulator: regulator}

	token := rg.Group("/token")
	{
		token.GET("", h.getTokenInfo)
		token.GET("/balances/:account", h.getBalance)
		token.GET("/compliance/:account", h.getComplianceStatus)
		token.GET("/can-transfer", h.canTransfer)

		token.POST("/transfer", h.transfer)
		token.POST("/issue", h.issue)

		token.POST("/whitelist", h.addToWhitelist)
		token.DELETE("/whitelist/:account", h.removeFromWhitelist)
		token.PUT("/partitions", h.assignPartition)

		token.POST("/force-transfer", h.forceTransfer)
	}
}

// getTokenInfo godoc
// @Summary Get security token info
// @Tags token
// @Produce json
// @Success 200 {object} dto.TokenInfoResponse
// @Security BearerAuth
// @Router /token [get]
func (h *tokenHandler) getTokenInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TokenInfoResponse{
		Asset:       h.compliance.Asset(),
		TotalSupply: h.compliance.TotalSupply(),
	})
}

// getBalance godoc
// @Summary Get a security token balance
// @Tags token
// @Produce json
// @Param account path string true "Account address"
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /token/balances/{account} [get]
func (h *tokenHandler) getBalance(c *gin.Context) {
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		Asset:   h.compliance.Asset(),
		Account: account,
		Balance: h.compliance.BalanceOf(account),
	})
}

// getComplianceStatus godoc
// @Summary Get the whitelist status and partition of an account
// @Tags token
// @Produce json
// @Param account path string true "Account address"
// @Success 200 {object} domain.ComplianceStatus
// @Security BearerAuth
// @Router /token/compliance/{account} [get]
func (h *tokenHandler) getComplianceStatus(c *gin.Context) {
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.compliance.Status(account))
}

// canTransfer godoc
// @Summary Check whether a transfer would be admitted
// @Tags token
// @Produce json
// @Param from query string true "Sender"
// @Param to query string true "Recipient"
// @Param amount query string true "Amount in base units"
// @Param partition query string false "Partition"
// @Success 200 {object} dto.CanTransferResponse
// @Security BearerAuth
// @Router /token/can-transfer [get]
func (h *tokenHandler) canTransfer(c *gin.Context) {
	var params dto.CanTransferParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	from, ok := mustAddress(c, params.From)
	if !ok {
		return
	}
	to, ok := mustAddress(c, params.To)
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		respondError(c, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, params.Amount), "Invalid amount")
		return
	}

	var allowed bool
	if params.Partition != "" {
		allowed = h.compliance.CanTransferByPartition(domain.Partition(params.Partition), from, to, amount)
	} else {
		allowed = h.compliance.CanTransfer(from, to, amount)
	}
	c.JSON(http.StatusOK, dto.CanTransferResponse{Allowed: allowed})
}

// transfer godoc
// @Summary Transfer security tokens
// @Description Sends the caller's tokens. Both parties must be whitelisted and share a partition.
// @Tags token
// @Accept json
// @Param request body dto.TransferRequest true "Recipient, amount and optional partition"
// @Success 204
// @Failure 422 {object} map[string]string "Compliance check failed or insufficient balance"
// @Security BearerAuth
// @Router /token/transfer [post]
func (h *tokenHandler) transfer(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	to, ok := mustAddress(c, req.To)
	if !ok {
		return
	}

	var err error
	if req.Partition != "" {
		err = h.compliance.TransferByPartition(c.Request.Context(), domain.Partition(req.Partition), to, req.Amount, caller)
	} else {
		err = h.compliance.Transfer(c.Request.Context(), to, req.Amount, caller)
	}
	if err != nil {
		respondError(c, err, "Failed to transfer")
		return
	}
	c.Status(http.StatusNoContent)
}

// issue godoc
// @Summary Issue security tokens
// @Tags token
// @Accept json
// @Param request body dto.IssueRequest true "Recipient and amount"
// @Success 204
// @Security BearerAuth
// @Router /token/issue [post]
func (h *tokenHandler) issue(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	to, ok := mustAddress(c, req.To)
	if !ok {
		return
	}
	if err := h.compliance.Issue(c.Request.Context(), to, req.Amount, caller); err != nil {
		respondError(c, err, "Failed to issue tokens")
		return
	}
	c.Status(http.StatusNoContent)
}

// addToWhitelist godoc
// @Summary Whitelist an account
// @Tags token
// @Accept json
// @Param request body dto.WhitelistRequest true "Account"
// @Success 204
// @Security BearerAuth
// @Router /token/whitelist [post]
func (h *tokenHandler) addToWhitelist(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, ok := mustAddress(c, req.Account)
	if !ok {
		return
	}
	if err := h.compliance.AddToWhitelist(c.Request.Context(), account, caller); err != nil {
		respondError(c, err, "Failed to whitelist account")
		return
	}
	c.Status(http.StatusNoContent)
}

// removeFromWhitelist godoc
// @Summary Remove an account from the whitelist
// @Tags token
// @Param account path string true "Account address"
// @Success 204
// @Security BearerAuth
// @Router /token/whitelist/{account} [delete]
func (h *tokenHandler) removeFromWhitelist(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	if err := h.compliance.RemoveFromWhitelist(c.Request.Context(), account, caller); err != nil {
		respondError(c, err, "Failed to remove account from whitelist")
		return
	}
	c.Status(http.StatusNoContent)
}

// assignPartition godoc
// @Summary Assign a partition to a whitelisted account
// @Tags token
// @Accept json
// @Param request body dto.AssignPartitionRequest true "Account and partition"
// @Success 204
// @Failure 422 {object} map[string]string "Account not whitelisted"
// @Security BearerAuth
// @Router /token/partitions [put]
func (h *tokenHandler) assignPartition(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.AssignPartitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, ok := mustAddress(c, req.Account)
	if !ok {
		return
	}
	if err := h.compliance.AssignPartition(c.Request.Context(), account, domain.Partition(req.Partition), caller); err != nil {
		respondError(c, err, "Failed to assign partition")
		return
	}
	c.Status(http.StatusNoContent)
}

// forceTransfer godoc
// @Summary Force a transfer
// @Description Moves tokens between any two accounts without compliance checks (regulator only)
// @Tags token
// @Accept json
// @Produce json
// @Param request body dto.ForceTransferRequest true "Parties, amount and reason"
// @Success 200 {object} domain.AuditEvent
// @Failure 403 {object} map[string]string "Caller is not a regulator"
// @Security BearerAuth
// @Router /token/force-transfer [post]
func (h *tokenHandler) forceTransfer(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.ForceTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	from, ok := mustAddress(c, req.From)
	if !ok {
		return
	}
	to, ok := mustAddress(c, req.To)
	if !ok {
		return
	}

	event, err := h.regulator.ForceTransfer(c.Request.Context(), from, to, req.Amount, req.Reason, caller)
	if err != nil {
		respondError(c, err, "Failed to force transfer")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Forced transfer recorded", slog.String("event_id", event.EventID))
	c.JSON(http.StatusOK, event)
}
