package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/gin-gonic/gin"
)

type singleVaultHandler struct {
	vault portssvc.SingleAssetVaultSvc
}

// RegisterSingleVaultRoutes registers routes of the single-asset vault.
func RegisterSingleVaultRoutes(rg *gin.RouterGroup, vault portssvc.SingleAssetVaultSvc) {
	h := &singleVaultHandler{vault: vault}

	single := rg.Group("/single-vault")
	{
		single.GET("", h.getState)
		single.GET("/balance", h.getMyBalance)
		single.GET("/balances/:account", h.viewBalance)
		single.POST("/deposit", h.deposit)
		single.POST("/withdraw", h.withdraw)
		single.POST("/emergency-withdraw", h.emergencyWithdraw)
		single.POST("/pause", h.pause)
		single.POST("/unpause", h.unpause)
		single.PUT("/limit", h.setDepositLimit)
		single.POST("/recover", h.recoverTokens)
	}
}

// getState godoc
// @Summary Get single-asset vault state
// @Tags single-vault
// @Produce json
// @Success 200 {object} dto.SingleVaultStateResponse
// @Security BearerAuth
// @Router /single-vault [get]
func (h *singleVaultHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SingleVaultStateResponse{
		Asset:          h.vault.Asset(),
		State:          h.vault.State(),
		TotalDeposited: h.vault.TotalDeposited(),
		DepositLimit:   h.vault.DepositLimit(),
	})
}

// getMyBalance godoc
// @Summary Get own balance in the single-asset vault
// @Tags single-vault
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /single-vault/balance [get]
func (h *singleVaultHandler) getMyBalance(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	balance, err := h.vault.GetMyBalance(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: h.vault.Asset(), Account: caller, Balance: balance})
}

// viewBalance godoc
// @Summary View an account balance in the single-asset vault
// @Tags single-vault
// @Produce json
// @Param account path string true "Account address"
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /single-vault/balances/{account} [get]
func (h *singleVaultHandler) viewBalance(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	balance, err := h.vault.ViewBalance(c.Request.Context(), account, caller)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: h.vault.Asset(), Account: account, Balance: balance})
}

// deposit godoc
// @Summary Deposit into the single-asset vault
// @Tags single-vault
// @Accept json
// @Produce json
// @Param deposit body dto.SingleVaultAmountRequest true "Amount"
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /single-vault/deposit [post]
func (h *singleVaultHandler) deposit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SingleVaultAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	balance, err := h.vault.Deposit(c.Request.Context(), req.Amount, caller)
	if err != nil {
		respondError(c, err, "Failed to deposit")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: h.vault.Asset(), Account: caller, Balance: balance})
}

// withdraw godoc
// @Summary Withdraw from the single-asset vault
// @Tags single-vault
// @Accept json
// @Produce json
// @Param withdrawal body dto.SingleVaultAmountRequest true "Amount"
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /single-vault/withdraw [post]
func (h *singleVaultHandler) withdraw(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SingleVaultAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	balance, err := h.vault.Withdraw(c.Request.Context(), req.Amount, caller)
	if err != nil {
		respondError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: h.vault.Asset(), Account: caller, Balance: balance})
}

// emergencyWithdraw godoc
// @Summary Emergency withdrawal from the single-asset vault
// @Tags single-vault
// @Produce json
// @Success 200 {object} dto.BalanceResponse "Amount withdrawn"
// @Security BearerAuth
// @Router /single-vault/emergency-withdraw [post]
func (h *singleVaultHandler) emergencyWithdraw(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	amount, err := h.vault.EmergencyWithdraw(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: h.vault.Asset(), Account: caller, Balance: amount})
}

// pause godoc
// @Summary Pause the single-asset vault
// @Tags single-vault
// @Success 204
// @Security BearerAuth
// @Router /single-vault/pause [post]
func (h *singleVaultHandler) pause(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.vault.Pause(c.Request.Context(), caller); err != nil {
		respondError(c, err, "Failed to pause vault")
		return
	}
	c.Status(http.StatusNoContent)
}

// unpause godoc
// @Summary Unpause the single-asset vault
// @Tags single-vault
// @Success 204
// @Security BearerAuth
// @Router /single-vault/unpause [post]
func (h *singleVaultHandler) unpause(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.vault.Unpause(c.Request.Context(), caller); err != nil {
		respondError(c, err, "Failed to unpause vault")
		return
	}
	c.Status(http.StatusNoContent)
}

// setDepositLimit godoc
// @Summary Set the limit of the single-asset vault
// @Tags single-vault
// @Accept json
// @Param request body dto.SingleVaultLimitRequest true "Limit"
// @Success 204
// @Security BearerAuth
// @Router /single-vault/limit [put]
func (h *singleVaultHandler) setDepositLimit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SingleVaultLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.vault.SetDepositLimit(c.Request.Context(), req.Limit, caller); err != nil {
		respondError(c, err, "Failed to set deposit limit")
		return
	}
	c.Status(http.StatusNoContent)
}

// recoverTokens godoc
// @Summary Recover a foreign asset from the single-asset vault
// @Tags single-vault
// @Accept json
// @Param request body dto.RecoverTokensRequest true "Asset and amount"
// @Success 204
// @Security BearerAuth
// @Router /single-vault/recover [post]
func (h *singleVaultHandler) recoverTokens(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.RecoverTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}
	if err := h.vault.RecoverERC20(c.Request.Context(), asset, req.Amount, caller); err != nil {
		respondError(c, err, "Failed to recover tokens")
		return
	}
	c.Status(http.StatusNoContent)
}
