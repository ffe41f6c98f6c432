package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/SscSPs/securities_vault/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// vaultHandler handles HTTP requests for the multi-asset vault.
type vaultHandler struct {
	vaultService     portssvc.VaultSvcFacade
	valuationService portssvc.ValuationSvc
}

func newVaultHandler(vs portssvc.VaultSvcFacade, valuation portssvc.ValuationSvc) *vaultHandler {
	return &vaultHandler{
		vaultService:     vs,
		valuationService: valuation,
	}
}

// RegisterVaultRoutes registers routes of the multi-asset vault.
func RegisterVaultRoutes(rg *gin.RouterGroup, vaultService portssvc.VaultSvcFacade, valuationService portssvc.ValuationSvc) {
	h := newVaultHandler(vaultService, valuationService)

	vault := rg.Group("/vault")
	{
		vault.GET("", h.getState)
		vault.GET("/valuation", h.getValuation)
		vault.GET("/balance", h.getMyBalance)
		vault.GET("/balances/:account", h.viewBalance)

		vault.POST("/deposit", h.deposit)
		vault.POST("/withdraw", h.withdraw)
		vault.POST("/emergency-withdraw", h.emergencyWithdraw)

		vault.POST("/pause", h.pause)
		vault.POST("/unpause", h.unpause)
		vault.PUT("/limits", h.setDepositLimit)
		vault.PUT("/limits/batch", h.setDepositLimits)
		vault.PUT("/account-limits", h.setAccountDepositLimit)
		vault.PUT("/assets", h.setAssetWhitelisted)
		vault.POST("/recover", h.recoverTokens)
	}
}

// getState godoc
// @Summary Get vault state
// @Description Returns the pause state and the position of every configured asset
// @Tags vault
// @Produce json
// @Success 200 {object} dto.VaultStateResponse
// @Security BearerAuth
// @Router /vault [get]
func (h *vaultHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VaultStateResponse{
		State:     h.vaultService.State(),
		Positions: h.vaultService.Positions(),
	})
}

// getValuation godoc
// @Summary Get total value locked
// @Tags vault
// @Produce json
// @Success 200 {object} dto.ValuationResponse
// @Failure 502 {object} map[string]string "Price oracle unavailable"
// @Security BearerAuth
// @Router /vault/valuation [get]
func (h *vaultHandler) getValuation(c *gin.Context) {
	total, assets, err := h.valuationService.TotalValueLocked(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute total value locked")
		return
	}
	c.JSON(http.StatusOK, dto.ValuationResponse{TotalValueLocked: total, Assets: assets})
}

// getMyBalance godoc
// @Summary Get own balance
// @Description Returns the caller's balance of an asset (investor only)
// @Tags vault
// @Produce json
// @Param asset query string true "Asset address"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} map[string]string "Caller is not an investor"
// @Security BearerAuth
// @Router /vault/balance [get]
func (h *vaultHandler) getMyBalance(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	asset, ok := mustAddress(c, c.Query("asset"))
	if !ok {
		return
	}

	balance, err := h.vaultService.GetMyBalance(c.Request.Context(), asset, caller)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: asset, Account: caller, Balance: balance})
}

// viewBalance godoc
// @Summary View an account balance
// @Description Returns the balance of any account (auditor only)
// @Tags vault
// @Produce json
// @Param account path string true "Account address"
// @Param asset query string true "Asset address"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} map[string]string "Caller is not an auditor"
// @Security BearerAuth
// @Router /vault/balances/{account} [get]
func (h *vaultHandler) viewBalance(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	asset, ok := mustAddress(c, c.Query("asset"))
	if !ok {
		return
	}

	balance, err := h.vaultService.ViewBalance(c.Request.Context(), asset, account, caller)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: asset, Account: account, Balance: balance})
}

// deposit godoc
// @Summary Deposit an asset
// @Description Pulls an approved amount of the asset from the caller into custody
// @Tags vault
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Asset and amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Caller is not an investor"
// @Failure 409 {object} map[string]string "Vault is paused"
// @Failure 422 {object} map[string]string "Deposit limit exceeded or asset not whitelisted"
// @Failure 502 {object} map[string]string "Asset transfer failed"
// @Security BearerAuth
// @Router /vault/deposit [post]
func (h *vaultHandler) deposit(c *gin.Context) {
	h.move(c, "deposit", h.vaultService.Deposit)
}

// withdraw godoc
// @Summary Withdraw an asset
// @Tags vault
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawRequest true "Asset and amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 409 {object} map[string]string "Vault is paused"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Security BearerAuth
// @Router /vault/withdraw [post]
func (h *vaultHandler) withdraw(c *gin.Context) {
	h.move(c, "withdraw", h.vaultService.Withdraw)
}

type balanceChange func(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error)

func (h *vaultHandler) move(c *gin.Context, operation string, apply balanceChange) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}

	balance, err := apply(c.Request.Context(), asset, req.Amount, caller)
	if err != nil {
		respondError(c, err, "Failed to "+operation)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Vault balance changed",
		slog.String("operation", operation), slog.String("asset", asset.String()))
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: asset, Account: caller, Balance: balance})
}

// emergencyWithdraw godoc
// @Summary Emergency withdrawal
// @Description Returns the caller's whole balance of the asset while the vault is paused
// @Tags vault
// @Accept json
// @Produce json
// @Param request body dto.EmergencyWithdrawRequest true "Asset"
// @Success 200 {object} dto.BalanceResponse "Amount withdrawn"
// @Failure 409 {object} map[string]string "Vault is not paused"
// @Security BearerAuth
// @Router /vault/emergency-withdraw [post]
func (h *vaultHandler) emergencyWithdraw(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.EmergencyWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}

	amount, err := h.vaultService.EmergencyWithdraw(c.Request.Context(), asset, caller)
	if err != nil {
		respondError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Asset: asset, Account: caller, Balance: amount})
}

// pause godoc
// @Summary Pause the vault
// @Tags vault
// @Success 204
// @Failure 409 {object} map[string]string "Already paused"
// @Security BearerAuth
// @Router /vault/pause [post]
func (h *vaultHandler) pause(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.vaultService.Pause(c.Request.Context(), caller); err != nil {
		respondError(c, err, "Failed to pause vault")
		return
	}
	c.Status(http.StatusNoContent)
}

// unpause godoc
// @Summary Unpause the vault
// @Tags vault
// @Success 204
// @Failure 409 {object} map[string]string "Not paused"
// @Security BearerAuth
// @Router /vault/unpause [post]
func (h *vaultHandler) unpause(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.vaultService.Unpause(c.Request.Context(), caller); err != nil {
		respondError(c, err, "Failed to unpause vault")
		return
	}
	c.Status(http.StatusNoContent)
}

// setDepositLimit godoc
// @Summary Set the deposit limit of an asset
// @Tags vault
// @Accept json
// @Param request body dto.SetDepositLimitRequest true "Asset and limit"
// @Success 204
// @Security BearerAuth
// @Router /vault/limits [put]
func (h *vaultHandler) setDepositLimit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SetDepositLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}
	if err := h.vaultService.SetDepositLimit(c.Request.Context(), asset, req.Limit, caller); err != nil {
		respondError(c, err, "Failed to set deposit limit")
		return
	}
	c.Status(http.StatusNoContent)
}

// setDepositLimits godoc
// @Summary Set several deposit limits at once
// @Description Applies every (asset, limit) pair or none of them
// @Tags vault
// @Accept json
// @Param request body dto.SetDepositLimitsRequest true "Parallel arrays of assets and limits"
// @Success 204
// @Failure 400 {object} map[string]string "Length mismatch or invalid entry"
// @Security BearerAuth
// @Router /vault/limits/batch [put]
func (h *vaultHandler) setDepositLimits(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SetDepositLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	// The zero address fails inside the batch so that nothing is applied.
	assets := make([]domain.AssetID, len(req.Assets))
	for i, raw := range req.Assets {
		assets[i] = domain.Address(strings.ToLower(raw))
	}
	if err := h.vaultService.SetDepositLimits(c.Request.Context(), assets, req.Limits, caller); err != nil {
		respondError(c, err, "Failed to set deposit limits")
		return
	}
	c.Status(http.StatusNoContent)
}

// setAccountDepositLimit godoc
// @Summary Override the deposit limit of one account
// @Tags vault
// @Accept json
// @Param request body dto.SetAccountDepositLimitRequest true "Asset, account and limit"
// @Success 204
// @Security BearerAuth
// @Router /vault/account-limits [put]
func (h *vaultHandler) setAccountDepositLimit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SetAccountDepositLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}
	account, ok := mustAddress(c, req.Account)
	if !ok {
		return
	}
	if err := h.vaultService.SetAccountDepositLimit(c.Request.Context(), asset, account, req.Limit, caller); err != nil {
		respondError(c, err, "Failed to set account deposit limit")
		return
	}
	c.Status(http.StatusNoContent)
}

// setAssetWhitelisted godoc
// @Summary Allow or forbid deposits of an asset
// @Tags vault
// @Accept json
// @Param request body dto.SetAssetWhitelistedRequest true "Asset and flag"
// @Success 204
// @Security BearerAuth
// @Router /vault/assets [put]
func (h *vaultHandler) setAssetWhitelisted(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SetAssetWhitelistedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	asset, ok := mustAddress(c, req.Asset)
	if !ok {
		return
	}
	if err := h.vaultService.SetAssetWhitelisted(c.Request.Context(), asset, *req.Allowed, caller); err != nil {
		respondError(c, err, "Failed to update asset whitelist")
		return
	}
	c.Status(http.StatusNoContent)
}

// recoverTokens godoc
// @Summary Recover a foreign asset
// @Description Sends an asset that is not managed by the vault back to the caller (admin only)
// @Tags vault
// @Accept json
// @Param request body dto.RecoverTokensRequest true "Asset and amount"
// @Success 204
// @Failure 400 {object} map[string]string "Asset is managed by the vault"
// @Security BearerAuth
// @Router /vault/recover [post]
func (h *vaultHandler) recoverTokens(c *gin.Context) {
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
	if err := h.vaultService.RecoverERC20(c.Request.Context(), asset, req.Amount, caller); err != nil {
		respondError(c, err, "Failed to recover tokens")
		return
	}
	c.Status(http.StatusNoContent)
}
