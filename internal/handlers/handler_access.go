package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/gin-gonic/gin"
)

type accessHandler struct {
	access portssvc.AccessSvcFacade
}

// RegisterAccessRoutes registers routes of the access registry.
func RegisterAccessRoutes(rg *gin.RouterGroup, access portssvc.AccessSvcFacade) {
	h := &accessHandler{access: access}

	roles := rg.Group("/roles")
	{
		roles.GET("/me", h.getCallerRoles)
		roles.GET("/:role", h.getRoleMembers)
		roles.POST("/grant", h.grantRole)
		roles.POST("/revoke", h.revokeRole)
		roles.POST("/renounce", h.renounceRole)
		roles.PUT("/admin", h.setRoleAdmin)
	}
}

// getCallerRoles godoc
// @Summary List the caller's roles
// @Tags roles
// @Produce json
// @Success 200 {object} dto.CallerRolesResponse
// @Security BearerAuth
// @Router /roles/me [get]
func (h *accessHandler) getCallerRoles(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	resp := dto.CallerRolesResponse{Account: caller, Roles: []domain.Role{}}
	for _, role := range domain.AllRoles {
		if h.access.HasRole(role, caller) {
			resp.Roles = append(resp.Roles, role)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// getRoleMembers godoc
// @Summary List the holders of a role
// @Tags roles
// @Produce json
// @Param role path string true "Role name, e.g. INVESTOR"
// @Success 200 {object} dto.RoleMembersResponse
// @Failure 404 {object} map[string]string "Unknown role"
// @Security BearerAuth
// @Router /roles/{role} [get]
func (h *accessHandler) getRoleMembers(c *gin.Context) {
	role, ok := domain.ParseRole(c.Param("role"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown role"})
		return
	}
	c.JSON(http.StatusOK, dto.RoleMembersResponse{
		Role:      role,
		AdminRole: h.access.GetRoleAdmin(role),
		Members:   h.access.RoleMembers(role),
	})
}

// grantRole godoc
// @Summary Grant a role
// @Tags roles
// @Accept json
// @Param request body dto.RoleRequest true "Role and account"
// @Success 204
// @Failure 403 {object} map[string]string "Caller does not administer the role"
// @Security BearerAuth
// @Router /roles/grant [post]
func (h *accessHandler) grantRole(c *gin.Context) {
	h.changeRole(c, h.access.GrantRole, "Failed to grant role")
}

// revokeRole godoc
// @Summary Revoke a role
// @Tags roles
// @Accept json
// @Param request body dto.RoleRequest true "Role and account"
// @Success 204
// @Security BearerAuth
// @Router /roles/revoke [post]
func (h *accessHandler) revokeRole(c *gin.Context) {
	h.changeRole(c, h.access.RevokeRole, "Failed to revoke role")
}

// renounceRole godoc
// @Summary Renounce one of the caller's roles
// @Tags roles
// @Accept json
// @Param request body dto.RoleRequest true "Role and the caller's own account"
// @Success 204
// @Security BearerAuth
// @Router /roles/renounce [post]
func (h *accessHandler) renounceRole(c *gin.Context) {
	h.changeRole(c, h.access.RenounceRole, "Failed to renounce role")
}

func (h *accessHandler) changeRole(c *gin.Context, apply func(ctx context.Context, role domain.Role, account, caller domain.Address) error, failure string) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, ok := mustAddress(c, req.Account)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), req.Role, account, caller); err != nil {
		respondError(c, err, failure)
		return
	}
	c.Status(http.StatusNoContent)
}

// setRoleAdmin godoc
// @Summary Change the administrating role of a role
// @Tags roles
// @Accept json
// @Param request body dto.SetRoleAdminRequest true "Role and its new admin role"
// @Success 204
// @Security BearerAuth
// @Router /roles/admin [put]
func (h *accessHandler) setRoleAdmin(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.SetRoleAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.access.SetRoleAdmin(c.Request.Context(), req.Role, req.AdminRole, caller); err != nil {
		respondError(c, err, "Failed to set role admin")
		return
	}
	c.Status(http.StatusNoContent)
}
