package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/middleware"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/service"
)

// AdminHandler 管理员账号接口
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 令牌刷新请求
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login 管理员登录
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RefreshToken 刷新令牌
// POST /api/admin/refresh-token
func (h *AdminHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.admins.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ChangePassword 修改当前管理员密码
// PUT /api/admin/change-password
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	username := middleware.GetAdminUsername(c)
	if username == "" {
		respondError(c, errors.NewAuthenticationError("Authorization token required", errors.CodeTokenRequired))
		return
	}

	if err := h.admins.ChangePassword(c.Request.Context(), username, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "Password updated")
}
