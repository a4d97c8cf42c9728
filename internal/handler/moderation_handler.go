package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/middleware"
	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/service"
)

// ModerationHandler 管理员审核接口
type ModerationHandler struct {
	moderation *service.ModerationService
}

// NewModerationHandler 创建 ModerationHandler
func NewModerationHandler(moderation *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// ModerateRequest 审核动作请求
type ModerateRequest struct {
	Action string  `json:"action" binding:"required"`
	Reason *string `json:"reason"`
}

// DeleteRequest 删除帖子请求；请求体可省略
type DeleteRequest struct {
	Reason *string `json:"reason"`
}

// ListPosts 按状态分页查询帖子，默认待审核队列
// GET /api/admin/posts?status=&limit=&offset=
func (h *ModerationHandler) ListPosts(c *gin.Context) {
	status := model.ApprovalStatus(c.DefaultQuery("status", string(model.ApprovalStatusPending)))

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, total, err := h.moderation.ListPosts(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
	})
}

// Moderate 执行审核动作（approve / reject）
// PUT /api/admin/posts/:id
func (h *ModerationHandler) Moderate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.moderation.Moderate(
		c.Request.Context(),
		id,
		model.ModerationAction(req.Action),
		req.Reason,
		middleware.GetAdminUsername(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete 删除帖子
// DELETE /api/admin/posts/:id
func (h *ModerationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req DeleteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	if err := h.moderation.Delete(c.Request.Context(), id, req.Reason, middleware.GetAdminUsername(c)); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "Post deleted")
}

// Stats 审核统计
// GET /api/admin/stats
func (h *ModerationHandler) Stats(c *gin.Context) {
	stats, err := h.moderation.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
