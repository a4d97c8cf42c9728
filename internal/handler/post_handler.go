package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/service"
)

// PostHandler 公共帖子接口
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler 创建 PostHandler
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// SubmitPostRequest 提交帖子请求
type SubmitPostRequest struct {
	Content string `json:"content"`
}

// PublicPost 公共视图的帖子：不暴露审核状态与命中词
type PublicPost struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Submit 提交匿名帖子
// POST /api/posts
func (h *PostHandler) Submit(c *gin.Context) {
	var req SubmitPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.posts.Submit(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	// 自动拒绝时只返回笼统提示，不暴露触发词，也不暴露帖子 ID
	if result.AutoRejected {
		c.JSON(http.StatusOK, gin.H{
			"status":  string(model.ApprovalStatusRejected),
			"message": "Your post could not be published because it violates community guidelines",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      result.Post.ID,
		"status":  string(result.Post.ApprovalStatus),
		"message": "Post submitted and pending review",
	})
}

// List 公共帖子列表：仅已通过的帖子
// GET /api/posts?limit=&offset=
func (h *PostHandler) List(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, total, err := h.posts.ListApproved(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]PublicPost, len(posts))
	for i, post := range posts {
		result[i] = PublicPost{
			ID:        post.ID,
			Content:   post.Content,
			Timestamp: post.Timestamp,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": result,
		"total": total,
	})
}
