package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/service"
)

// FilterHandler 过滤词管理接口
type FilterHandler struct {
	filters *service.WordFilterService
}

// NewFilterHandler 创建 FilterHandler
func NewFilterHandler(filters *service.WordFilterService) *FilterHandler {
	return &FilterHandler{filters: filters}
}

// AddFilterRequest 新增过滤词请求
type AddFilterRequest struct {
	Word     string `json:"word"`
	Severity string `json:"severity"`
}

// List 过滤词列表，严重级别降序、词升序
// GET /api/admin/filters
func (h *FilterHandler) List(c *gin.Context) {
	filters, err := h.filters.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"filters": filters})
}

// Create 新增过滤词
// POST /api/admin/filters
func (h *FilterHandler) Create(c *gin.Context) {
	var req AddFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	filter, err := h.filters.Add(c.Request.Context(), req.Word, req.Severity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"filter": filter})
}

// Delete 删除过滤词
// DELETE /api/admin/filters/:id
func (h *FilterHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.filters.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "Filter deleted")
}
