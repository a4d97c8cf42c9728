// Package handler 实现 HTTP 处理层：绑定请求、调用业务逻辑、翻译错误
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/middleware"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
)

// respondError 将业务错误翻译为 HTTP 响应。
// 内部错误只返回笼统文案，完整细节记入日志
func respondError(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError("Internal server error").WithError(err)
	}

	if appErr.Type == errors.ErrorTypeInternal {
		logger.Error().
			Err(appErr).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("请求处理失败")
	}

	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}

// respondBindError 处理请求体绑定失败
func respondBindError(c *gin.Context, err error) {
	respondError(c, errors.NewInvalidRequest("Invalid request body", errors.CodeInvalidRequest).WithError(err))
}

// parsePagination 解析 limit/offset 查询参数；非法数字返回错误
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit, err = parseQueryInt(c, "limit", 0)
	if err != nil {
		return 0, 0, errors.NewInvalidRequest("limit must be an integer", errors.CodeInvalidRequest)
	}

	offset, err = parseQueryInt(c, "offset", 0)
	if err != nil {
		return 0, 0, errors.NewInvalidRequest("offset must be an integer", errors.CodeInvalidRequest)
	}

	return limit, offset, nil
}

// parseIDParam 解析路径中的整数 ID
func parseIDParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, errors.NewInvalidRequest("Invalid "+name, errors.CodeInvalidRequest)
	}
	return id, nil
}

func parseQueryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// messageResponse 简单消息响应
func messageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
