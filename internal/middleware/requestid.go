// Package middleware 提供 Gin 中间件
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/pkg/utils"
)

const (
	// RequestIDKey 请求 ID 在 gin.Context 中的键
	RequestIDKey = "request_id"
	// RequestIDHeader 请求 ID 响应头
	RequestIDHeader = "X-Request-ID"
)

// RequestID 为每个请求生成唯一 ID，写入上下文与响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID 从上下文获取请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
