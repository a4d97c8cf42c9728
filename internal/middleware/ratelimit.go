package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
)

// RateLimiter 基于 Redis 固定窗口计数的限流器。
// Redis 故障时放行（fail-open）：限流保护不应成为服务的单点
type RateLimiter struct {
	rdb    *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewRateLimiter 创建限流器；scope 用于区分不同限流域的计数键
func NewRateLimiter(rdb *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		scope:  scope,
		limit:  limit,
		window: window,
	}
}

// Allow 检查给定客户端是否放行，并递增计数
func (l *RateLimiter) Allow(ctx context.Context, clientIP string) bool {
	key := fmt.Sprintf("ratelimit:%s:%s", l.scope, clientIP)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		logger.Warn().
			Err(err).
			Str("scope", l.scope).
			Msg("限流计数失败，放行请求")
		return true
	}

	// 窗口内首个请求时设置过期，过期即窗口重置
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			logger.Warn().
				Err(err).
				Str("scope", l.scope).
				Msg("限流窗口设置失败")
		}
	}

	return count <= int64(l.limit)
}

// Middleware 返回限流中间件
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.Request.Context(), c.ClientIP()) {
			appErr := errors.NewRateLimitExceeded("Too many requests, please try again later")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		c.Next()
	}
}
