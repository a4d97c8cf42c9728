package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/faithwalk/anonboard/internal/auth"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// AdminUsernameKey 已认证管理员用户名在 gin.Context 中的键
const AdminUsernameKey = "admin_username"

// AdminAuth 管理员认证中间件。
// 从 Authorization: Bearer 头解析令牌，失败统一返回 401，不进入后续处理
func AdminAuth(jwt *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithAuthError(c, errors.NewAuthenticationError("Authorization token required", errors.CodeTokenRequired))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortWithAuthError(c, errors.NewAuthenticationError("Invalid authorization header", errors.CodeInvalidToken))
			return
		}

		claims, err := jwt.Parse(parts[1])
		if err != nil {
			switch {
			case stderrors.Is(err, auth.ErrTokenExpired):
				abortWithAuthError(c, errors.NewAuthenticationError("Token has expired", errors.CodeTokenExpired))
			default:
				abortWithAuthError(c, errors.NewAuthenticationError("Invalid token", errors.CodeInvalidToken))
			}
			return
		}

		c.Set(AdminUsernameKey, claims.Username)
		c.Next()
	}
}

// GetAdminUsername 从上下文获取已认证的管理员用户名
func GetAdminUsername(c *gin.Context) string {
	return c.GetString(AdminUsernameKey)
}

func abortWithAuthError(c *gin.Context, appErr *errors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
