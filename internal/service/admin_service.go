package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/faithwalk/anonboard/internal/auth"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/pkg/security"
	"github.com/faithwalk/anonboard/internal/repository"
)

// AdminService 管理员账号业务逻辑
type AdminService struct {
	admins repository.AdminUserRepository
	jwt    *auth.Manager
}

// NewAdminService 创建 AdminService
func NewAdminService(admins repository.AdminUserRepository, jwt *auth.Manager) *AdminService {
	return &AdminService{
		admins: admins,
		jwt:    jwt,
	}
}

// invalidCredentials 统一的登录失败错误。
// 用户不存在和密码错误返回同一文案，不暴露账号是否存在
func invalidCredentials() *errors.AppError {
	return errors.NewAuthenticationError("Invalid username or password", errors.CodeInvalidCredentials)
}

// Login 管理员登录，校验通过后签发 JWT
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrorTypeNotFound) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if !security.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn().Str("username", username).Msg("管理员登录失败：密码错误")
		return "", invalidCredentials()
	}

	token, err := s.jwt.Generate(user.Username)
	if err != nil {
		return "", errors.NewInternalError("Failed to generate token").WithError(err)
	}

	logger.Info().Str("username", username).Msg("管理员登录成功")
	return token, nil
}

// Refresh 刷新令牌：校验旧令牌、确认管理员仍然存在后重新签发
func (s *AdminService) Refresh(ctx context.Context, token string) (string, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return "", translateTokenError(err)
	}

	if _, err := s.admins.GetByUsername(ctx, claims.Username); err != nil {
		if errors.Is(err, errors.ErrorTypeNotFound) {
			return "", errors.NewAuthenticationError("Invalid token", errors.CodeInvalidToken)
		}
		return "", err
	}

	newToken, err := s.jwt.Generate(claims.Username)
	if err != nil {
		return "", errors.NewInternalError("Failed to generate token").WithError(err)
	}

	return newToken, nil
}

// ChangePassword 修改管理员密码，需先校验当前密码
func (s *AdminService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !security.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return errors.NewAuthenticationError("Current password is incorrect", errors.CodeInvalidCredentials)
	}

	if len(newPassword) < security.MinPasswordLength {
		return errors.NewInvalidRequest(
			fmt.Sprintf("Password must be at least %d characters", security.MinPasswordLength),
			errors.CodePasswordTooWeak,
		)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return errors.NewInternalError("Failed to hash password").WithError(err)
	}

	if err := s.admins.UpdatePassword(ctx, username, hash); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("管理员密码已修改")
	return nil
}

// translateTokenError 将令牌解析错误转换为应用错误
func translateTokenError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, auth.ErrTokenExpired):
		return errors.NewAuthenticationError("Token has expired", errors.CodeTokenExpired)
	case stderrors.Is(err, auth.ErrTokenMalformed):
		return errors.NewAuthenticationError("Malformed token", errors.CodeInvalidToken)
	default:
		return errors.NewAuthenticationError("Invalid token", errors.CodeInvalidToken)
	}
}
