package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// AdminUserRepository 管理员账号数据访问接口
type AdminUserRepository interface {
	Repository

	// GetByUsername 根据用户名获取管理员
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// Create 创建管理员
	Create(ctx context.Context, user *model.AdminUser) error

	// Count 管理员总数
	Count(ctx context.Context) (int, error)

	// UpdatePassword 更新密码哈希
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// adminUserRepository AdminUserRepository 实现
type adminUserRepository struct {
	*BaseRepository
}

// NewAdminUserRepository 创建 AdminUserRepository
func NewAdminUserRepository(db *bun.DB) AdminUserRepository {
	return &adminUserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetByUsername 根据用户名获取管理员
func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	user := new(model.AdminUser)
	err := r.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("Admin user")
		}
		return nil, errors.NewDatabaseError(err)
	}

	return user, nil
}

// Create 创建管理员
func (r *adminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	user.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(user).
		Exec(ctx)

	if err != nil {
		return errors.NewDatabaseError(err)
	}

	return nil
}

// Count 管理员总数
func (r *adminUserRepository) Count(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.AdminUser)(nil)).
		Count(ctx)

	if err != nil {
		return 0, errors.NewDatabaseError(err)
	}

	return count, nil
}

// UpdatePassword 更新密码哈希
func (r *adminUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	result, err := r.db.NewUpdate().
		Model((*model.AdminUser)(nil)).
		Set("password_hash = ?", passwordHash).
		Where("username = ?", username).
		Exec(ctx)

	if err != nil {
		return errors.NewDatabaseError(err)
	}

	n, err := affectedRows(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NewNotFoundError("Admin user")
	}

	return nil
}
