package repository

import (
	"sync"

	"github.com/uptrace/bun"
)

// Factory Repository 工厂（依赖注入容器）
// 使用 sync.Once 保证并发安全的懒加载
type Factory struct {
	db *bun.DB

	// 缓存的 Repository 实例（懒加载）
	postRepo      PostRepository
	postRepoOnce  sync.Once
	filterRepo    WordFilterRepository
	filterOnce    sync.Once
	logRepo       ModerationLogRepository
	logRepoOnce   sync.Once
	adminRepo     AdminUserRepository
	adminRepoOnce sync.Once
}

// NewFactory 创建 Repository 工厂
func NewFactory(db *bun.DB) *Factory {
	return &Factory{db: db}
}

// Post 获取 Post Repository（并发安全）
func (f *Factory) Post() PostRepository {
	f.postRepoOnce.Do(func() {
		f.postRepo = NewPostRepository(f.db)
	})
	return f.postRepo
}

// WordFilter 获取 WordFilter Repository（并发安全）
func (f *Factory) WordFilter() WordFilterRepository {
	f.filterOnce.Do(func() {
		f.filterRepo = NewWordFilterRepository(f.db)
	})
	return f.filterRepo
}

// ModerationLog 获取 ModerationLog Repository（并发安全）
func (f *Factory) ModerationLog() ModerationLogRepository {
	f.logRepoOnce.Do(func() {
		f.logRepo = NewModerationLogRepository(f.db)
	})
	return f.logRepo
}

// AdminUser 获取 AdminUser Repository（并发安全）
func (f *Factory) AdminUser() AdminUserRepository {
	f.adminRepoOnce.Do(func() {
		f.adminRepo = NewAdminUserRepository(f.db)
	})
	return f.adminRepo
}

// DB 获取数据库实例
func (f *Factory) DB() *bun.DB {
	return f.db
}
