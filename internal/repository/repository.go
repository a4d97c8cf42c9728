// Package repository 提供数据访问层的接口定义和基础实现
package repository

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// Repository 基础 Repository 接口
type Repository interface {
	DB() *bun.DB
}

// BaseRepository 基础 Repository 实现，所有 Repository 的公共基类
type BaseRepository struct {
	db *bun.DB
}

// NewBaseRepository 创建基础 Repository
func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{db: db}
}

// DB 获取数据库实例
func (r *BaseRepository) DB() *bun.DB {
	return r.db
}

const (
	// DefaultLimit 默认每页数量
	DefaultLimit = 50
	// MaxLimit 每页数量上限
	MaxLimit = 100
)

// Pagination 分页参数（limit/offset 语义，与公开接口契约一致）
type Pagination struct {
	Limit  int
	Offset int
}

// GetLimit 获取限制数量，默认 50，上限 100
func (p *Pagination) GetLimit() int {
	if p.Limit < 1 {
		return DefaultLimit
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// GetOffset 计算偏移量，负值归零
func (p *Pagination) GetOffset() int {
	if p.Offset < 0 {
		return 0
	}
	return p.Offset
}

// NewPagination 创建分页参数
func NewPagination(limit, offset int) *Pagination {
	return &Pagination{Limit: limit, Offset: offset}
}

// affectedRows 读取受影响行数。
// 读取失败是驱动层故障，必须作为数据库错误上抛，
// 不能和"影响 0 行"混为一谈被误报成 not found
func affectedRows(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError(err)
	}
	return n, nil
}

// TxFunc 事务函数类型
type TxFunc func(ctx context.Context, tx bun.Tx) error

// RunInTransaction 在事务中执行操作
func RunInTransaction(ctx context.Context, db *bun.DB, fn TxFunc) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
