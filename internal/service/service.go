// Package service 实现业务逻辑层
package service

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/repository"
)

// Transactor 事务执行器，状态变更与台账追加必须在同一事务内完成
type Transactor interface {
	RunInTransaction(ctx context.Context, fn repository.TxFunc) error
}

// DBTransactor 基于 bun.DB 的 Transactor 实现
type DBTransactor struct {
	db *bun.DB
}

// NewDBTransactor 创建 DBTransactor
func NewDBTransactor(db *bun.DB) *DBTransactor {
	return &DBTransactor{db: db}
}

// RunInTransaction 在数据库事务中执行 fn
func (t *DBTransactor) RunInTransaction(ctx context.Context, fn repository.TxFunc) error {
	return repository.RunInTransaction(ctx, t.db, fn)
}
