package repository

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// ModerationLogRepository 审核台账数据访问接口
// 台账仅追加，不提供更新或删除
type ModerationLogRepository interface {
	Repository

	// InsertTx 在事务中追加一条台账记录，与对应的状态变更同生共死
	InsertTx(ctx context.Context, tx bun.Tx, entry *model.ModerationLog) error

	// ListRecent 最近 n 条操作记录，时间降序
	ListRecent(ctx context.Context, n int) ([]model.ModerationLog, error)
}

// moderationLogRepository ModerationLogRepository 实现
type moderationLogRepository struct {
	*BaseRepository
}

// NewModerationLogRepository 创建 ModerationLogRepository
func NewModerationLogRepository(db *bun.DB) ModerationLogRepository {
	return &moderationLogRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// InsertTx 在事务中追加台账记录
func (r *moderationLogRepository) InsertTx(ctx context.Context, tx bun.Tx, entry *model.ModerationLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := tx.NewInsert().
		Model(entry).
		Exec(ctx)

	if err != nil {
		return errors.NewDatabaseError(err)
	}

	return nil
}

// ListRecent 最近 n 条操作记录
func (r *moderationLogRepository) ListRecent(ctx context.Context, n int) ([]model.ModerationLog, error) {
	if n < 1 {
		n = 10
	}

	var entries []model.ModerationLog
	err := r.db.NewSelect().
		Model(&entries).
		Order("timestamp DESC").
		Limit(n).
		Scan(ctx)

	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	return entries, nil
}
