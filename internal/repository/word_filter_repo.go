package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// WordFilterRepository 过滤词数据访问接口
type WordFilterRepository interface {
	Repository

	// List 获取全部过滤词，严重级别降序、词升序
	List(ctx context.Context) ([]model.WordFilter, error)

	// Create 新增过滤词；word 唯一索引冲突返回 conflict 错误。
	// 并发新增同一词时由数据库唯一约束裁决：恰好一个成功
	Create(ctx context.Context, filter *model.WordFilter) error

	// Delete 删除过滤词；目标不存在返回 not found
	Delete(ctx context.Context, id int) error
}

// wordFilterRepository WordFilterRepository 实现
type wordFilterRepository struct {
	*BaseRepository
}

// NewWordFilterRepository 创建 WordFilterRepository
func NewWordFilterRepository(db *bun.DB) WordFilterRepository {
	return &wordFilterRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// List 获取全部过滤词
func (r *wordFilterRepository) List(ctx context.Context) ([]model.WordFilter, error) {
	var filters []model.WordFilter

	err := r.db.NewSelect().
		Model(&filters).
		OrderExpr("CASE severity WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC").
		Order("word ASC").
		Scan(ctx)

	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	return filters, nil
}

// Create 新增过滤词
func (r *wordFilterRepository) Create(ctx context.Context, filter *model.WordFilter) error {
	filter.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(filter).
		Exec(ctx)

	if err != nil {
		var pgErr pgdriver.Error
		if stderrors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return errors.NewConflictError(
				"This word already exists in the filter list",
				errors.CodeDuplicateWord,
			)
		}
		return errors.NewDatabaseError(err)
	}

	return nil
}

// Delete 删除过滤词
func (r *wordFilterRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.NewDelete().
		Model((*model.WordFilter)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return errors.NewDatabaseError(err)
	}

	n, err := affectedRows(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NewNotFoundError("Filter")
	}

	return nil
}
