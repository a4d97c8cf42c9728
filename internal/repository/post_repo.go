package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// PostRepository 帖子数据访问接口
type PostRepository interface {
	Repository

	// Create 创建帖子（包括被自动拒绝仍需落库审计的帖子）
	Create(ctx context.Context, post *model.Post) error

	// GetByID 根据 ID 获取帖子
	GetByID(ctx context.Context, id int) (*model.Post, error)

	// ListByStatus 按审核状态分页查询（created_at 降序），返回列表与总数
	ListByStatus(ctx context.Context, status model.ApprovalStatus, p *Pagination) ([]*model.Post, int, error)

	// ListApproved 公共列表：仅已通过的帖子，按提交时间降序
	ListApproved(ctx context.Context, p *Pagination) ([]*model.Post, int, error)

	// UpdateStatusTx 在事务中更新审核状态；目标不存在返回 not found
	UpdateStatusTx(ctx context.Context, tx bun.Tx, id int, status model.ApprovalStatus) error

	// DeleteTx 在事务中删除帖子；目标不存在返回 not found
	DeleteTx(ctx context.Context, tx bun.Tx, id int) error

	// StatusCounts 各审核状态的帖子数与总数
	StatusCounts(ctx context.Context) (map[model.ApprovalStatus]int, int, error)
}

// postRepository PostRepository 实现
type postRepository struct {
	*BaseRepository
}

// NewPostRepository 创建 PostRepository
func NewPostRepository(db *bun.DB) PostRepository {
	return &postRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create 创建帖子
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	now := time.Now()
	if post.Timestamp.IsZero() {
		post.Timestamp = now
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(post).
		Exec(ctx)

	if err != nil {
		return errors.NewDatabaseError(err)
	}

	return nil
}

// GetByID 根据 ID 获取帖子
func (r *postRepository) GetByID(ctx context.Context, id int) (*model.Post, error) {
	post := new(model.Post)
	err := r.db.NewSelect().
		Model(post).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("Post")
		}
		return nil, errors.NewDatabaseError(err)
	}

	return post, nil
}

// ListByStatus 按审核状态分页查询
func (r *postRepository) ListByStatus(ctx context.Context, status model.ApprovalStatus, p *Pagination) ([]*model.Post, int, error) {
	if p == nil {
		p = NewPagination(DefaultLimit, 0)
	}

	var posts []*model.Post
	count, err := r.db.NewSelect().
		Model(&posts).
		Where("approval_status = ?", status).
		Order("created_at DESC").
		Limit(p.GetLimit()).
		Offset(p.GetOffset()).
		ScanAndCount(ctx)

	if err != nil {
		return nil, 0, errors.NewDatabaseError(err)
	}

	return posts, count, nil
}

// ListApproved 公共列表，按提交时间降序
func (r *postRepository) ListApproved(ctx context.Context, p *Pagination) ([]*model.Post, int, error) {
	if p == nil {
		p = NewPagination(DefaultLimit, 0)
	}

	var posts []*model.Post
	count, err := r.db.NewSelect().
		Model(&posts).
		Where("approval_status = ?", model.ApprovalStatusApproved).
		Order("timestamp DESC").
		Limit(p.GetLimit()).
		Offset(p.GetOffset()).
		ScanAndCount(ctx)

	if err != nil {
		return nil, 0, errors.NewDatabaseError(err)
	}

	return posts, count, nil
}

// UpdateStatusTx 在事务中更新审核状态
func (r *postRepository) UpdateStatusTx(ctx context.Context, tx bun.Tx, id int, status model.ApprovalStatus) error {
	result, err := tx.NewUpdate().
		Model((*model.Post)(nil)).
		Set("approval_status = ?", status).
		Set("updated_at = ?", time.Now()).
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
		return errors.NewNotFoundError("Post")
	}

	return nil
}

// DeleteTx 在事务中删除帖子
func (r *postRepository) DeleteTx(ctx context.Context, tx bun.Tx, id int) error {
	result, err := tx.NewDelete().
		Model((*model.Post)(nil)).
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
		return errors.NewNotFoundError("Post")
	}

	return nil
}

// StatusCounts 各审核状态的帖子数与总数
func (r *postRepository) StatusCounts(ctx context.Context) (map[model.ApprovalStatus]int, int, error) {
	var rows []struct {
		Status model.ApprovalStatus `bun:"approval_status"`
		Count  int                  `bun:"count"`
	}

	err := r.db.NewSelect().
		Model((*model.Post)(nil)).
		Column("approval_status").
		ColumnExpr("count(*) AS count").
		Group("approval_status").
		Scan(ctx, &rows)

	if err != nil {
		return nil, 0, errors.NewDatabaseError(err)
	}

	counts := make(map[model.ApprovalStatus]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	return counts, total, nil
}
