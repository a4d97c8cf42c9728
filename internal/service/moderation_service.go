package service

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/repository"
)

// Stats 审核统计
type Stats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`

	RecentActions []model.ModerationLog `json:"recentActions"`
}

// ModerationService 管理员审核业务逻辑。
// 状态变更与台账追加在同一事务内完成，要么都生效要么都不生效
type ModerationService struct {
	tx    Transactor
	posts repository.PostRepository
	logs  repository.ModerationLogRepository
}

// NewModerationService 创建 ModerationService
func NewModerationService(tx Transactor, posts repository.PostRepository, logs repository.ModerationLogRepository) *ModerationService {
	return &ModerationService{
		tx:    tx,
		posts: posts,
		logs:  logs,
	}
}

// ListPosts 按审核状态分页查询帖子
func (s *ModerationService) ListPosts(ctx context.Context, status model.ApprovalStatus, limit, offset int) ([]*model.Post, int, error) {
	if !status.IsValid() {
		return nil, 0, errors.NewInvalidRequest(
			"Status must be one of: pending, approved, rejected",
			errors.CodeInvalidStatus,
		)
	}

	return s.posts.ListByStatus(ctx, status, repository.NewPagination(limit, offset))
}

// Moderate 执行审核动作（approve / reject）。
// 对已有裁决的帖子允许再次审核（改判），每次操作都会追加台账记录
func (s *ModerationService) Moderate(ctx context.Context, postID int, action model.ModerationAction, reason *string, adminUsername string) (*model.Post, error) {
	if action != model.ModerationActionApprove && action != model.ModerationActionReject {
		return nil, errors.NewInvalidRequest(
			"Action must be one of: approve, reject",
			errors.CodeInvalidAction,
		)
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.posts.UpdateStatusTx(ctx, tx, postID, action.StatusAfter()); err != nil {
			return err
		}

		return s.logs.InsertTx(ctx, tx, &model.ModerationLog{
			PostID:        postID,
			Action:        action,
			AdminUsername: adminUsername,
			Reason:        reason,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("post_id", postID).
		Str("action", string(action)).
		Str("admin", adminUsername).
		Msg("帖子审核完成")

	return s.posts.GetByID(ctx, postID)
}

// Delete 删除帖子并追加台账记录。
// 目标不存在时整个事务回滚，不会留下孤立的台账记录；
// 台账不设外键级联，已有记录在帖子删除后仍然保留
func (s *ModerationService) Delete(ctx context.Context, postID int, reason *string, adminUsername string) error {
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.posts.DeleteTx(ctx, tx, postID); err != nil {
			return err
		}

		return s.logs.InsertTx(ctx, tx, &model.ModerationLog{
			PostID:        postID,
			Action:        model.ModerationActionDelete,
			AdminUsername: adminUsername,
			Reason:        reason,
		})
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("post_id", postID).
		Str("admin", adminUsername).
		Msg("帖子已删除")

	return nil
}

// Stats 审核统计：各状态帖子数与最近 10 条操作记录
func (s *ModerationService) Stats(ctx context.Context) (*Stats, error) {
	counts, total, err := s.posts.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.logs.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Pending:       counts[model.ApprovalStatusPending],
		Approved:      counts[model.ApprovalStatusApproved],
		Rejected:      counts[model.ApprovalStatusRejected],
		Total:         total,
		RecentActions: recent,
	}, nil
}
