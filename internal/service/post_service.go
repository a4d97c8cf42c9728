package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/moderation"
	"github.com/faithwalk/anonboard/internal/notify"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/repository"
)

// Notifier 审核事件通知接口
type Notifier interface {
	Enabled() bool
	NotifyPost(ctx context.Context, event string, post *model.Post)
}

// SubmitResult 提交结果
type SubmitResult struct {
	Post *model.Post

	// AutoRejected 提交时被自动拒绝。
	// 帖子已落库供审计，但对提交方只返回笼统的违规提示
	AutoRejected bool
}

// PostService 帖子业务逻辑
type PostService struct {
	posts    repository.PostRepository
	filters  repository.WordFilterRepository
	notifier Notifier
}

// NewPostService 创建 PostService；notifier 可为 nil
func NewPostService(posts repository.PostRepository, filters repository.WordFilterRepository, notifier Notifier) *PostService {
	return &PostService{
		posts:    posts,
		filters:  filters,
		notifier: notifier,
	}
}

// Submit 提交匿名帖子。
// 先做原始输入校验：去除首尾空白后必须非空，且长度不得超过上限 ——
// 超长是校验错误而不是静默截断，截断只兜底处理净化过程本身产生的边界情况。
// 校验通过后走 净化 → 过滤词匹配 → 状态裁决 → 落库 流水线
func (s *PostService) Submit(ctx context.Context, rawContent string) (*SubmitResult, error) {
	trimmed := strings.TrimSpace(rawContent)
	if trimmed == "" {
		return nil, errors.NewInvalidRequest("Content is required", errors.CodeContentRequired)
	}
	if utf8.RuneCountInString(trimmed) > model.MaxContentLength {
		return nil, errors.NewInvalidRequest("Content must not exceed 2000 characters", errors.CodeContentTooLong)
	}

	sanitized := moderation.Sanitize(rawContent)
	if sanitized == "" {
		// 净化后内容为空（纯标签/脚本输入），等同于没有可发布内容
		return nil, errors.NewInvalidRequest("Content is required", errors.CodeContentRequired)
	}

	filters, err := s.filters.List(ctx)
	if err != nil {
		return nil, err
	}

	match := moderation.CheckContent(sanitized, filters)
	decision := moderation.Decide(match)

	post := &model.Post{
		Content:        sanitized,
		ApprovalStatus: decision.Status,
		FlaggedWords:   decision.FlaggedWords,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if decision.AutoRejected {
		logger.Info().
			Int("post_id", post.ID).
			Msg("帖子因高严重级别命中被自动拒绝")
	} else if !match.IsClean {
		logger.Info().
			Int("post_id", post.ID).
			Str("flagged_words", *post.FlaggedWords).
			Msg("帖子命中过滤词，待人工审核")
	}

	s.notify(post, decision, match)

	return &SubmitResult{Post: post, AutoRejected: decision.AutoRejected}, nil
}

// notify 异步发送审核事件通知，不阻塞提交流程
func (s *PostService) notify(post *model.Post, decision moderation.Decision, match moderation.MatchResult) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	event := ""
	switch {
	case decision.AutoRejected:
		event = notify.EventPostAutoRejected
	case !match.IsClean:
		event = notify.EventPostFlagged
	default:
		return
	}

	go s.notifier.NotifyPost(context.Background(), event, post)
}

// ListApproved 公共列表：仅已通过的帖子，按提交时间降序
func (s *PostService) ListApproved(ctx context.Context, limit, offset int) ([]*model.Post, int, error) {
	return s.posts.ListApproved(ctx, repository.NewPagination(limit, offset))
}
