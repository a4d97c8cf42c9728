package service

import (
	"context"
	"strings"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/repository"
)

// WordFilterService 过滤词管理业务逻辑。
// 过滤词创建后不可修改，调整严重级别需先删除再新建
type WordFilterService struct {
	filters repository.WordFilterRepository
}

// NewWordFilterService 创建 WordFilterService
func NewWordFilterService(filters repository.WordFilterRepository) *WordFilterService {
	return &WordFilterService{filters: filters}
}

// List 获取全部过滤词，严重级别降序、词升序
func (s *WordFilterService) List(ctx context.Context) ([]model.WordFilter, error) {
	return s.filters.List(ctx)
}

// Add 新增过滤词。词统一转小写并去除首尾空白后存储；
// 与已有词冲突（含并发新增）由数据库唯一约束裁决并返回 conflict
func (s *WordFilterService) Add(ctx context.Context, word, severity string) (*model.WordFilter, error) {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return nil, errors.NewInvalidRequest("Word is required", errors.CodeWordRequired)
	}

	sev := model.Severity(severity)
	if !sev.IsValid() {
		return nil, errors.NewInvalidRequest(
			"Severity must be one of: low, medium, high",
			errors.CodeInvalidSeverity,
		)
	}

	filter := &model.WordFilter{
		Word:     normalized,
		Severity: sev,
	}

	if err := s.filters.Create(ctx, filter); err != nil {
		return nil, err
	}

	logger.Info().
		Str("word", normalized).
		Str("severity", severity).
		Msg("过滤词已添加")

	return filter, nil
}

// Remove 删除过滤词
func (s *WordFilterService) Remove(ctx context.Context, id int) error {
	if err := s.filters.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int("filter_id", id).Msg("过滤词已删除")
	return nil
}
