package database

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/pkg/security"
)

// Migrate 创建数据表（幂等）
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []interface{}{
		(*model.Post)(nil),
		(*model.WordFilter)(nil),
		(*model.ModerationLog)(nil),
		(*model.AdminUser)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}

	logger.Info().Msg("Database schema ready")
	return nil
}

// defaultFilters 默认过滤词集：high 提交即拒，medium/low 标记待审
var defaultFilters = []model.WordFilter{
	{Word: "damn", Severity: model.SeverityHigh},
	{Word: "hell", Severity: model.SeverityHigh},
	{Word: "hate", Severity: model.SeverityHigh},
	{Word: "kill", Severity: model.SeverityHigh},
	{Word: "die", Severity: model.SeverityHigh},
	{Word: "suicide", Severity: model.SeverityHigh},
	{Word: "death", Severity: model.SeverityMedium},
	{Word: "angry", Severity: model.SeverityLow},
	{Word: "mad", Severity: model.SeverityLow},
	{Word: "upset", Severity: model.SeverityLow},
}

// DefaultAdminUsername 默认管理员账号
const DefaultAdminUsername = "admin"

// defaultAdminPassword 首次启动的初始密码，务必尽快修改
const defaultAdminPassword = "changeme123"

// Seed 写入默认过滤词与默认管理员（均幂等）
func Seed(ctx context.Context, db *bun.DB) error {
	// 过滤词按唯一索引去重，已存在的跳过
	for i := range defaultFilters {
		f := defaultFilters[i]
		if _, err := db.NewInsert().
			Model(&f).
			On("CONFLICT (word) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	// 没有任何管理员时创建默认账号
	count, err := db.NewSelect().
		Model((*model.AdminUser)(nil)).
		Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		hash, err := security.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}

		admin := &model.AdminUser{
			Username:     DefaultAdminUsername,
			PasswordHash: hash,
		}
		if _, err := db.NewInsert().Model(admin).Exec(ctx); err != nil {
			return err
		}

		logger.Warn().
			Str("username", DefaultAdminUsername).
			Msg("Default admin user created, change the password immediately")
	}

	return nil
}
