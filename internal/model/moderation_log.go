package model

import (
	"time"

	"github.com/uptrace/bun"
)

// ModerationLog 审核操作台账
// 仅追加、永不修改；不设外键级联，帖子删除后台账记录仍然保留
type ModerationLog struct {
	bun.BaseModel `bun:"table:moderation_log,alias:ml"`

	ID            int              `bun:"id,pk,autoincrement" json:"id"`
	PostID        int              `bun:"post_id,notnull" json:"postId"`
	Action        ModerationAction `bun:"action,notnull" json:"action"`
	AdminUsername string           `bun:"admin_username,notnull" json:"adminUsername"`
	Reason        *string          `bun:"reason" json:"reason"`

	Timestamp time.Time `bun:"timestamp,notnull,default:current_timestamp" json:"timestamp"`
}
