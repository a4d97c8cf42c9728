package model

import (
	"time"

	"github.com/uptrace/bun"
)

// MaxContentLength 帖子内容最大长度（字符数）
const MaxContentLength = 2000

// Post 匿名帖子模型
// Timestamp 为提交时刻，创建后不再变更；审核状态只能经由审核状态机流转
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	Content string `bun:"content,notnull" json:"content"`

	Timestamp time.Time `bun:"timestamp,notnull,default:current_timestamp" json:"timestamp"`

	// 审核状态：pending / approved / rejected
	ApprovalStatus ApprovalStatus `bun:"approval_status,notnull,default:'pending'" json:"approvalStatus"`

	// 命中的过滤词（逗号分隔）；仅当创建时至少命中一个过滤词才非空
	FlaggedWords *string `bun:"flagged_words" json:"flaggedWords"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// IsPending 检查帖子是否待审核
func (p *Post) IsPending() bool {
	return p.ApprovalStatus == ApprovalStatusPending
}

// IsApproved 检查帖子是否已通过（仅已通过的帖子对公共列表可见）
func (p *Post) IsApproved() bool {
	return p.ApprovalStatus == ApprovalStatusApproved
}
