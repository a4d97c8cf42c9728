package model

import (
	"time"

	"github.com/uptrace/bun"
)

// WordFilter 过滤词模型
// word 全局唯一（小写、去首尾空白后入库）；创建后不可修改，
// 调整严重级别时按删除后重建处理
type WordFilter struct {
	bun.BaseModel `bun:"table:word_filters,alias:wf"`

	ID       int      `bun:"id,pk,autoincrement" json:"id"`
	Word     string   `bun:"word,notnull,unique" json:"word"`
	Severity Severity `bun:"severity,notnull,default:'medium'" json:"severity"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
