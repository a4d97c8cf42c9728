package model

import (
	"time"

	"github.com/uptrace/bun"
)

// AdminUser 管理员账号模型
type AdminUser struct {
	bun.BaseModel `bun:"table:admin_users,alias:au"`

	ID           int    `bun:"id,pk,autoincrement" json:"id"`
	Username     string `bun:"username,notnull,unique" json:"username"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
