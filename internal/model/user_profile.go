package model

import (
	"time"
)

// UserProfile 用户资料, 以账号ID为主键, 仅通过设置昵称创建或更新
type UserProfile struct {
	AccountID string    `bson:"_id" json:"accountId,omitempty"`
	Nickname  string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	Email     string    `bson:"email" json:"email"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// DisplayName 有昵称用昵称, 否则回退到邮箱
func (u *UserProfile) DisplayName(fallback string) string {
	if u != nil && u.Nickname != "" {
		return u.Nickname
	}
	return fallback
}
