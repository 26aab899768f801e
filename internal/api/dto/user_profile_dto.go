package dto

import "time"

// SetNicknameReq 设置昵称请求
type SetNicknameReq struct {
	Nickname string `json:"nickname" binding:"required" validate:"max=64"`
}

// UserProfileDTO 用户资料, 未设置过昵称时只有邮箱
type UserProfileDTO struct {
	Nickname  string     `json:"nickname,omitempty"`
	Email     string     `json:"email"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
