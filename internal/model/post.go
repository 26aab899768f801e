package model

import (
	"time"
)

// Post 帖子, 只能创建和级联删除, 不支持编辑
type Post struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AuthorID     string    `bson:"author_id" json:"authorId"`
	AuthorHandle string    `bson:"author_handle" json:"authorHandle"` // 发帖时账号邮箱, 仅用于展示兜底
	Text         string    `bson:"text" json:"text"`
	ImageRef     string    `bson:"image_ref,omitempty" json:"imageRef,omitempty"` // 对象存储中的对象名
	ImageURL     string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// HasImage 帖子是否挂载了图片
func (p *Post) HasImage() bool {
	return p.ImageRef != ""
}

// IsAuthor 鉴权只比较账号ID, 不使用昵称或邮箱
func (p *Post) IsAuthor(accountID string) bool {
	return accountID != "" && p.AuthorID == accountID
}
