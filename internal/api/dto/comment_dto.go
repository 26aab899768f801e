package dto

import "time"

// CreateCommentReq 创建评论请求
type CreateCommentReq struct {
	Text string `json:"text" binding:"required" validate:"max=2000"`
}

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	AuthorID     string    `json:"authorId"`
	AuthorHandle string    `json:"authorHandle"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"createdAt"`
	DisplayName  string    `json:"displayName"`
}
