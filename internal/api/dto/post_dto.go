package dto

import "time"

// CreatePostReq 发帖请求, 图片为 base64 编码
type CreatePostReq struct {
	Text        string `json:"text" binding:"required" validate:"max=5000"`
	ImageBase64 string `json:"imageBase64"`
}

// PostDTO 发帖成功后的返回
type PostDTO struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorHandle string    `json:"authorHandle"`
	Text         string    `json:"text"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FeedPostDTO 信息流中的帖子, 附带展示名和点赞数
type FeedPostDTO struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorHandle string    `json:"authorHandle"`
	Text         string    `json:"text"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	DisplayName  string    `json:"displayName"`
	LikesCount   int64     `json:"likesCount"`
}

// DeletePostResultDTO 级联删除结果
type DeletePostResultDTO struct {
	Message         string `json:"message"`
	DeletedComments int    `json:"deletedComments"`
	DeletedLikes    int    `json:"deletedLikes"`
}
