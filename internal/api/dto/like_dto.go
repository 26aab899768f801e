package dto

// LikeStatusDTO 点赞状态
type LikeStatusDTO struct {
	HasLiked   bool  `json:"hasLiked"`
	LikesCount int64 `json:"likesCount"`
}

// LikeCountDTO 点赞/取消点赞后的计数
type LikeCountDTO struct {
	Message    string `json:"message"`
	LikesCount int64  `json:"likesCount"`
}
