package model

import (
	"time"
)

// Like 以 (post_id, author_id) 组合作为文档主键, 同一账号对同一帖子至多一条
type Like struct {
	Key       string    `bson:"_id" json:"-"`
	PostID    string    `bson:"post_id" json:"postId"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// LikeKey 生成点赞记录主键
func LikeKey(postID, authorID string) string {
	return postID + ":" + authorID
}

func NewLike(postID, authorID string, now time.Time) *Like {
	return &Like{
		Key:       LikeKey(postID, authorID),
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: now,
	}
}
