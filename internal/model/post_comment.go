package model

import (
	"time"
)

type Comment struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	PostID       string    `bson:"post_id" json:"postId"`
	AuthorID     string    `bson:"author_id" json:"authorId"`
	AuthorHandle string    `bson:"author_handle" json:"authorHandle"`
	Text         string    `bson:"text" json:"text"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

func (c *Comment) IsAuthor(accountID string) bool {
	return accountID != "" && c.AuthorID == accountID
}
