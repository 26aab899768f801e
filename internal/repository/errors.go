package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 主键或唯一索引冲突
	ErrDuplicate = errors.New("duplicate record")
)

const (
	postCollection    = "posts"
	commentCollection = "comments"
	likeCollection    = "likes"
	userCollection    = "users"
)

// translate 将驱动错误归一为仓储层错误
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
