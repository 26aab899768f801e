package repository

import (
	"SocialMapp/internal/model"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, postID, authorID string) error
	ExistsLike(ctx context.Context, postID, authorID string) (bool, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
	ListByPostID(ctx context.Context, postID string) ([]*model.Like, error)
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}

type likeRepoImpl struct {
	col *mongo.Collection
}

func NewLikeRepo(db *mongo.Database) LikeRepo {
	return &likeRepoImpl{
		col: db.Collection(likeCollection),
	}
}

// CreateLike 以组合主键插入, 重复点赞由 _id 唯一性拦截并返回 ErrDuplicate
func (s *likeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	if like.Key == "" {
		like.Key = model.LikeKey(like.PostID, like.AuthorID)
	}
	if _, err := s.col.InsertOne(ctx, like); err != nil {
		return errors.Wrap(translate(err), "insert like")
	}
	return nil
}

func (s *likeRepoImpl) DeleteLike(ctx context.Context, postID, authorID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": model.LikeKey(postID, authorID)})
	if err != nil {
		return errors.Wrap(err, "delete like")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *likeRepoImpl) ExistsLike(ctx context.Context, postID, authorID string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"_id": model.LikeKey(postID, authorID)})
	if err != nil {
		return false, errors.Wrap(err, "count like")
	}
	return count > 0, nil
}

func (s *likeRepoImpl) CountByPostID(ctx context.Context, postID string) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, errors.Wrap(err, "count likes")
	}
	return count, nil
}

func (s *likeRepoImpl) ListByPostID(ctx context.Context, postID string) ([]*model.Like, error) {
	cursor, err := s.col.Find(ctx, bson.M{"post_id": postID})
	if err != nil {
		return nil, errors.Wrap(err, "find likes")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.Like, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, errors.Wrap(err, "decode likes")
	}
	return list, nil
}

func (s *likeRepoImpl) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	result, err := s.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, errors.Wrap(err, "delete likes")
	}
	return result.DeletedCount, nil
}
