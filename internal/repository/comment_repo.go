package repository

import (
	"SocialMapp/internal/model"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, commentID string) (*model.Comment, error)
	ListByPostID(ctx context.Context, postID string) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection(commentCollection),
	}
}

func (s *commentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = primitive.NewObjectID().Hex()
	}
	if _, err := s.col.InsertOne(ctx, comment); err != nil {
		return errors.Wrap(translate(err), "insert comment")
	}
	return nil
}

func (s *commentRepoImpl) GetComment(ctx context.Context, commentID string) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find comment")
	}
	return &comment, nil
}

// ListByPostID 帖子下的评论 (按时间倒序)
func (s *commentRepoImpl) ListByPostID(ctx context.Context, postID string) ([]*model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find comments")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.Comment, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, errors.Wrap(err, "decode comments")
	}
	return list, nil
}

// DeleteComment 删除单条评论, 未命中返回 ErrNotFound
func (s *commentRepoImpl) DeleteComment(ctx context.Context, commentID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return errors.Wrap(err, "delete comment")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByPostID 批量删除帖子下的评论
func (s *commentRepoImpl) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	result, err := s.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, errors.Wrap(err, "delete comments")
	}
	return result.DeletedCount, nil
}
