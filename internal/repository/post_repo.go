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

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, postID string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	DeletePost(ctx context.Context, postID string) error
	ListImageRefs(ctx context.Context) ([]string, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection(postCollection),
	}
}

// CreatePost 写入帖子, ID 由存储层分配
func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = primitive.NewObjectID().Hex()
	}
	if _, err := s.col.InsertOne(ctx, post); err != nil {
		return errors.Wrap(translate(err), "insert post")
	}
	return nil
}

// GetPost 按ID获取帖子, 不存在返回 ErrNotFound
func (s *postRepoImpl) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find post")
	}
	return &post, nil
}

// ListPosts 全量帖子, 按创建时间倒序
func (s *postRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.Post, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return list, nil
}

// DeletePost 删除帖子记录, 已不存在时视为成功
func (s *postRepoImpl) DeletePost(ctx context.Context, postID string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		return errors.Wrap(err, "delete post")
	}
	return nil
}

// ListImageRefs 所有被帖子引用的对象名
func (s *postRepoImpl) ListImageRefs(ctx context.Context) ([]string, error) {
	values, err := s.col.Distinct(ctx, "image_ref", bson.M{"image_ref": bson.M{"$exists": true, "$ne": ""}})
	if err != nil {
		return nil, errors.Wrap(err, "distinct image refs")
	}
	refs := make([]string, 0, len(values))
	for _, v := range values {
		if ref, ok := v.(string); ok {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
