package repository

import (
	"SocialMapp/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestPostRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewPostRepo(mt.DB)

		post := &model.Post{AuthorID: "uid-a", Text: "hello", CreatedAt: time.Now()}
		require.NoError(mt, repo.CreatePost(context.Background(), post))
		assert.Len(mt, post.ID, 24)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + postCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewPostRepo(mt.DB)

		post, err := repo.GetPost(context.Background(), "missing")
		assert.Nil(mt, post)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("get existing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + postCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "author_id", Value: "uid-a"},
			{Key: "author_handle", Value: "a@x.com"},
			{Key: "text", Value: "hello"},
		}))
		repo := NewPostRepo(mt.DB)

		post, err := repo.GetPost(context.Background(), "p1")
		require.NoError(mt, err)
		assert.Equal(mt, "uid-a", post.AuthorID)
		assert.Equal(mt, "hello", post.Text)
		assert.False(mt, post.HasImage())
	})
}

func TestLikeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate like", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		repo := NewLikeRepo(mt.DB)

		err := repo.CreateLike(context.Background(), model.NewLike("p1", "uid-b", time.Now()))
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("delete missing like", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewLikeRepo(mt.DB)

		err := repo.DeleteLike(context.Background(), "p1", "uid-b")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("count", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + likeCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))
		repo := NewLikeRepo(mt.DB)

		count, err := repo.CountByPostID(context.Background(), "p1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})
}

func TestCommentRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete by post", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(2)}))
		repo := NewCommentRepo(mt.DB)

		deleted, err := repo.DeleteByPostID(context.Background(), "p1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), deleted)
	})

	mt.Run("list by post", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + commentCollection
		first := mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "c2"}, {Key: "post_id", Value: "p1"}, {Key: "text", Value: "second"}},
			bson.D{{Key: "_id", Value: "c1"}, {Key: "post_id", Value: "p1"}, {Key: "text", Value: "first"}},
		)
		mt.AddMockResponses(first)
		repo := NewCommentRepo(mt.DB)

		list, err := repo.ListByPostID(context.Background(), "p1")
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, "c2", list[0].ID)
	})
}

func TestUserProfileRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing profile", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + userCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewUserProfileRepo(mt.DB)

		_, err := repo.GetProfile(context.Background(), "uid-c")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("upsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))
		repo := NewUserProfileRepo(mt.DB)

		err := repo.UpsertNickname(context.Background(), "uid-a", "Al", "a@x.com", time.Now())
		assert.NoError(mt, err)
	})
}
