package memory

import (
	"SocialMapp/internal/model"
	"SocialMapp/internal/repository"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepo_ConcurrentCreateOnlyOneWins(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	var wins int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Likes.CreateLike(ctx, model.NewLike("p1", "uid-b", time.Now())); err == nil {
				atomic.AddInt32(&wins, 1)
			} else {
				assert.ErrorIs(t, err, repository.ErrDuplicate)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	count, err := store.Likes.CountByPostID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepo_ListOrderAndDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, text := range []string{"one", "two", "three"} {
		require.NoError(t, store.Comments.CreateComment(ctx, &model.Comment{
			PostID:    "p1",
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.Comments.CreateComment(ctx, &model.Comment{PostID: "p2", Text: "other", CreatedAt: base}))

	list, err := store.Comments.ListByPostID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "three", list[0].Text)
	assert.Equal(t, "one", list[2].Text)

	deleted, err := store.Comments.DeleteByPostID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	deleted, err = store.Comments.DeleteByPostID(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	assert.ErrorIs(t, store.Comments.DeleteComment(ctx, list[0].ID), repository.ErrNotFound)
}

func TestUserProfileRepo_UpsertMerges(t *testing.T) {
	store := New()
	ctx := context.Background()
	now := time.Now()

	_, err := store.Users.GetProfile(ctx, "uid-a")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Users.UpsertNickname(ctx, "uid-a", "Al", "a@x.com", now))
	require.NoError(t, store.Users.UpsertNickname(ctx, "uid-a", "Alfred", "a@x.com", now.Add(time.Second)))

	profile, err := store.Users.GetProfile(ctx, "uid-a")
	require.NoError(t, err)
	assert.Equal(t, "Alfred", profile.Nickname)
	assert.Equal(t, "uid-a", profile.AccountID)
}
