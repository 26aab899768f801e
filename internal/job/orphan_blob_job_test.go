package job

import (
	"SocialMapp/internal/model"
	"SocialMapp/internal/pkg/blob"
	"SocialMapp/internal/repository/memory"
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listStore struct {
	objects map[string]time.Time
	failOn  string
}

func (l *listStore) Put(_ context.Context, name string, _ []byte, _ string) (string, error) {
	l.objects[name] = time.Now()
	return name, nil
}

func (l *listStore) Delete(_ context.Context, name string) error {
	if name == l.failOn {
		return errors.New("permission denied")
	}
	delete(l.objects, name)
	return nil
}

func (l *listStore) List(context.Context) ([]blob.Object, error) {
	out := make([]blob.Object, 0, len(l.objects))
	for name, ts := range l.objects {
		out = append(out, blob.Object{Name: name, LastModified: ts})
	}
	return out, nil
}

func remaining(l *listStore) []string {
	var names []string
	for name := range l.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestOrphanBlobJob_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC)
	store := memory.New()
	require.NoError(t, store.Posts.CreatePost(ctx, &model.Post{AuthorID: "a", Text: "t", ImageRef: "kept.png", CreatedAt: now}))

	blobs := &listStore{objects: map[string]time.Time{
		"kept.png":   now.Add(-48 * time.Hour),
		"orphan.png": now.Add(-2 * time.Hour),
		"fresh.png":  now.Add(-time.Minute),
		"stuck.png":  now.Add(-3 * time.Hour),
	}, failOn: "stuck.png"}

	j := NewOrphanBlobJob(store.Posts, blobs, nil, time.Hour)
	j.now = func() time.Time { return now }

	deleted, err := j.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"fresh.png", "kept.png", "stuck.png"}, remaining(blobs))
}
