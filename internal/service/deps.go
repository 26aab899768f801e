package service

import (
	"SocialMapp/internal/pkg/consts"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// BlobStore 图片对象存储
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
}

// Locker 以帖子为粒度的建议锁, 为 nil 时不加锁
type Locker interface {
	TryLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	UnLock(ctx context.Context, key, token string)
}

const postLockTTL = 10 * time.Second

// lockPost 获取帖子锁; 锁服务故障时降级为不加锁, 只记录告警
func lockPost(ctx context.Context, locker Locker, postID string) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}

	key := consts.PostLockKey + postID
	token := uuid.NewString()
	ok, err := locker.TryLock(ctx, key, token, postLockTTL)
	if err != nil {
		log.WarnContext(ctx, "post lock unavailable, continue without lock", "post_id", postID, "err", err)
		return func() {}, nil
	}
	if !ok {
		return nil, ErrPostBusy
	}
	return func() {
		locker.UnLock(context.WithoutCancel(ctx), key, token)
	}, nil
}
