package redis

import (
	"SocialMapp/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// Locker 基于 SET NX PX 的建议锁, 只有持有者的 token 才能释放
type Locker struct {
	rdb *redis.Client
}

func NewLocker(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// TryLock 只尝试一次, 不重试
func (l *Locker) TryLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, token, ttl).Result()
}

// UnLock 释放锁
func (l *Locker) UnLock(ctx context.Context, key, token string) {
	l.rdb.Eval(ctx, unlockScript, []string{key}, token)
}

// Revocations 已吊销凭据列表, 以凭据签名为键, 过期时间与凭据一致
type Revocations struct {
	rdb *redis.Client
}

func NewRevocations(rdb *redis.Client) *Revocations {
	return &Revocations{rdb: rdb}
}

func RevokedKey(signature string) string {
	return consts.RevokedTokenKey + signature
}

func (r *Revocations) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, RevokedKey(signature), 1, ttl).Err()
}

func (r *Revocations) IsRevoked(ctx context.Context, signature string) (bool, error) {
	_, err := r.rdb.Get(ctx, RevokedKey(signature)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
