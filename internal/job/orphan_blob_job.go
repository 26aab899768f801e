package job

import (
	"SocialMapp/internal/pkg/blob"
	"SocialMapp/internal/pkg/consts"
	"SocialMapp/internal/repository"
	"SocialMapp/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// OrphanBlobJob 清理没有任何帖子引用的图片
// 发帖先写图片再写记录, 中途失败会留下孤儿图片; 宽限期内的图片可能属于正在创建的帖子, 不做处理
type OrphanBlobJob struct {
	postRepo repository.PostRepo
	store    blob.Store
	locker   service.Locker
	grace    time.Duration
	now      func() time.Time
}

func NewOrphanBlobJob(postRepo repository.PostRepo, store blob.Store, locker service.Locker, grace time.Duration) *OrphanBlobJob {
	return &OrphanBlobJob{
		postRepo: postRepo,
		store:    store,
		locker:   locker,
		grace:    grace,
		now:      time.Now,
	}
}

func (s *OrphanBlobJob) Run() {
	traceID := "job-orphan-blob-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), consts.TraceIDKey, traceID)

	// 多实例部署时只让一个实例执行
	if s.locker != nil {
		ok, err := s.locker.TryLock(ctx, consts.OrphanSweepLock, traceID, 10*time.Minute)
		if err != nil || !ok {
			return
		}
		defer s.locker.UnLock(context.WithoutCancel(ctx), consts.OrphanSweepLock, traceID)
	}

	deleted, err := s.Sweep(ctx)
	if err != nil {
		log.ErrorContext(ctx, "orphan blob sweep failed", "err", err)
		return
	}
	if deleted > 0 {
		log.InfoContext(ctx, "orphan blob sweep finished", "cleaned_count", deleted)
	}
}

// Sweep 执行一次清理, 返回删除数量; 单个对象删除失败只记录日志
func (s *OrphanBlobJob) Sweep(ctx context.Context) (int, error) {
	refs, err := s.postRepo.ListImageRefs(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		referenced[ref] = struct{}{}
	}

	objects, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.grace)
	count := 0
	for _, obj := range objects {
		if _, ok := referenced[obj.Name]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err = s.store.Delete(ctx, obj.Name); err != nil {
			log.WarnContext(ctx, "failed to delete orphan blob", "name", obj.Name, "err", err)
			continue
		}
		count++
	}
	return count, nil
}
