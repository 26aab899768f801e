package wire

import (
	"SocialMapp/internal/api"
	"SocialMapp/internal/api/config"
	"SocialMapp/internal/api/handler"
	"SocialMapp/internal/job"
	"SocialMapp/internal/pkg/blob"
	"SocialMapp/internal/pkg/consts"
	"SocialMapp/internal/pkg/cron"
	"SocialMapp/internal/pkg/gcs"
	"SocialMapp/internal/pkg/minio"
	"SocialMapp/internal/pkg/redis"
	"SocialMapp/internal/pkg/security"
	"SocialMapp/internal/repository"
	"SocialMapp/internal/service"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	robfigcron "github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

// NewBlobStore 按配置选择图片存储后端
func NewBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, func(context.Context) error, error) {
	switch cfg.Blob.Provider {
	case consts.ProviderMinIO, "":
		store, err := minio.NewStore(ctx, cfg.MinIO)
		if err != nil {
			return nil, nil, err
		}
		return store, func(context.Context) error { return nil }, nil
	case consts.ProviderGCS:
		store, err := gcs.NewStore(ctx, cfg.GCS)
		if err != nil {
			return nil, nil, err
		}
		return store, func(context.Context) error { return store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown blob provider %q", cfg.Blob.Provider)
	}
}

// BuildApplication rdb 为 nil 时不启用帖子锁和凭据吊销
func BuildApplication(ctx context.Context, db *mongo.Database, rdb *goredis.Client, store blob.Store, accessLog io.Writer, cfg *config.Config) (*ApplicationContainer, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	userProfileRepo := repository.NewUserProfileRepo(db)

	var (
		locker      service.Locker
		revocations security.RevocationStore
	)
	if rdb != nil {
		locker = redis.NewLocker(rdb)
		revocations = redis.NewRevocations(rdb)
	}

	identityService := service.NewIdentityService(userProfileRepo)
	likeService := service.NewLikeService(likeRepo, postRepo, locker)
	commentService := service.NewCommentService(commentRepo, postRepo, identityService, locker)
	postService := service.NewPostService(postRepo, commentService, likeService, identityService, store, locker)
	feedService := service.NewFeedService(postService, commentService, likeService, identityService)

	verifier := security.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, revocations)

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(feedService),
		CommentHandler: handler.NewCommentHandler(feedService),
		LikeHandler:    handler.NewLikeHandler(feedService),
		UserHandler:    handler.NewUserHandler(feedService, verifier),
	}

	router := api.SetupRouter(handlers, api.RouterOptions{
		Verifier:     verifier,
		AllowOrigins: cfg.Server.AllowOrigins,
		AccessLog:    accessLog,
		LogToken:     cfg.Logstash.Token,
		LogIndex:     cfg.Logstash.Index,
	})

	var orphanJob robfigcron.Job
	if cfg.Jobs.OrphanSweep.Enable {
		grace := time.Duration(cfg.Jobs.OrphanSweep.GraceMinute) * time.Minute
		orphanJob = job.NewOrphanBlobJob(postRepo, store, locker, grace)
	}

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cron.NewCronManager(cfg.Jobs, orphanJob),
	}, nil
}
