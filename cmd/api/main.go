package main

import (
	"SocialMapp/internal/api/config"
	"SocialMapp/internal/pkg/cron"
	"SocialMapp/internal/pkg/logger"
	"SocialMapp/internal/pkg/mongo"
	"SocialMapp/internal/pkg/redis"
	"SocialMapp/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	gin.SetMode(cfg.Server.Mode)

	// 初始化日志
	accessLog := logger.InitLogger(cfg.Logstash)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootCancel()

	// Mongo 连接
	db, err := mongo.InitMongo(bootCtx, cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	// Redis 连接, 可选
	var rdb *goredis.Client
	if cfg.Redis.Enable {
		rdb, err = redis.InitRedis(bootCtx, cfg.Redis)
		if err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer func() {
			_ = rdb.Close()
		}()
	} else {
		log.Warn("Redis disabled, post lock and token revocation are off")
	}

	// 图片存储
	store, closeStore, err := wire.NewBlobStore(bootCtx, cfg)
	if err != nil {
		log.Error("Fatal error: failed to initialize blob store", "err", err)
		panic(err)
	}
	defer func() {
		_ = closeStore(context.Background())
	}()

	// 依赖注入
	app, err := wire.BuildApplication(bootCtx, db, rdb, store, accessLog, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
