package cron

import (
	"SocialMapp/internal/api/config"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	cfg           config.JobsConfig
	orphanBlobJob cron.Job
}

// NewCronManager orphanBlobJob 为 nil 时不注册清理任务
func NewCronManager(cfg config.JobsConfig, orphanBlobJob cron.Job) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		cfg:           cfg,
		orphanBlobJob: orphanBlobJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.cfg.OrphanSweep.Enable && s.orphanBlobJob != nil {
		if _, err := s.engine.AddJob(s.cfg.OrphanSweep.Spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.orphanBlobJob)); err != nil {
			return err
		}
		log.Info("orphan blob sweep scheduled", "spec", s.cfg.OrphanSweep.Spec)
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
