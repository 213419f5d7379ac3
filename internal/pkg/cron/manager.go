package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"Milestone/internal/api/config"
	"Milestone/internal/job"
)

type Manager struct {
	engine         *cron.Cron
	reportEmailJob *job.ReportEmailJob
}

func NewCronManager(reportEmailJob *job.ReportEmailJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		reportEmailJob: reportEmailJob,
	}
}

// RegisterJobs 注册定时任务。报表任务每日触发，
// 实际发给谁由各用户偏好里的星期决定。
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Report.Cron
	if spec == "" {
		spec = "0 0 8 * * *"
	}
	if _, err := s.engine.AddJob(spec, s.reportEmailJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
