package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"

	"Milestone/internal/pkg/consts"
	"Milestone/internal/pkg/logger"
	"Milestone/internal/pkg/redis"
	"Milestone/internal/service"
)

// ReportEmailJob 每日触发的周报投递任务。
// 真正发给谁由各用户偏好里的星期决定，没人匹配时静默跳过。
type ReportEmailJob struct {
	emailService service.EmailService
}

func NewReportEmailJob(emailService service.EmailService) *ReportEmailJob {
	return &ReportEmailJob{
		emailService: emailService,
	}
}

func (s *ReportEmailJob) Run() {
	traceID := "job-report-email-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时抢一把日级别的锁，抢不到说明别的实例在发
	lock, err := redis.TryLock(ctx, consts.ReportJobLock, traceID, time.Hour, 1)
	if err != nil {
		log.ErrorContext(ctx, "report email job lock error", "err", err)
		return
	}
	if !lock {
		log.InfoContext(ctx, "report email job already running elsewhere")
		return
	}
	defer redis.UnLock(ctx, consts.ReportJobLock, traceID)

	weekday := time.Now().Weekday()
	log.InfoContext(ctx, "report email job started", "weekday", int(weekday))

	results, err := s.emailService.SendScheduled(ctx, weekday)
	if err != nil {
		log.ErrorContext(ctx, "report email job failed", "err", err)
		return
	}

	sent, failed := 0, 0
	for _, r := range results {
		if r.Success {
			sent++
		} else {
			failed++
		}
	}
	log.InfoContext(ctx, "report email job finished", "sent", sent, "failed", failed)
}
