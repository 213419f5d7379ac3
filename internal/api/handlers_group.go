package api

import "Milestone/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	MetricHandler  *handler.MetricHandler
	ContactHandler *handler.ContactHandler
	GoalHandler    *handler.GoalHandler
	TargetHandler  *handler.TargetHandler
	ReportHandler  *handler.ReportHandler
	EmailHandler   *handler.EmailHandler
}
