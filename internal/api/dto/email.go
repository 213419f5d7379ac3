package dto

import "time"

// EmailPreferenceDTO 周报投递偏好，入参与返回共用
type EmailPreferenceDTO struct {
	Email               string `json:"email" binding:"required" validate:"email"`
	WeeklyReportEnabled bool   `json:"weekly_report_enabled"`
	WeeklyReportDay     int    `json:"weekly_report_day" validate:"min=0,max=6"` // 0 = 周日
}

// EmailLogDTO 投递审计记录
type EmailLogDTO struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	ReportType   string    `json:"report_type"`
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
