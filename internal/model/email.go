package model

import (
	"time"
)

const (
	ReportTypeWeeklyScheduled = "weekly_scheduled"
	ReportTypeManual          = "manual"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailPreference 周报投递偏好，一个用户一行
type EmailPreference struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	UserID              uint64    `gorm:"not null;uniqueIndex:idx_email_pref_user" json:"userId"`
	Email               string    `gorm:"type:varchar(255);not null" json:"email"`
	WeeklyReportEnabled bool      `gorm:"not null;default:0" json:"weeklyReportEnabled"`
	WeeklyReportDay     int       `gorm:"not null;default:0" json:"weeklyReportDay"` // 0 = 周日
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (EmailPreference) TableName() string {
	return "email_preferences"
}

// EmailLog 每次投递尝试的终态审计，仅追加
type EmailLog struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;index:idx_email_log_user" json:"userId"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	ReportType   string    `gorm:"type:varchar(30);not null" json:"reportType"`
	Status       string    `gorm:"type:varchar(10);not null" json:"status"`
	ErrorMessage *string   `gorm:"type:varchar(500)" json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
