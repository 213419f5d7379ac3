package dto

// ReportDataDTO 报表数据接口返回，HasData 为 false 时其余字段为零值
type ReportDataDTO struct {
	HasData     bool      `json:"has_data"`
	Timeframe   string    `json:"timeframe,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	Totals      TotalsDTO `json:"totals"`
	ContactRate float64   `json:"contact_rate"`
	ApptRate    float64   `json:"appt_rate"`
	ArchiveURL  string    `json:"archive_url,omitempty"`
}

// ReportEmailDTO 手动触发报表邮件。
// user_id 省略时对所有开启订阅的用户批量发送。
type ReportEmailDTO struct {
	Timeframe string  `json:"timeframe" validate:"omitempty,oneof=week month"`
	UserID    *uint64 `json:"user_id"`
}

// ReportEmailResultDTO 单个收件人的发送结果
type ReportEmailResultDTO struct {
	UserID   uint64 `json:"user_id"`
	Email    string `json:"email"`
	Success  bool   `json:"success"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}
