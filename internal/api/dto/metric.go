package dto

// MetricUpsertDTO 单日计数上报，缺省字段按 0 处理
type MetricUpsertDTO struct {
	MetricDate           string   `json:"metric_date" binding:"required" validate:"datetime=2006-01-02"`
	CallsMade            *int     `json:"calls_made" validate:"omitempty,min=0"`
	ContactsReached      *int     `json:"contacts_reached" validate:"omitempty,min=0"`
	AppointmentsSet      *int     `json:"appointments_set" validate:"omitempty,min=0"`
	AppointmentsAttended *int     `json:"appointments_attended" validate:"omitempty,min=0"`
	ListingPresentations *int     `json:"listing_presentations" validate:"omitempty,min=0"`
	ListingsTaken        *int     `json:"listings_taken" validate:"omitempty,min=0"`
	BuyersSigned         *int     `json:"buyers_signed" validate:"omitempty,min=0"`
	ActiveListings       *int     `json:"active_listings" validate:"omitempty,min=0"`
	PendingContracts     *int     `json:"pending_contracts" validate:"omitempty,min=0"`
	ClosedDeals          *int     `json:"closed_deals" validate:"omitempty,min=0"`
	VolumeClosed         *float64 `json:"volume_closed" validate:"omitempty,min=0"`
}

// MetricDTO 单日计数返回
type MetricDTO struct {
	MetricDate           string  `json:"metric_date"`
	CallsMade            int     `json:"calls_made"`
	ContactsReached      int     `json:"contacts_reached"`
	AppointmentsSet      int     `json:"appointments_set"`
	AppointmentsAttended int     `json:"appointments_attended"`
	ListingPresentations int     `json:"listing_presentations"`
	ListingsTaken        int     `json:"listings_taken"`
	BuyersSigned         int     `json:"buyers_signed"`
	ActiveListings       int     `json:"active_listings"`
	PendingContracts     int     `json:"pending_contracts"`
	ClosedDeals          int     `json:"closed_deals"`
	VolumeClosed         float64 `json:"volume_closed"`
}

// TotalsDTO 时间段内聚合后的计数
type TotalsDTO struct {
	CallsMade            int     `json:"calls_made"`
	ContactsReached      int     `json:"contacts_reached"`
	AppointmentsSet      int     `json:"appointments_set"`
	AppointmentsAttended int     `json:"appointments_attended"`
	ListingPresentations int     `json:"listing_presentations"`
	ListingsTaken        int     `json:"listings_taken"`
	BuyersSigned         int     `json:"buyers_signed"`
	ActiveListings       int     `json:"active_listings"`
	PendingContracts     int     `json:"pending_contracts"`
	ClosedDeals          int     `json:"closed_deals"`
	VolumeClosed         float64 `json:"volume_closed"`
}

// FunnelDTO 漏斗各级转化率，百分数保留一位小数
type FunnelDTO struct {
	CallsToContacts         float64 `json:"calls_to_contacts"`
	ContactsToAppointments  float64 `json:"contacts_to_appointments"`
	AppointmentsToAttended  float64 `json:"appointments_to_attended"`
	AttendedToPresentations float64 `json:"attended_to_presentations"`
	PresentationsToListings float64 `json:"presentations_to_listings"`
}

// SummaryDTO 汇总接口返回：聚合计数 + 漏斗 + 目标进度
type SummaryDTO struct {
	Timeframe    string           `json:"timeframe"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Totals       TotalsDTO        `json:"totals"`
	Funnel       FunnelDTO        `json:"funnel"`
	GoalProgress *GoalProgressDTO `json:"goal_progress,omitempty"`
}
