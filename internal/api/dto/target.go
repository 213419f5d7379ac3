package dto

// TargetUpsertDTO 每日活动目标入参
type TargetUpsertDTO struct {
	CallsMadeTarget            int `json:"calls_made_target" validate:"min=0"`
	ContactsReachedTarget      int `json:"contacts_reached_target" validate:"min=0"`
	AppointmentsSetTarget      int `json:"appointments_set_target" validate:"min=0"`
	AppointmentsAttendedTarget int `json:"appointments_attended_target" validate:"min=0"`
	ListingPresentationsTarget int `json:"listing_presentations_target" validate:"min=0"`
	ListingsTakenTarget        int `json:"listings_taken_target" validate:"min=0"`
	BuyersSignedTarget         int `json:"buyers_signed_target" validate:"min=0"`
}

// TargetDTO 每日活动目标返回
type TargetDTO struct {
	CallsMadeTarget            int `json:"calls_made_target"`
	ContactsReachedTarget      int `json:"contacts_reached_target"`
	AppointmentsSetTarget      int `json:"appointments_set_target"`
	AppointmentsAttendedTarget int `json:"appointments_attended_target"`
	ListingPresentationsTarget int `json:"listing_presentations_target"`
	ListingsTakenTarget        int `json:"listings_taken_target"`
	BuyersSignedTarget         int `json:"buyers_signed_target"`
}

// DailyProgressItemDTO 单项指标的当日完成度
type DailyProgressItemDTO struct {
	Metric   string  `json:"metric"`
	Current  int     `json:"current"`
	Target   int     `json:"target"`
	Progress float64 `json:"progress"`
}

// DailyProgressDTO 当日目标完成度，source 标明目标口径来源
type DailyProgressDTO struct {
	Date   string                 `json:"date"`
	Source string                 `json:"source"` // explicit | derived
	Items  []DailyProgressItemDTO `json:"items"`
}
