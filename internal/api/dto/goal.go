package dto

// GoalUpsertDTO 年度目标入参，deals_needed 由服务端重算
type GoalUpsertDTO struct {
	Year                     int     `json:"year" binding:"required" validate:"min=2000,max=2100"`
	AnnualIncomeGoal         float64 `json:"annual_income_goal" validate:"min=0"`
	AverageCommissionPerDeal float64 `json:"average_commission_per_deal" validate:"min=0"`
}

// GoalDTO 年度目标返回
type GoalDTO struct {
	Year                     int     `json:"year"`
	AnnualIncomeGoal         float64 `json:"annual_income_goal"`
	AverageCommissionPerDeal float64 `json:"average_commission_per_deal"`
	DealsNeeded              int     `json:"deals_needed"`
}

// GoalProgressDTO 年度目标进度：成交单数和成交额对照目标，进度封顶 100
type GoalProgressDTO struct {
	Year           int     `json:"year"`
	DealsNeeded    int     `json:"deals_needed"`
	ClosedDeals    int     `json:"closed_deals"`
	DealsProgress  float64 `json:"deals_progress"`
	AnnualGoal     float64 `json:"annual_goal"`
	VolumeClosed   float64 `json:"volume_closed"`
	VolumeProgress float64 `json:"volume_progress"`
	DailyDealsPace int     `json:"daily_deals_pace"`
}
