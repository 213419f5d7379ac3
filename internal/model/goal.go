package model

import (
	"time"
)

// Goal 年度目标，(user_id, year) 唯一，deals_needed 由服务端计算后落库
type Goal struct {
	ID                       uint64    `gorm:"primaryKey" json:"id"`
	UserID                   uint64    `gorm:"not null;index:idx_goal_user_year,unique" json:"userId"`
	Year                     int       `gorm:"not null;index:idx_goal_user_year,unique" json:"year"`
	AnnualIncomeGoal         float64   `gorm:"type:decimal(14,2);not null" json:"annualIncomeGoal"`
	AverageCommissionPerDeal float64   `gorm:"type:decimal(14,2);not null" json:"averageCommissionPerDeal"`
	DealsNeeded              int       `gorm:"not null;default:0" json:"dealsNeeded"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}
