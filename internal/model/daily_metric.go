package model

import (
	"time"
)

// DailyMetric 经纪人单日活动计数，(user_id, metric_date) 唯一
type DailyMetric struct {
	ID                   uint64    `gorm:"primaryKey" json:"id"`
	UserID               uint64    `gorm:"not null;index:idx_user_date,unique" json:"userId"`
	MetricDate           time.Time `gorm:"type:date;not null;index:idx_user_date,unique;column:metric_date" json:"metricDate"`
	CallsMade            int       `gorm:"not null;default:0" json:"callsMade"`
	ContactsReached      int       `gorm:"not null;default:0" json:"contactsReached"`
	AppointmentsSet      int       `gorm:"not null;default:0" json:"appointmentsSet"`
	AppointmentsAttended int       `gorm:"not null;default:0" json:"appointmentsAttended"`
	ListingPresentations int       `gorm:"not null;default:0" json:"listingPresentations"`
	ListingsTaken        int       `gorm:"not null;default:0" json:"listingsTaken"`
	BuyersSigned         int       `gorm:"not null;default:0" json:"buyersSigned"`
	ActiveListings       int       `gorm:"not null;default:0" json:"activeListings"`
	PendingContracts     int       `gorm:"not null;default:0" json:"pendingContracts"`
	ClosedDeals          int       `gorm:"not null;default:0" json:"closedDeals"`
	VolumeClosed         float64   `gorm:"type:decimal(14,2);not null;default:0" json:"volumeClosed"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}

// MetricDelta 联系人成交信息对当日计数的增量（删除时取负数回冲）
type MetricDelta struct {
	BuyersSigned  int
	ListingsTaken int
	ClosedDeals   int
	VolumeClosed  float64
}

// IsZero 全部增量为零时无需落库
func (d MetricDelta) IsZero() bool {
	return d.BuyersSigned == 0 && d.ListingsTaken == 0 && d.ClosedDeals == 0 && d.VolumeClosed == 0
}

// Negate 取反，用于删除联系人时回冲
func (d MetricDelta) Negate() MetricDelta {
	return MetricDelta{
		BuyersSigned:  -d.BuyersSigned,
		ListingsTaken: -d.ListingsTaken,
		ClosedDeals:   -d.ClosedDeals,
		VolumeClosed:  -d.VolumeClosed,
	}
}

// MetricAdjustment 指定日期上的一组计数增量。
// 签约日和成交日可能不同，所以按日期分组下发。
type MetricAdjustment struct {
	Date  time.Time
	Delta MetricDelta
}
