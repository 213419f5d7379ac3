package model

import (
	"time"
)

// DailyTarget 每日活动目标，一个用户一行，由用户手工维护
type DailyTarget struct {
	ID                         uint64    `gorm:"primaryKey" json:"id"`
	UserID                     uint64    `gorm:"not null;uniqueIndex:idx_target_user" json:"userId"`
	CallsMadeTarget            int       `gorm:"not null;default:0" json:"callsMadeTarget"`
	ContactsReachedTarget      int       `gorm:"not null;default:0" json:"contactsReachedTarget"`
	AppointmentsSetTarget      int       `gorm:"not null;default:0" json:"appointmentsSetTarget"`
	AppointmentsAttendedTarget int       `gorm:"not null;default:0" json:"appointmentsAttendedTarget"`
	ListingPresentationsTarget int       `gorm:"not null;default:0" json:"listingPresentationsTarget"`
	ListingsTakenTarget        int       `gorm:"not null;default:0" json:"listingsTakenTarget"`
	BuyersSignedTarget         int       `gorm:"not null;default:0" json:"buyersSignedTarget"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

func (DailyTarget) TableName() string {
	return "daily_targets"
}

// DefaultDailyTarget 未保存过目标时的默认值（前端表单的初始值）
func DefaultDailyTarget(userID uint64) *DailyTarget {
	return &DailyTarget{
		UserID:                     userID,
		CallsMadeTarget:            25,
		ContactsReachedTarget:      8,
		AppointmentsSetTarget:      4,
		AppointmentsAttendedTarget: 3,
		ListingPresentationsTarget: 2,
		ListingsTakenTarget:        1,
		BuyersSignedTarget:         1,
	}
}
