package model

import (
	"time"
)

// Profile 用户资料，作为未配置邮件偏好时的收件地址兜底
type Profile struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_profile_user" json:"userId"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	FullName  *string   `gorm:"type:varchar(200)" json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
