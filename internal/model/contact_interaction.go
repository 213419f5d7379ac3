package model

import (
	"time"
)

// ContactInteraction 联系人跟进记录，仅追加
type ContactInteraction struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	ContactID       uint64     `gorm:"not null;index:idx_interaction_contact" json:"contactId"`
	UserID          uint64     `gorm:"not null" json:"userId"`
	InteractionType string     `gorm:"type:varchar(30);not null" json:"interactionType"`
	Subject         *string    `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
	FollowUpDate    *time.Time `gorm:"type:date" json:"followUpDate,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (ContactInteraction) TableName() string {
	return "contact_interactions"
}
