package model

import (
	"time"
)

const (
	ContactTypeBuyer           = "buyer"
	ContactTypeSeller          = "seller"
	ContactTypeInvestor        = "investor"
	ContactTypeReferralPartner = "referral_partner"
)

const (
	ContactStatusNew           = "new"
	ContactStatusContacted     = "contacted"
	ContactStatusQualified     = "qualified"
	ContactStatusInterested    = "interested"
	ContactStatusNotInterested = "not_interested"
	ContactStatusDoNotCall     = "do_not_call"
)

// ContactTypes 合法的联系人类型枚举
var ContactTypes = []string{
	ContactTypeBuyer,
	ContactTypeSeller,
	ContactTypeInvestor,
	ContactTypeReferralPartner,
}

// ContactStatuses 合法的跟进状态枚举
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusContacted,
	ContactStatusQualified,
	ContactStatusInterested,
	ContactStatusNotInterested,
	ContactStatusDoNotCall,
}

// LeadSources 合法的获客渠道枚举
var LeadSources = []string{
	"referral",
	"website",
	"social_media",
	"cold_call",
	"open_house",
	"advertisement",
	"other",
	"past_client",
	"expired_listing",
	"for_sale_by_owner",
	"center_of_influence",
	"just_listed",
	"just_sold",
	"sign_call",
	"advertisement_call",
	"paid_lead_source",
	"door_knocking",
	"frbo",
	"probate",
	"absentee_owner",
	"attorney_referral",
	"agent_2_agent_calls",
}

// Contact 客户/潜客档案，含可选的成交字段
type Contact struct {
	ID                  uint64     `gorm:"primaryKey" json:"id"`
	UserID              uint64     `gorm:"not null;index:idx_contact_user" json:"userId"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"lastName"`
	Email               *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone               *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address             *string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	City                *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State               *string    `gorm:"type:varchar(50)" json:"state,omitempty"`
	ZipCode             *string    `gorm:"type:varchar(20)" json:"zipCode,omitempty"`
	ContactType         string     `gorm:"type:varchar(20);not null;default:'buyer'" json:"contactType"`
	Status              string     `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	LeadSource          *string    `gorm:"type:varchar(30)" json:"leadSource,omitempty"`
	Notes               *string    `gorm:"type:text" json:"notes,omitempty"`
	BudgetMin           *float64   `gorm:"type:decimal(14,2)" json:"budgetMin,omitempty"`
	BudgetMax           *float64   `gorm:"type:decimal(14,2)" json:"budgetMax,omitempty"`
	PreferredAreas      *string    `gorm:"type:varchar(500)" json:"preferredAreas,omitempty"`
	ContractDate        *time.Time `gorm:"type:date" json:"contractDate,omitempty"`
	PendingDate         *time.Time `gorm:"type:date" json:"pendingDate,omitempty"`
	ClosedDate          *time.Time `gorm:"type:date" json:"closedDate,omitempty"`
	Price               *float64   `gorm:"type:decimal(14,2)" json:"price,omitempty"`
	Fee                 *float64   `gorm:"type:decimal(14,2)" json:"fee,omitempty"`
	PaidIncome          *float64   `gorm:"type:decimal(14,2)" json:"paidIncome,omitempty"`
	EstimatedCommission *float64   `gorm:"type:decimal(14,2)" json:"estimatedCommission,omitempty"`
	DaysOnMarket        *int       `json:"daysOnMarket,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}
