package dto

import "time"

// ContactUpsertDTO 新建/编辑联系人入参
type ContactUpsertDTO struct {
	FirstName           string   `json:"first_name" binding:"required" validate:"max=100"`
	LastName            string   `json:"last_name" binding:"required" validate:"max=100"`
	Email               *string  `json:"email" validate:"omitempty,email"`
	Phone               *string  `json:"phone" validate:"omitempty,max=30"`
	Address             *string  `json:"address" validate:"omitempty,max=255"`
	City                *string  `json:"city" validate:"omitempty,max=100"`
	State               *string  `json:"state" validate:"omitempty,max=50"`
	ZipCode             *string  `json:"zip_code" validate:"omitempty,max=20"`
	ContactType         string   `json:"contact_type" validate:"omitempty,oneof=buyer seller investor referral_partner"`
	Status              string   `json:"status" validate:"omitempty,oneof=new contacted qualified interested not_interested do_not_call"`
	LeadSource          *string  `json:"lead_source" validate:"omitempty,max=30"`
	Notes               *string  `json:"notes"`
	BudgetMin           *float64 `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax           *float64 `json:"budget_max" validate:"omitempty,min=0"`
	PreferredAreas      *string  `json:"preferred_areas" validate:"omitempty,max=500"`
	ContractDate        *string  `json:"contract_date" validate:"omitempty,datetime=2006-01-02"`
	PendingDate         *string  `json:"pending_date" validate:"omitempty,datetime=2006-01-02"`
	ClosedDate          *string  `json:"closed_date" validate:"omitempty,datetime=2006-01-02"`
	Price               *float64 `json:"price" validate:"omitempty,min=0"`
	Fee                 *float64 `json:"fee" validate:"omitempty,min=0"`
	PaidIncome          *float64 `json:"paid_income" validate:"omitempty,min=0"`
	EstimatedCommission *float64 `json:"estimated_commission" validate:"omitempty,min=0"`
	DaysOnMarket        *int     `json:"days_on_market" validate:"omitempty,min=0"`
}

// ContactDTO 联系人返回
type ContactDTO struct {
	ID                  uint64     `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               *string    `json:"email,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	Address             *string    `json:"address,omitempty"`
	City                *string    `json:"city,omitempty"`
	State               *string    `json:"state,omitempty"`
	ZipCode             *string    `json:"zip_code,omitempty"`
	ContactType         string     `json:"contact_type"`
	Status              string     `json:"status"`
	LeadSource          *string    `json:"lead_source,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	BudgetMin           *float64   `json:"budget_min,omitempty"`
	BudgetMax           *float64   `json:"budget_max,omitempty"`
	PreferredAreas      *string    `json:"preferred_areas,omitempty"`
	ContractDate        *time.Time `json:"contract_date,omitempty"`
	PendingDate         *time.Time `json:"pending_date,omitempty"`
	ClosedDate          *time.Time `json:"closed_date,omitempty"`
	Price               *float64   `json:"price,omitempty"`
	Fee                 *float64   `json:"fee,omitempty"`
	PaidIncome          *float64   `json:"paid_income,omitempty"`
	EstimatedCommission *float64   `json:"estimated_commission,omitempty"`
	DaysOnMarket        *int       `json:"days_on_market,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// InteractionCreateDTO 新增跟进记录入参
type InteractionCreateDTO struct {
	InteractionType string  `json:"interaction_type" binding:"required" validate:"oneof=call email text meeting showing open_house other"`
	Subject         *string `json:"subject" validate:"omitempty,max=255"`
	Notes           *string `json:"notes"`
	ScheduledAt     *string `json:"scheduled_at" validate:"omitempty"`
	FollowUpDate    *string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
}

// InteractionDTO 跟进记录返回
type InteractionDTO struct {
	ID              uint64     `json:"id"`
	ContactID       uint64     `json:"contact_id"`
	InteractionType string     `json:"interaction_type"`
	Subject         *string    `json:"subject,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ImportResultDTO CSV 导入结果，失败行跳过不中断
type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
