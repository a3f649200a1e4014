package job

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	Category *string
	Active   *bool
}

type GetListResponse struct {
	ID                 int              `json:"id"`
	Title              *string          `json:"title"`
	Category           *string          `json:"category"`
	PayType            *string          `json:"pay_type"`
	BaseSalary         *decimal.Decimal `json:"base_salary"`
	HourlyRate         *decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier"`
	TaxPercent         *decimal.Decimal `json:"tax_percent"`
	AgencyFeePercent   *decimal.Decimal `json:"agency_fee_percent"`
	Active             *bool            `json:"active"`
}

type CreateRequest struct {
	Title               *string          `json:"title" form:"title"`
	Category            *string          `json:"category" form:"category"`
	PayType             *string          `json:"pay_type" form:"pay_type"`
	BaseSalary          *decimal.Decimal `json:"base_salary" form:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate" form:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier" form:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent" form:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount" form:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" form:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent" form:"agency_fee_percent"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:jobs"`

	ID                  int              `json:"id" bun:"-"`
	Title               *string          `json:"title" bun:"title"`
	Category            *string          `json:"category" bun:"category"`
	PayType             *string          `json:"pay_type" bun:"pay_type"`
	BaseSalary          *decimal.Decimal `json:"base_salary" bun:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate" bun:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier" bun:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent" bun:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount" bun:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" bun:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent" bun:"agency_fee_percent"`
	Active              bool             `json:"active" bun:"active"`
	CreatedAt           time.Time        `json:"-" bun:"created_at"`
	CreatedBy           int              `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID                  int              `json:"id" form:"id"`
	Title               *string          `json:"title" form:"title"`
	Category            *string          `json:"category" form:"category"`
	PayType             *string          `json:"pay_type" form:"pay_type"`
	BaseSalary          *decimal.Decimal `json:"base_salary" form:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate" form:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier" form:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent" form:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount" form:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" form:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent" form:"agency_fee_percent"`
	Active              *bool            `json:"active" form:"active"`
}

type AssignRequest struct {
	UserID              *int             `json:"user_id" form:"user_id"`
	JobID               *int             `json:"job_id" form:"job_id"`
	IsPrimary           *bool            `json:"is_primary" form:"is_primary"`
	BaseSalary          *decimal.Decimal `json:"base_salary" form:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate" form:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier" form:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent" form:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount" form:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" form:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent" form:"agency_fee_percent"`
}
