package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const (
	PayTypeHourly  = "HOURLY"
	PayTypeMonthly = "MONTHLY"
)

type Job struct {
	bun.BaseModel `bun:"table:jobs"`

	BasicEntity
	Title               *string          `json:"title"                 bun:"title"`
	Category            *string          `json:"category"              bun:"category"`
	PayType             *string          `json:"pay_type"              bun:"pay_type"`
	BaseSalary          *decimal.Decimal `json:"base_salary"           bun:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"           bun:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier"   bun:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent"           bun:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount"   bun:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" bun:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent"    bun:"agency_fee_percent"`
	Active              *bool            `json:"active"                bun:"active"`
}

// JobAssignment links an employee to a job. Every numeric job field can be
// overridden per employee; nil means inherit the job default.
type JobAssignment struct {
	bun.BaseModel `bun:"table:job_assignments"`

	BasicEntity
	UserID              *int             `json:"user_id"               bun:"user_id"`
	JobID               *int             `json:"job_id"                bun:"job_id"`
	IsPrimary           *bool            `json:"is_primary"            bun:"is_primary"`
	BaseSalary          *decimal.Decimal `json:"base_salary"           bun:"base_salary"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"           bun:"hourly_rate"`
	OvertimeMultiplier  *decimal.Decimal `json:"overtime_multiplier"   bun:"overtime_multiplier"`
	TaxPercent          *decimal.Decimal `json:"tax_percent"           bun:"tax_percent"`
	LatePenaltyAmount   *decimal.Decimal `json:"late_penalty_amount"   bun:"late_penalty_amount"`
	AbsentPenaltyAmount *decimal.Decimal `json:"absent_penalty_amount" bun:"absent_penalty_amount"`
	AgencyFeePercent    *decimal.Decimal `json:"agency_fee_percent"    bun:"agency_fee_percent"`
}
