package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const (
	AdjustmentPending   = "PENDING"
	AdjustmentApplied   = "APPLIED"
	AdjustmentCancelled = "CANCELLED"

	PeriodDraft      = "DRAFT"
	PeriodProcessing = "PROCESSING"
	PeriodCompleted  = "COMPLETED"

	PayrollItemDraft    = "DRAFT"
	PayrollItemApproved = "APPROVED"
	PayrollItemPaid     = "PAID"
)

// Penalty is an ad hoc deduction against an employee. A nil PayrollPeriodID
// means it has not been folded into a payroll run yet.
type Penalty struct {
	bun.BaseModel `bun:"table:penalties"`

	BasicEntity
	UserID          *int             `json:"user_id"           bun:"user_id"`
	PayrollPeriodID *int             `json:"payroll_period_id" bun:"payroll_period_id"`
	Amount          *decimal.Decimal `json:"amount"            bun:"amount"`
	Reason          *string          `json:"reason"            bun:"reason"`
	Status          *string          `json:"status"            bun:"status"`
	IncurredAt      *time.Time       `json:"incurred_at"       bun:"incurred_at"`
}

type Bonus struct {
	bun.BaseModel `bun:"table:bonuses"`

	BasicEntity
	UserID          *int             `json:"user_id"           bun:"user_id"`
	PayrollPeriodID *int             `json:"payroll_period_id" bun:"payroll_period_id"`
	Amount          *decimal.Decimal `json:"amount"            bun:"amount"`
	Reason          *string          `json:"reason"            bun:"reason"`
	Status          *string          `json:"status"            bun:"status"`
	IncurredAt      *time.Time       `json:"incurred_at"       bun:"incurred_at"`
}

type PayrollPeriod struct {
	bun.BaseModel `bun:"table:payroll_periods"`

	BasicEntity
	StartDate *time.Time `json:"start_date" bun:"start_date"`
	EndDate   *time.Time `json:"end_date"   bun:"end_date"`
	Status    *string    `json:"status"     bun:"status"`
}

// PayrollItem is one employee's ledger line for one period. Unique on
// (payroll_period_id, user_id); regeneration upserts, never accumulates.
type PayrollItem struct {
	bun.BaseModel `bun:"table:payroll_items"`

	BasicEntity
	PayrollPeriodID *int `json:"payroll_period_id" bun:"payroll_period_id"`
	UserID          *int `json:"user_id"           bun:"user_id"`

	BaseSalary       *decimal.Decimal `json:"base_salary"       bun:"base_salary"`
	ShiftAllowance   *decimal.Decimal `json:"shift_allowance"   bun:"shift_allowance"`
	OvertimePay      *decimal.Decimal `json:"overtime_pay"      bun:"overtime_pay"`
	TaxableIncome    *decimal.Decimal `json:"taxable_income"    bun:"taxable_income"`
	GrossPay         *decimal.Decimal `json:"gross_pay"         bun:"gross_pay"`
	IncomeTax        *decimal.Decimal `json:"income_tax"        bun:"income_tax"`
	PensionEmployee  *decimal.Decimal `json:"pension_employee"  bun:"pension_employee"`
	PensionEmployer  *decimal.Decimal `json:"pension_employer"  bun:"pension_employer"`
	Penalties        *decimal.Decimal `json:"penalties"         bun:"penalties"`
	Bonuses          *decimal.Decimal `json:"bonuses"           bun:"bonuses"`
	AssetDeductions  *decimal.Decimal `json:"asset_deductions"  bun:"asset_deductions"`
	AgencyDeductions *decimal.Decimal `json:"agency_deductions" bun:"agency_deductions"`
	LoanRepayments   *decimal.Decimal `json:"loan_repayments"   bun:"loan_repayments"`
	TotalDeductions  *decimal.Decimal `json:"total_deductions"  bun:"total_deductions"`
	NetPay           *decimal.Decimal `json:"net_pay"           bun:"net_pay"`

	WorkedDays    *int             `json:"worked_days"    bun:"worked_days"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours" bun:"overtime_hours"`
	LateDays      *int             `json:"late_days"      bun:"late_days"`
	AbsentDays    *int             `json:"absent_days"    bun:"absent_days"`
	Status        *string          `json:"status"         bun:"status"`
}
