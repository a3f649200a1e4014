package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
}

type CreatePeriodRequest struct {
	StartDate *time.Time `json:"start_date" form:"start_date"`
	EndDate   *time.Time `json:"end_date" form:"end_date"`
}

type CreatePeriodResponse struct {
	bun.BaseModel `bun:"table:payroll_periods"`

	ID        int        `json:"id" bun:"-"`
	StartDate *time.Time `json:"start_date" bun:"start_date"`
	EndDate   *time.Time `json:"end_date" bun:"end_date"`
	Status    string     `json:"status" bun:"status"`
	CreatedAt time.Time  `json:"-" bun:"created_at"`
	CreatedBy int        `json:"-" bun:"created_by"`
}

type GetPeriodListResponse struct {
	ID        int        `json:"id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status"`
	ItemCount int        `json:"item_count"`
}

// GenerateFailure reports one employee whose item could not be computed.
// The rest of the batch still persists.
type GenerateFailure struct {
	UserID int    `json:"user_id"`
	Reason string `json:"reason"`
}

type GenerateResponse struct {
	PeriodID  int               `json:"period_id"`
	ItemCount int               `json:"item_count"`
	Failures  []GenerateFailure `json:"failures"`
}

type GetItemListResponse struct {
	ID         int     `json:"id"`
	UserID     *int    `json:"user_id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`

	BaseSalary       *decimal.Decimal `json:"base_salary"`
	ShiftAllowance   *decimal.Decimal `json:"shift_allowance"`
	OvertimePay      *decimal.Decimal `json:"overtime_pay"`
	GrossPay         *decimal.Decimal `json:"gross_pay"`
	IncomeTax        *decimal.Decimal `json:"income_tax"`
	PensionEmployee  *decimal.Decimal `json:"pension_employee"`
	PensionEmployer  *decimal.Decimal `json:"pension_employer"`
	Penalties        *decimal.Decimal `json:"penalties"`
	Bonuses          *decimal.Decimal `json:"bonuses"`
	AgencyDeductions *decimal.Decimal `json:"agency_deductions"`
	TotalDeductions  *decimal.Decimal `json:"total_deductions"`
	NetPay           *decimal.Decimal `json:"net_pay"`

	WorkedDays    *int             `json:"worked_days"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours"`
	LateDays      *int             `json:"late_days"`
	AbsentDays    *int             `json:"absent_days"`
	Status        *string          `json:"status"`
}

type AdjustmentRequest struct {
	UserID     *int             `json:"user_id" form:"user_id"`
	Amount     *decimal.Decimal `json:"amount" form:"amount"`
	Reason     *string          `json:"reason" form:"reason"`
	IncurredAt *time.Time       `json:"incurred_at" form:"incurred_at"`
}
