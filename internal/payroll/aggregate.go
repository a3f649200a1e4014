package payroll

import (
	"time"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
)

var (
	pensionEmployeeRate = decimal.NewFromFloat(0.07)
	pensionEmployerRate = decimal.NewFromFloat(0.11)
)

// ShiftOutcome is one calculated shift together with the settings it was
// calculated under. Employees can work shifts under multiple jobs in one
// period; each shift keeps its own job's settings.
type ShiftOutcome struct {
	Day      time.Time
	PayType  string
	Earnings ShiftEarnings
}

// ItemInput is everything the aggregator needs to build one employee's
// payroll item for one period.
type ItemInput struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Primary assignment settings; drives monthly proration and tax.
	Primary EffectiveSettings

	Shifts          []ShiftOutcome
	PenaltyAmounts  []decimal.Decimal
	BonusAmounts    []decimal.Decimal
	AbsentDays      int
	AssetDeductions decimal.Decimal
	LoanRepayments  decimal.Decimal
}

// ItemTotals is the computed ledger line. BuildItem is deterministic: the
// same input always produces the same totals, which is what makes period
// regeneration converge instead of double-count.
type ItemTotals struct {
	BaseSalary       decimal.Decimal
	ShiftAllowance   decimal.Decimal
	OvertimePay      decimal.Decimal
	TaxableIncome    decimal.Decimal
	GrossPay         decimal.Decimal
	IncomeTax        decimal.Decimal
	PensionEmployee  decimal.Decimal
	PensionEmployer  decimal.Decimal
	Penalties        decimal.Decimal
	Bonuses          decimal.Decimal
	AssetDeductions  decimal.Decimal
	AgencyDeductions decimal.Decimal
	LoanRepayments   decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal

	WorkedDays    int
	OvertimeHours decimal.Decimal
	LateDays      int
	AbsentDays    int
}

// BuildItem folds a period's worth of shifts, penalties and bonuses into
// one ledger line and applies the flat-rate deduction model: configured
// income tax percent, 7% employee pension, 11% employer pension (reported,
// not deducted), and the agency fees collected per shift.
func BuildItem(in ItemInput) ItemTotals {
	var t ItemTotals

	workedDays := map[string]struct{}{}

	for _, s := range in.Shifts {
		t.ShiftAllowance = t.ShiftAllowance.Add(s.Earnings.RegularPay)
		t.OvertimePay = t.OvertimePay.Add(s.Earnings.OvertimePay)
		t.AgencyDeductions = t.AgencyDeductions.Add(s.Earnings.AgencyFee)
		t.OvertimeHours = t.OvertimeHours.Add(s.Earnings.OvertimeHours)

		if s.Earnings.Late {
			t.LateDays++
			t.Penalties = t.Penalties.Add(s.Earnings.LatePenalty)
		}

		workedDays[s.Day.Format("2006-01-02")] = struct{}{}
	}
	t.WorkedDays = len(workedDays)

	if in.Primary.PayType == entity.PayTypeMonthly {
		t.BaseSalary = prorate(in.Primary.BaseSalary, in.PeriodStart, in.PeriodEnd, t.WorkedDays)
	}

	for _, p := range in.PenaltyAmounts {
		t.Penalties = t.Penalties.Add(p)
	}
	for _, b := range in.BonusAmounts {
		t.Bonuses = t.Bonuses.Add(b)
	}

	t.AbsentDays = in.AbsentDays
	if in.AbsentDays > 0 {
		absent := in.Primary.AbsentPenaltyAmount.Mul(decimal.NewFromInt(int64(in.AbsentDays)))
		t.Penalties = t.Penalties.Add(absent)
	}

	t.AssetDeductions = in.AssetDeductions
	t.LoanRepayments = in.LoanRepayments

	t.TaxableIncome = t.BaseSalary.Add(t.ShiftAllowance).Add(t.OvertimePay)
	t.GrossPay = t.TaxableIncome

	t.IncomeTax = t.TaxableIncome.Mul(in.Primary.TaxPercent).Div(hundred).Round(2)
	t.PensionEmployee = t.TaxableIncome.Mul(pensionEmployeeRate).Round(2)
	t.PensionEmployer = t.TaxableIncome.Mul(pensionEmployerRate).Round(2)

	t.TotalDeductions = t.IncomeTax.
		Add(t.PensionEmployee).
		Add(t.Penalties).
		Add(t.AssetDeductions).
		Add(t.AgencyDeductions).
		Add(t.LoanRepayments)

	t.NetPay = t.GrossPay.Add(t.Bonuses).Sub(t.TotalDeductions).Round(2)

	return t
}

// prorate spreads a monthly base over the calendar days of the period and
// pays only the days worked.
func prorate(baseSalary decimal.Decimal, start, end time.Time, workedDays int) decimal.Decimal {
	days := calendarDays(start, end)
	if days <= 0 || workedDays <= 0 {
		return decimal.Zero
	}
	if workedDays > days {
		workedDays = days
	}

	daily := baseSalary.Div(decimal.NewFromInt(int64(days)))
	return daily.Mul(decimal.NewFromInt(int64(workedDays))).Round(2)
}

func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// CanGenerate reports whether a period in the given status may be
// (re)generated. DRAFT and PROCESSING regenerate; COMPLETED is terminal.
func CanGenerate(status string) error {
	switch status {
	case entity.PeriodDraft, entity.PeriodProcessing:
		return nil
	case entity.PeriodCompleted:
		return ErrPeriodLocked
	default:
		return ErrPeriodLocked
	}
}

// CanApprove reports whether a period may be approved.
func CanApprove(status string, itemCount int) error {
	if status == entity.PeriodCompleted {
		return ErrPeriodLocked
	}
	if itemCount == 0 {
		return ErrNothingToApprove
	}
	return nil
}
