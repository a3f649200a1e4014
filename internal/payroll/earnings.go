package payroll

import (
	"time"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
)

// DefaultLateGrace is the lateness grace window. Zero by default: any
// clock-in after the scheduled start is flagged.
const DefaultLateGrace = 0 * time.Minute

var hundred = decimal.NewFromInt(100)

// ShiftEarnings is the money outcome of one completed shift.
type ShiftEarnings struct {
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	RegularPay    decimal.Decimal `json:"regular_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	Earnings      decimal.Decimal `json:"earnings"`
	AgencyFee     decimal.Decimal `json:"agency_fee"`
	LatePenalty   decimal.Decimal `json:"late_penalty"`
	Late          bool            `json:"late"`
}

// CalculateShift computes pay and flags for one shift against its
// attendance log and resolved settings.
//
// HOURLY shifts pay rate*regular + rate*multiplier*overtime, where overtime
// is any excess over the scheduled window. MONTHLY shifts pay nothing per
// shift except overtime (from the job's hourly rate) and only when the
// shift is explicitly flagged as an overtime shift; the monthly base is
// prorated at aggregation, not here.
func CalculateShift(shift entity.ShiftSchedule, log entity.AttendanceLog, settings EffectiveSettings, grace time.Duration) (ShiftEarnings, error) {
	if log.ClockInTime == nil || log.ClockOutTime == nil {
		return ShiftEarnings{}, ErrShiftIncomplete
	}
	if log.ClockOutTime.Before(*log.ClockInTime) {
		return ShiftEarnings{}, ErrInvalidAttendanceWindow
	}

	worked := log.ClockOutTime.Sub(*log.ClockInTime)

	var scheduled time.Duration
	if shift.StartTime != nil && shift.EndTime != nil {
		scheduled = shift.EndTime.Sub(*shift.StartTime)
	}

	workedHours := hoursOf(worked)
	scheduledHours := hoursOf(scheduled)

	overtimeEligible := settings.PayType == entity.PayTypeHourly ||
		(shift.IsOvertimeShift != nil && *shift.IsOvertimeShift)

	var result ShiftEarnings
	if overtimeEligible && workedHours.GreaterThan(scheduledHours) {
		result.OvertimeHours = workedHours.Sub(scheduledHours)
		result.RegularHours = scheduledHours
	} else {
		result.RegularHours = workedHours
	}

	overtimeRate := settings.HourlyRate.Mul(settings.OvertimeMultiplier)
	result.OvertimePay = overtimeRate.Mul(result.OvertimeHours).Round(2)

	switch settings.PayType {
	case entity.PayTypeMonthly:
		// Base pay is prorated by the aggregator; per shift only overtime.
		result.RegularPay = decimal.Zero
	default:
		result.RegularPay = settings.HourlyRate.Mul(result.RegularHours).Round(2)
	}

	result.Earnings = result.RegularPay.Add(result.OvertimePay)

	// Reported for client billing, never subtracted from the employee.
	result.AgencyFee = result.Earnings.Mul(settings.AgencyFeePercent).Div(hundred).Round(2)

	if shift.StartTime != nil && log.ClockInTime.After(shift.StartTime.Add(grace)) {
		result.Late = true
		result.LatePenalty = settings.LatePenaltyAmount
	}

	return result, nil
}

func hoursOf(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.Hours()).Round(4)
}
