// Package payroll implements the calculation core: effective-settings
// resolution, per-shift earnings, and period aggregation. Everything here
// is pure; the repositories feed it rows and persist what comes back.
package payroll

import (
	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
)

// DefaultOvertimeMultiplier applies when neither the job nor the
// assignment specifies one.
var DefaultOvertimeMultiplier = decimal.NewFromFloat(1.5)

// EffectiveSettings is the final rate/policy record for one employee on
// one job: job defaults with every non-nil assignment override substituted.
type EffectiveSettings struct {
	JobID               int             `json:"job_id"`
	PayType             string          `json:"pay_type"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier  decimal.Decimal `json:"overtime_multiplier"`
	TaxPercent          decimal.Decimal `json:"tax_percent"`
	LatePenaltyAmount   decimal.Decimal `json:"late_penalty_amount"`
	AbsentPenaltyAmount decimal.Decimal `json:"absent_penalty_amount"`
	AgencyFeePercent    decimal.Decimal `json:"agency_fee_percent"`
}

// ResolveSettings merges job defaults with assignment overrides. A retired
// job still resolves; historical payroll must stay computable. A nil
// assignment fails with ErrNoJobAssignment.
func ResolveSettings(job entity.Job, assignment *entity.JobAssignment) (EffectiveSettings, error) {
	if assignment == nil {
		return EffectiveSettings{}, ErrNoJobAssignment
	}

	settings := EffectiveSettings{
		JobID:              job.ID,
		PayType:            entity.PayTypeHourly,
		OvertimeMultiplier: DefaultOvertimeMultiplier,
	}

	if job.PayType != nil {
		settings.PayType = *job.PayType
	}
	settings.BaseSalary = pick(job.BaseSalary, assignment.BaseSalary, decimal.Zero)
	settings.HourlyRate = pick(job.HourlyRate, assignment.HourlyRate, decimal.Zero)
	settings.OvertimeMultiplier = pick(job.OvertimeMultiplier, assignment.OvertimeMultiplier, DefaultOvertimeMultiplier)
	settings.TaxPercent = pick(job.TaxPercent, assignment.TaxPercent, decimal.Zero)
	settings.LatePenaltyAmount = pick(job.LatePenaltyAmount, assignment.LatePenaltyAmount, decimal.Zero)
	settings.AbsentPenaltyAmount = pick(job.AbsentPenaltyAmount, assignment.AbsentPenaltyAmount, decimal.Zero)
	settings.AgencyFeePercent = pick(job.AgencyFeePercent, assignment.AgencyFeePercent, decimal.Zero)

	return settings, nil
}

// pick applies the cascade: override beats job default beats fallback.
func pick(jobValue, override *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	if jobValue != nil {
		return *jobValue
	}
	return fallback
}
