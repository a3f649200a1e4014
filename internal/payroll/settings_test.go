package payroll

import (
	"testing"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }

func testJob() entity.Job {
	return entity.Job{
		PayType:             str(entity.PayTypeMonthly),
		BaseSalary:          dec("8000"),
		HourlyRate:          dec("40"),
		OvertimeMultiplier:  dec("1.5"),
		TaxPercent:          dec("15"),
		LatePenaltyAmount:   dec("50"),
		AbsentPenaltyAmount: dec("200"),
		AgencyFeePercent:    dec("10"),
	}
}

func TestResolveSettingsNoAssignment(t *testing.T) {
	_, err := ResolveSettings(testJob(), nil)
	assert.ErrorIs(t, err, ErrNoJobAssignment)
}

func TestResolveSettingsInheritsDefaults(t *testing.T) {
	settings, err := ResolveSettings(testJob(), &entity.JobAssignment{})
	require.NoError(t, err)

	assert.Equal(t, entity.PayTypeMonthly, settings.PayType)
	assert.True(t, settings.BaseSalary.Equal(decimal.RequireFromString("8000")))
	assert.True(t, settings.HourlyRate.Equal(decimal.RequireFromString("40")))
	assert.True(t, settings.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, settings.TaxPercent.Equal(decimal.RequireFromString("15")))
}

func TestResolveSettingsPartialOverride(t *testing.T) {
	// Overriding only the salary must leave every other field at the job
	// default.
	assignment := &entity.JobAssignment{BaseSalary: dec("10000")}

	settings, err := ResolveSettings(testJob(), assignment)
	require.NoError(t, err)

	assert.True(t, settings.BaseSalary.Equal(decimal.RequireFromString("10000")))
	assert.True(t, settings.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, settings.HourlyRate.Equal(decimal.RequireFromString("40")))
	assert.True(t, settings.AgencyFeePercent.Equal(decimal.RequireFromString("10")))
}

func TestResolveSettingsIdempotent(t *testing.T) {
	assignment := &entity.JobAssignment{
		HourlyRate: dec("55"),
		TaxPercent: dec("20"),
	}

	first, err := ResolveSettings(testJob(), assignment)
	require.NoError(t, err)
	second, err := ResolveSettings(testJob(), assignment)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveSettingsDefaultsWhenJobSilent(t *testing.T) {
	job := entity.Job{PayType: str(entity.PayTypeHourly)}

	settings, err := ResolveSettings(job, &entity.JobAssignment{})
	require.NoError(t, err)

	assert.True(t, settings.OvertimeMultiplier.Equal(DefaultOvertimeMultiplier))
	assert.True(t, settings.BaseSalary.IsZero())
	assert.True(t, settings.TaxPercent.IsZero())
}

func TestResolveSettingsRetiredJobStillResolves(t *testing.T) {
	job := testJob()
	inactive := false
	job.Active = &inactive

	settings, err := ResolveSettings(job, &entity.JobAssignment{})
	require.NoError(t, err)
	assert.True(t, settings.BaseSalary.Equal(decimal.RequireFromString("8000")))
}
