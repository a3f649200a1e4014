package payroll

import (
	"testing"
	"time"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shiftStart = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func hourlySettings() EffectiveSettings {
	return EffectiveSettings{
		PayType:            entity.PayTypeHourly,
		HourlyRate:         decimal.RequireFromString("40"),
		OvertimeMultiplier: decimal.RequireFromString("1.5"),
		LatePenaltyAmount:  decimal.RequireFromString("50"),
		AgencyFeePercent:   decimal.RequireFromString("10"),
	}
}

func monthlySettings() EffectiveSettings {
	s := hourlySettings()
	s.PayType = entity.PayTypeMonthly
	s.BaseSalary = decimal.RequireFromString("8000")
	return s
}

func scheduledShift(hours int) entity.ShiftSchedule {
	end := shiftStart.Add(time.Duration(hours) * time.Hour)
	status := entity.ShiftCompleted
	return entity.ShiftSchedule{StartTime: &shiftStart, EndTime: &end, Status: &status}
}

func logFor(in, out time.Time) entity.AttendanceLog {
	return entity.AttendanceLog{ClockInTime: &in, ClockOutTime: &out}
}

func TestCalculateShiftHourlyNoOvertime(t *testing.T) {
	// 10 scheduled hours, 10 worked hours at rate 40.
	shift := scheduledShift(10)
	log := logFor(shiftStart, shiftStart.Add(10*time.Hour))

	result, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
	require.NoError(t, err)

	assert.True(t, result.Earnings.Equal(decimal.RequireFromString("400")), "got %s", result.Earnings)
	assert.True(t, result.OvertimeHours.IsZero())
	assert.True(t, result.AgencyFee.Equal(decimal.RequireFromString("40")))
	assert.False(t, result.Late)
}

func TestCalculateShiftHourlyOvertime(t *testing.T) {
	// 8 scheduled, 10 worked: 8 regular + 2 overtime at 1.5x.
	shift := scheduledShift(8)
	log := logFor(shiftStart, shiftStart.Add(10*time.Hour))

	result, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
	require.NoError(t, err)

	assert.True(t, result.RegularPay.Equal(decimal.RequireFromString("320")))
	assert.True(t, result.OvertimePay.Equal(decimal.RequireFromString("120")))
	assert.True(t, result.Earnings.Equal(decimal.RequireFromString("440")))
	assert.True(t, result.OvertimeHours.Equal(decimal.RequireFromString("2")))
}

func TestCalculateShiftMonthlyNotFlagged(t *testing.T) {
	// Monthly pay, no overtime flag: nothing accrues per shift even when
	// the employee stays longer.
	shift := scheduledShift(8)
	log := logFor(shiftStart, shiftStart.Add(10*time.Hour))

	result, err := CalculateShift(shift, log, monthlySettings(), DefaultLateGrace)
	require.NoError(t, err)

	assert.True(t, result.Earnings.IsZero())
	assert.True(t, result.OvertimeHours.IsZero())
}

func TestCalculateShiftMonthlyFlaggedOvertime(t *testing.T) {
	// Flagged overtime on a monthly job pays from the hourly rate.
	shift := scheduledShift(8)
	flagged := true
	shift.IsOvertimeShift = &flagged
	log := logFor(shiftStart, shiftStart.Add(11*time.Hour))

	result, err := CalculateShift(shift, log, monthlySettings(), DefaultLateGrace)
	require.NoError(t, err)

	assert.True(t, result.RegularPay.IsZero())
	assert.True(t, result.OvertimePay.Equal(decimal.RequireFromString("180")), "got %s", result.OvertimePay)
	assert.True(t, result.OvertimeHours.Equal(decimal.RequireFromString("3")))
}

func TestCalculateShiftLateFlag(t *testing.T) {
	shift := scheduledShift(8)

	t.Run("any lateness flags with zero grace", func(t *testing.T) {
		log := logFor(shiftStart.Add(5*time.Minute), shiftStart.Add(8*time.Hour))
		result, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
		require.NoError(t, err)
		assert.True(t, result.Late)
		assert.True(t, result.LatePenalty.Equal(decimal.RequireFromString("50")))
	})

	t.Run("grace window suppresses the flag", func(t *testing.T) {
		log := logFor(shiftStart.Add(5*time.Minute), shiftStart.Add(8*time.Hour))
		result, err := CalculateShift(shift, log, hourlySettings(), 10*time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Late)
		assert.True(t, result.LatePenalty.IsZero())
	})

	t.Run("on time is not late", func(t *testing.T) {
		log := logFor(shiftStart, shiftStart.Add(8*time.Hour))
		result, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
		require.NoError(t, err)
		assert.False(t, result.Late)
	})
}

func TestCalculateShiftZeroDuration(t *testing.T) {
	shift := scheduledShift(8)
	log := logFor(shiftStart, shiftStart)

	result, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
	require.NoError(t, err)
	assert.True(t, result.Earnings.IsZero())
}

func TestCalculateShiftIncomplete(t *testing.T) {
	shift := scheduledShift(8)
	log := entity.AttendanceLog{ClockInTime: &shiftStart}

	_, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
	assert.ErrorIs(t, err, ErrShiftIncomplete)
}

func TestCalculateShiftNegativeWindow(t *testing.T) {
	shift := scheduledShift(8)
	log := logFor(shiftStart, shiftStart.Add(-time.Hour))

	_, err := CalculateShift(shift, log, hourlySettings(), DefaultLateGrace)
	assert.ErrorIs(t, err, ErrInvalidAttendanceWindow)
}
