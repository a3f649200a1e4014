package payroll

import (
	"testing"
	"time"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func periodInput() ItemInput {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC) // 30 calendar days

	hourly := hourlySettings()
	hourly.TaxPercent = decimal.RequireFromString("15")

	day := func(d int) time.Time { return start.AddDate(0, 0, d) }

	outcome := func(d int, regular, overtime, fee string) ShiftOutcome {
		return ShiftOutcome{
			Day:     day(d),
			PayType: entity.PayTypeHourly,
			Earnings: ShiftEarnings{
				RegularPay:  decimal.RequireFromString(regular),
				OvertimePay: decimal.RequireFromString(overtime),
				AgencyFee:   decimal.RequireFromString(fee),
			},
		}
	}

	return ItemInput{
		PeriodStart: start,
		PeriodEnd:   end,
		Primary:     hourly,
		Shifts: []ShiftOutcome{
			outcome(0, "320", "0", "32"),
			outcome(1, "320", "120", "44"),
		},
		PenaltyAmounts: []decimal.Decimal{decimal.RequireFromString("100")},
		BonusAmounts:   []decimal.Decimal{decimal.RequireFromString("250")},
	}
}

func TestBuildItemHourly(t *testing.T) {
	totals := BuildItem(periodInput())

	assert.True(t, totals.BaseSalary.IsZero())
	assert.True(t, totals.ShiftAllowance.Equal(decimal.RequireFromString("640")))
	assert.True(t, totals.OvertimePay.Equal(decimal.RequireFromString("120")))
	assert.True(t, totals.TaxableIncome.Equal(decimal.RequireFromString("760")))
	assert.True(t, totals.GrossPay.Equal(decimal.RequireFromString("760")))

	// 15% tax, 7% pension on 760.
	assert.True(t, totals.IncomeTax.Equal(decimal.RequireFromString("114")))
	assert.True(t, totals.PensionEmployee.Equal(decimal.RequireFromString("53.2")))
	assert.True(t, totals.PensionEmployer.Equal(decimal.RequireFromString("83.6")))

	assert.True(t, totals.Penalties.Equal(decimal.RequireFromString("100")))
	assert.True(t, totals.Bonuses.Equal(decimal.RequireFromString("250")))
	assert.True(t, totals.AgencyDeductions.Equal(decimal.RequireFromString("76")))

	// 760 + 250 - (114 + 53.2 + 100 + 76) = 666.8
	assert.True(t, totals.NetPay.Equal(decimal.RequireFromString("666.8")), "got %s", totals.NetPay)
	assert.Equal(t, 2, totals.WorkedDays)
}

func TestBuildItemDeterministic(t *testing.T) {
	// Regeneration with unchanged inputs must converge on identical
	// totals; the upsert then keeps the row unique.
	first := BuildItem(periodInput())
	second := BuildItem(periodInput())
	assert.Equal(t, first, second)
}

func TestBuildItemMonthlyProration(t *testing.T) {
	in := periodInput()
	in.Primary = monthlySettings()
	in.Primary.TaxPercent = decimal.Zero
	in.Shifts = []ShiftOutcome{
		{Day: in.PeriodStart, PayType: entity.PayTypeMonthly, Earnings: ShiftEarnings{}},
		{Day: in.PeriodStart.AddDate(0, 0, 1), PayType: entity.PayTypeMonthly, Earnings: ShiftEarnings{}},
		{Day: in.PeriodStart.AddDate(0, 0, 2), PayType: entity.PayTypeMonthly, Earnings: ShiftEarnings{}},
	}
	in.PenaltyAmounts = nil
	in.BonusAmounts = nil

	totals := BuildItem(in)

	// 8000 over 30 days, 3 days worked.
	assert.True(t, totals.BaseSalary.Equal(decimal.RequireFromString("800")), "got %s", totals.BaseSalary)
	assert.Equal(t, 3, totals.WorkedDays)
}

func TestBuildItemTwoShiftsSameDayCountOnce(t *testing.T) {
	in := periodInput()
	in.Shifts[1].Day = in.Shifts[0].Day

	totals := BuildItem(in)
	assert.Equal(t, 1, totals.WorkedDays)
}

func TestBuildItemLateAndAbsentPenalties(t *testing.T) {
	in := periodInput()
	in.PenaltyAmounts = nil
	in.BonusAmounts = nil
	in.Shifts[0].Earnings.Late = true
	in.Shifts[0].Earnings.LatePenalty = decimal.RequireFromString("50")
	in.Primary.AbsentPenaltyAmount = decimal.RequireFromString("200")
	in.AbsentDays = 2

	totals := BuildItem(in)

	assert.Equal(t, 1, totals.LateDays)
	assert.Equal(t, 2, totals.AbsentDays)
	// 50 late + 2 * 200 absent.
	assert.True(t, totals.Penalties.Equal(decimal.RequireFromString("450")), "got %s", totals.Penalties)
}

func TestBuildItemEmpty(t *testing.T) {
	in := ItemInput{
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
		Primary:     monthlySettings(),
	}

	totals := BuildItem(in)
	assert.True(t, totals.NetPay.IsZero())
	assert.True(t, totals.BaseSalary.IsZero(), "no worked days, no prorated base")
}

func TestCanGenerate(t *testing.T) {
	require.NoError(t, CanGenerate(entity.PeriodDraft))
	require.NoError(t, CanGenerate(entity.PeriodProcessing))
	assert.ErrorIs(t, CanGenerate(entity.PeriodCompleted), ErrPeriodLocked)
}

func TestCanApprove(t *testing.T) {
	assert.ErrorIs(t, CanApprove(entity.PeriodDraft, 0), ErrNothingToApprove)
	assert.NoError(t, CanApprove(entity.PeriodProcessing, 3))
	assert.ErrorIs(t, CanApprove(entity.PeriodCompleted, 3), ErrPeriodLocked)
}
