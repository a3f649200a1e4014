package payroll

import (
	"testing"

	"workforce/backend/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentEligible(t *testing.T) {
	thisPeriod := 5
	otherPeriod := 6

	tests := []struct {
		name string
		row  adjustmentRow
		want bool
	}{
		{"pending and unlinked", adjustmentRow{Status: entity.AdjustmentPending}, true},
		{"already consumed by this period", adjustmentRow{Status: entity.AdjustmentApplied, PayrollPeriodID: &thisPeriod}, true},
		{"consumed by another period", adjustmentRow{Status: entity.AdjustmentApplied, PayrollPeriodID: &otherPeriod}, false},
		{"cancelled", adjustmentRow{Status: entity.AdjustmentCancelled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adjustmentEligible(tt.row, thisPeriod))
		})
	}
}

// Regeneration must fold the same adjustments the first run folded: after
// a run links rows to the period and marks them APPLIED, selecting again
// for the same period yields identical rows and amounts.
func TestEligibleAdjustmentsConvergeAcrossRuns(t *testing.T) {
	periodID := 3
	rows := []adjustmentRow{
		{ID: 1, Amount: decimal.NewFromInt(100), Status: entity.AdjustmentPending},
		{ID: 2, Amount: decimal.NewFromInt(40), Status: entity.AdjustmentPending},
	}

	firstRun := eligibleAdjustments(rows, periodID)
	require.Len(t, firstRun, 2)

	// What generation does after folding: link and mark APPLIED.
	for i := range rows {
		rows[i].Status = entity.AdjustmentApplied
		rows[i].PayrollPeriodID = &periodID
	}

	secondRun := eligibleAdjustments(rows, periodID)
	require.Len(t, secondRun, 2)

	for i := range firstRun {
		assert.Equal(t, firstRun[i].ID, secondRun[i].ID)
		assert.True(t, firstRun[i].Amount.Equal(secondRun[i].Amount))
	}
}

func TestEligibleAdjustmentsSkipOtherPeriods(t *testing.T) {
	periodID := 3
	otherPeriod := 9
	rows := []adjustmentRow{
		{ID: 1, Amount: decimal.NewFromInt(100), Status: entity.AdjustmentApplied, PayrollPeriodID: &otherPeriod},
		{ID: 2, Amount: decimal.NewFromInt(40), Status: entity.AdjustmentPending},
	}

	eligible := eligibleAdjustments(rows, periodID)
	require.Len(t, eligible, 1)
	assert.Equal(t, 2, eligible[0].ID)
}
