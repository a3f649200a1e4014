package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemeQuery(t *testing.T, marker string) string {
	t.Helper()
	for _, s := range scheme {
		if strings.Contains(s.Query, marker) {
			return s.Query
		}
	}
	t.Fatalf("no scheme entry contains %q", marker)
	return ""
}

// The item upsert writes every ledger column; the DDL must hold them all
// or generation fails on the first employee.
func TestSchemeCoversPayrollItemColumns(t *testing.T) {
	ddl := schemeQuery(t, "CREATE TABLE IF NOT EXISTS payroll_items")

	columns := []string{
		"base_salary",
		"shift_allowance",
		"overtime_pay",
		"taxable_income",
		"gross_pay",
		"income_tax",
		"pension_employee",
		"pension_employer",
		"penalties",
		"bonuses",
		"asset_deductions",
		"agency_deductions",
		"loan_repayments",
		"total_deductions",
		"net_pay",
		"worked_days",
		"overtime_hours",
		"late_days",
		"absent_days",
		"status",
	}
	for _, column := range columns {
		assert.Contains(t, ddl, column)
	}
}

func TestSchemeAdjustmentTablesLinkPeriods(t *testing.T) {
	for _, table := range []string{"penalties", "bonuses"} {
		ddl := schemeQuery(t, "CREATE TABLE IF NOT EXISTS "+table)
		assert.Contains(t, ddl, "payroll_period_id int references payroll_periods(id)")
	}
}

// Migrate replays the whole scheme, so every statement must tolerate a
// second run.
func TestSchemeReplaySafe(t *testing.T) {
	require.NotEmpty(t, scheme)

	for _, s := range scheme {
		guarded := strings.Contains(s.Query, "IF NOT EXISTS") ||
			strings.Contains(s.Query, "WHERE NOT EXISTS")
		assert.True(t, guarded, "scheme %d (%s) is not safe to replay", s.Index, s.Description)
	}
}

func TestSchemeIndexesAreOrdered(t *testing.T) {
	for i, s := range scheme {
		assert.Equal(t, i+1, s.Index, "scheme order drifted at %q", s.Description)
	}
}
