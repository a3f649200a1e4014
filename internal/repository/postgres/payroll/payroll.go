// Package payroll is the persistence side of period aggregation: it feeds
// rows to the pure calculation core and persists what comes back, under a
// per-period lock so concurrent generation runs serialize.
package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	calc "workforce/backend/internal/payroll"
	"workforce/backend/internal/pkg/events"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const generateLockTTL = 5 * time.Minute

type Repository struct {
	*postgresql.Database
	redisDB *redis.Client
	events  *events.Publisher
}

func NewRepository(database *postgresql.Database, redisDB *redis.Client, publisher *events.Publisher) *Repository {
	return &Repository{Database: database, redisDB: redisDB, events: publisher}
}

func (r Repository) CreatePeriod(ctx context.Context, request CreatePeriodRequest) (CreatePeriodResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreatePeriodResponse{}, err
	}

	if err := r.ValidateStruct(&request, "StartDate", "EndDate"); err != nil {
		return CreatePeriodResponse{}, err
	}

	if !request.EndDate.After(*request.StartDate) {
		return CreatePeriodResponse{}, web.NewRequestError(errors.New("end_date must be after start_date"), http.StatusBadRequest)
	}

	var response CreatePeriodResponse

	response.StartDate = request.StartDate
	response.EndDate = request.EndDate
	response.Status = entity.PeriodDraft
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreatePeriodResponse{}, web.NewRequestError(errors.Wrap(err, "creating payroll period"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) GetPeriodList(ctx context.Context, filter Filter) ([]GetPeriodListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			p.deleted_at IS NULL
		`

	if filter.Status != nil {
		switch *filter.Status {
		case entity.PeriodDraft, entity.PeriodProcessing, entity.PeriodCompleted:
			whereQuery += fmt.Sprintf(` AND p.status = '%s'`, *filter.Status)
		default:
			return nil, 0, web.NewRequestError(errors.New("unknown period status"), http.StatusBadRequest)
		}
	}

	orderQuery := "ORDER BY p.start_date desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.start_date,
			p.end_date,
			p.status,
			(SELECT count(i.id) FROM payroll_items i WHERE i.payroll_period_id = p.id AND i.deleted_at IS NULL) as item_count
		FROM payroll_periods as p
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting payroll periods"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetPeriodListResponse

	for rows.Next() {
		var detail GetPeriodListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.StartDate,
			&detail.EndDate,
			&detail.Status,
			&detail.ItemCount); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning period list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(p.id)
		FROM payroll_periods as p
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting periods"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) getPeriod(ctx context.Context, id int) (entity.PayrollPeriod, error) {
	var period entity.PayrollPeriod

	err := r.NewSelect().Model(&period).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.PayrollPeriod{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.PayrollPeriod{}, web.NewRequestError(errors.Wrap(err, "selecting payroll period"), http.StatusInternalServerError)
	}

	return period, nil
}

// Generate recomputes every employee's payroll item for the period. It is
// idempotent: each run rebuilds items from scratch and upserts on
// (period, user), so repeated runs converge instead of double-count.
// The redis lock serializes concurrent runs on the same period; different
// periods generate independently.
func (r Repository) Generate(ctx context.Context, periodID int) (GenerateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GenerateResponse{}, err
	}

	period, err := r.getPeriod(ctx, periodID)
	if err != nil {
		return GenerateResponse{}, err
	}

	status := entity.PeriodDraft
	if period.Status != nil {
		status = *period.Status
	}
	if err := calc.CanGenerate(status); err != nil {
		return GenerateResponse{}, web.NewRequestError(err, http.StatusConflict)
	}

	lockKey := fmt.Sprintf("payroll:lock:%d", periodID)
	locked, err := r.redisDB.SetNX(ctx, lockKey, claims.UserId, generateLockTTL).Result()
	if err != nil {
		return GenerateResponse{}, web.NewRequestError(errors.Wrap(err, "acquiring period lock"), http.StatusInternalServerError)
	}
	if !locked {
		return GenerateResponse{}, web.NewRequestError(errors.New("generation already running for this period"), http.StatusConflict)
	}
	defer func() {
		if err := r.redisDB.Del(context.WithoutCancel(ctx), lockKey).Err(); err != nil {
			log.Println("payroll: releasing period lock:", err)
		}
	}()

	if _, err := r.NewUpdate().
		Table("payroll_periods").
		Where("deleted_at IS NULL AND id = ?", periodID).
		Set("status = ?", entity.PeriodProcessing).
		Set("updated_at = ?", time.Now()).
		Exec(ctx); err != nil {
		return GenerateResponse{}, web.NewRequestError(errors.Wrap(err, "marking period processing"), http.StatusInternalServerError)
	}

	userIDs, err := r.employeesInPeriod(ctx, period)
	if err != nil {
		return GenerateResponse{}, err
	}

	response := GenerateResponse{PeriodID: periodID}

	for _, userID := range userIDs {
		item, err := r.buildEmployeeItem(ctx, period, userID)
		if err != nil {
			// One employee failing must not sink the batch.
			response.Failures = append(response.Failures, GenerateFailure{
				UserID: userID,
				Reason: errors.Cause(err).Error(),
			})
			continue
		}

		if err := r.persistItem(ctx, claims.UserId, period, userID, item); err != nil {
			response.Failures = append(response.Failures, GenerateFailure{
				UserID: userID,
				Reason: errors.Cause(err).Error(),
			})
			continue
		}

		response.ItemCount++

		if err := r.events.PublishPayslipReady(ctx, events.PayslipReady{
			PayrollPeriodID: periodID,
			UserID:          userID,
			NetPay:          item.totals.NetPay.StringFixed(2),
		}); err != nil {
			log.Println("payroll: publishing payslip event:", err)
		}
	}

	return response, nil
}

// Approve locks the period: every item flips to APPROVED, the period to
// COMPLETED, and no further recomputation is possible.
func (r Repository) Approve(ctx context.Context, periodID int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	period, err := r.getPeriod(ctx, periodID)
	if err != nil {
		return err
	}

	status := entity.PeriodDraft
	if period.Status != nil {
		status = *period.Status
	}

	itemCount, err := r.NewSelect().
		Table("payroll_items").
		Where("payroll_period_id = ? AND deleted_at IS NULL", periodID).
		Count(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "counting payroll items"), http.StatusInternalServerError)
	}

	if err := calc.CanApprove(status, itemCount); err != nil {
		code := http.StatusConflict
		if errors.Is(err, calc.ErrNothingToApprove) {
			code = http.StatusBadRequest
		}
		return web.NewRequestError(err, code)
	}

	now := time.Now()

	return r.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Table("payroll_items").
			Where("payroll_period_id = ? AND deleted_at IS NULL", periodID).
			Set("status = ?", entity.PayrollItemApproved).
			Set("updated_at = ?", now).
			Set("updated_by = ?", claims.UserId).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "approving payroll items"), http.StatusInternalServerError)
		}

		if _, err := tx.NewUpdate().
			Table("payroll_periods").
			Where("deleted_at IS NULL AND id = ?", periodID).
			Set("status = ?", entity.PeriodCompleted).
			Set("updated_at = ?", now).
			Set("updated_by = ?", claims.UserId).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "completing payroll period"), http.StatusInternalServerError)
		}

		return nil
	})
}

func (r Repository) GetItemList(ctx context.Context, periodID int) ([]GetItemListResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			i.id,
			i.user_id,
			u.employee_id,
			u.full_name,
			i.base_salary,
			i.shift_allowance,
			i.overtime_pay,
			i.gross_pay,
			i.income_tax,
			i.pension_employee,
			i.pension_employer,
			i.penalties,
			i.bonuses,
			i.agency_deductions,
			i.total_deductions,
			i.net_pay,
			i.worked_days,
			i.overtime_hours,
			i.late_days,
			i.absent_days,
			i.status
		FROM payroll_items as i
		LEFT JOIN users u ON i.user_id = u.id
		WHERE i.deleted_at IS NULL AND i.payroll_period_id = $1
		ORDER BY u.full_name
	`

	rows, err := r.QueryContext(ctx, query, periodID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting payroll items"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetItemListResponse

	for rows.Next() {
		var detail GetItemListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.BaseSalary,
			&detail.ShiftAllowance,
			&detail.OvertimePay,
			&detail.GrossPay,
			&detail.IncomeTax,
			&detail.PensionEmployee,
			&detail.PensionEmployer,
			&detail.Penalties,
			&detail.Bonuses,
			&detail.AgencyDeductions,
			&detail.TotalDeductions,
			&detail.NetPay,
			&detail.WorkedDays,
			&detail.OvertimeHours,
			&detail.LateDays,
			&detail.AbsentDays,
			&detail.Status); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning payroll item list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	return list, nil
}

// employeesInPeriod returns every employee with a COMPLETED or NO_SHOW
// shift inside the period window.
func (r Repository) employeesInPeriod(ctx context.Context, period entity.PayrollPeriod) ([]int, error) {
	var userIDs []int

	err := r.NewSelect().
		Table("shift_schedules").
		ColumnExpr("DISTINCT user_id").
		Where("deleted_at IS NULL AND status IN (?)", bun.In([]string{entity.ShiftCompleted, entity.ShiftNoShow})).
		Where("start_time >= ? AND start_time <= ?", period.StartDate, endOfDay(period.EndDate)).
		Scan(ctx, &userIDs)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting employees in period"), http.StatusInternalServerError)
	}

	return userIDs, nil
}

// employeeItem pairs the computed totals with the adjustment rows they
// folded, so persistItem consumes exactly what was counted.
type employeeItem struct {
	totals     calc.ItemTotals
	penaltyIDs []int
	bonusIDs   []int
}

// buildEmployeeItem assembles the pure-calculation input for one employee
// and runs it. Nothing is persisted here.
func (r Repository) buildEmployeeItem(ctx context.Context, period entity.PayrollPeriod, userID int) (employeeItem, error) {
	var shifts []entity.ShiftSchedule
	err := r.NewSelect().
		Model(&shifts).
		Where("deleted_at IS NULL AND user_id = ? AND status = ?", userID, entity.ShiftCompleted).
		Where("start_time >= ? AND start_time <= ?", period.StartDate, endOfDay(period.EndDate)).
		Scan(ctx)
	if err != nil {
		return employeeItem{}, errors.Wrap(err, "selecting completed shifts")
	}

	// Primary job settings drive monthly proration and tax. An employee
	// with shifts but no assignment at all cannot be computed.
	primary, err := r.primarySettings(ctx, userID, shifts)
	if err != nil {
		return employeeItem{}, err
	}

	settingsByJob := map[int]calc.EffectiveSettings{}
	var outcomes []calc.ShiftOutcome

	for _, shift := range shifts {
		if shift.JobID == nil || shift.StartTime == nil {
			continue
		}

		settings, ok := settingsByJob[*shift.JobID]
		if !ok {
			settings, err = r.resolveSettings(ctx, userID, *shift.JobID)
			if err != nil {
				return employeeItem{}, err
			}
			settingsByJob[*shift.JobID] = settings
		}

		logRow, err := r.closedLogForSchedule(ctx, shift.ID)
		if err != nil {
			return employeeItem{}, err
		}

		earnings, err := calc.CalculateShift(shift, logRow, settings, calc.DefaultLateGrace)
		if err != nil {
			return employeeItem{}, err
		}

		outcomes = append(outcomes, calc.ShiftOutcome{
			Day:      shift.StartTime.UTC(),
			PayType:  settings.PayType,
			Earnings: earnings,
		})
	}

	absentDays, err := r.NewSelect().
		Table("shift_schedules").
		Where("deleted_at IS NULL AND user_id = ? AND status = ?", userID, entity.ShiftNoShow).
		Where("start_time >= ? AND start_time <= ?", period.StartDate, endOfDay(period.EndDate)).
		Count(ctx)
	if err != nil {
		return employeeItem{}, errors.Wrap(err, "counting no-shows")
	}

	penaltyRows, err := r.pendingAdjustments(ctx, "penalties", userID, period)
	if err != nil {
		return employeeItem{}, err
	}
	bonusRows, err := r.pendingAdjustments(ctx, "bonuses", userID, period)
	if err != nil {
		return employeeItem{}, err
	}

	var item employeeItem
	var penaltyAmounts, bonusAmounts []decimal.Decimal
	for _, row := range penaltyRows {
		item.penaltyIDs = append(item.penaltyIDs, row.ID)
		penaltyAmounts = append(penaltyAmounts, row.Amount)
	}
	for _, row := range bonusRows {
		item.bonusIDs = append(item.bonusIDs, row.ID)
		bonusAmounts = append(bonusAmounts, row.Amount)
	}

	input := calc.ItemInput{
		PeriodStart:    *period.StartDate,
		PeriodEnd:      *period.EndDate,
		Primary:        primary,
		Shifts:         outcomes,
		PenaltyAmounts: penaltyAmounts,
		BonusAmounts:   bonusAmounts,
		AbsentDays:     absentDays,
	}

	item.totals = calc.BuildItem(input)

	return item, nil
}

func (r Repository) primarySettings(ctx context.Context, userID int, shifts []entity.ShiftSchedule) (calc.EffectiveSettings, error) {
	var assignment entity.JobAssignment
	err := r.NewSelect().
		Model(&assignment).
		Where("user_id = ? AND is_primary = true AND deleted_at IS NULL", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		// No primary: fall back to the first shift's job so hourly
		// employees without a flagged assignment still compute.
		for _, shift := range shifts {
			if shift.JobID != nil {
				return r.resolveSettings(ctx, userID, *shift.JobID)
			}
		}
		return calc.EffectiveSettings{}, calc.ErrNoJobAssignment
	}
	if err != nil {
		return calc.EffectiveSettings{}, errors.Wrap(err, "selecting primary assignment")
	}

	return r.resolveSettings(ctx, userID, *assignment.JobID)
}

func (r Repository) resolveSettings(ctx context.Context, userID, jobID int) (calc.EffectiveSettings, error) {
	var job entity.Job
	err := r.NewSelect().Model(&job).Where("id = ? AND deleted_at IS NULL", jobID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return calc.EffectiveSettings{}, calc.ErrNoJobAssignment
	}
	if err != nil {
		return calc.EffectiveSettings{}, errors.Wrap(err, "selecting job")
	}

	var assignment entity.JobAssignment
	err = r.NewSelect().
		Model(&assignment).
		Where("user_id = ? AND job_id = ? AND deleted_at IS NULL", userID, jobID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return calc.ResolveSettings(job, nil)
	}
	if err != nil {
		return calc.EffectiveSettings{}, errors.Wrap(err, "selecting job assignment")
	}

	return calc.ResolveSettings(job, &assignment)
}

func (r Repository) closedLogForSchedule(ctx context.Context, scheduleID int) (entity.AttendanceLog, error) {
	var logRow entity.AttendanceLog

	err := r.NewSelect().
		Model(&logRow).
		Where("schedule_id = ? AND deleted_at IS NULL", scheduleID).
		Order("clock_in_time DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.AttendanceLog{}, calc.ErrShiftIncomplete
	}
	if err != nil {
		return entity.AttendanceLog{}, errors.Wrap(err, "selecting attendance log")
	}

	return logRow, nil
}

// adjustmentRow is one penalty or bonus candidate considered during a
// generation run.
type adjustmentRow struct {
	ID              int             `bun:"id"`
	Amount          decimal.Decimal `bun:"amount"`
	Status          string          `bun:"status"`
	PayrollPeriodID *int            `bun:"payroll_period_id"`
}

// adjustmentEligible reports whether a row still counts for periodID.
// Cancelled rows never do, rows consumed by another period never do, and
// rows already consumed by this period fold again, so repeated runs
// converge on the same totals instead of dropping what the first run took.
func adjustmentEligible(row adjustmentRow, periodID int) bool {
	if row.Status == entity.AdjustmentCancelled {
		return false
	}
	if row.PayrollPeriodID == nil {
		return true
	}
	return *row.PayrollPeriodID == periodID
}

func eligibleAdjustments(rows []adjustmentRow, periodID int) []adjustmentRow {
	var out []adjustmentRow
	for _, row := range rows {
		if adjustmentEligible(row, periodID) {
			out = append(out, row)
		}
	}
	return out
}

// pendingAdjustments lists the penalty/bonus rows a generation run folds:
// every candidate dated inside the period, filtered by adjustmentEligible.
func (r Repository) pendingAdjustments(ctx context.Context, table string, userID int, period entity.PayrollPeriod) ([]adjustmentRow, error) {
	var rows []adjustmentRow

	err := r.NewSelect().
		Table(table).
		Column("id", "amount", "status", "payroll_period_id").
		Where("deleted_at IS NULL AND user_id = ?", userID).
		Where("incurred_at >= ? AND incurred_at <= ?", period.StartDate, endOfDay(period.EndDate)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrapf(err, "selecting pending %s", table)
	}

	return eligibleAdjustments(rows, period.ID), nil
}

// persistItem writes the upserted ledger line and consumes the folded
// adjustments in one transaction. Consumption targets the exact rows read
// by buildEmployeeItem, so an adjustment inserted mid-run is neither
// silently linked nor lost; the next run folds it.
func (r Repository) persistItem(ctx context.Context, actorID int, period entity.PayrollPeriod, userID int, employee employeeItem) error {
	now := time.Now()
	status := entity.PayrollItemDraft
	totals := employee.totals

	item := entity.PayrollItem{
		PayrollPeriodID:  &period.ID,
		UserID:           &userID,
		BaseSalary:       &totals.BaseSalary,
		ShiftAllowance:   &totals.ShiftAllowance,
		OvertimePay:      &totals.OvertimePay,
		TaxableIncome:    &totals.TaxableIncome,
		GrossPay:         &totals.GrossPay,
		IncomeTax:        &totals.IncomeTax,
		PensionEmployee:  &totals.PensionEmployee,
		PensionEmployer:  &totals.PensionEmployer,
		Penalties:        &totals.Penalties,
		Bonuses:          &totals.Bonuses,
		AssetDeductions:  &totals.AssetDeductions,
		AgencyDeductions: &totals.AgencyDeductions,
		LoanRepayments:   &totals.LoanRepayments,
		TotalDeductions:  &totals.TotalDeductions,
		NetPay:           &totals.NetPay,
		WorkedDays:       &totals.WorkedDays,
		OvertimeHours:    &totals.OvertimeHours,
		LateDays:         &totals.LateDays,
		AbsentDays:       &totals.AbsentDays,
		Status:           &status,
	}
	item.CreatedAt = &now
	item.CreatedBy = &actorID

	return r.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(&item).
			On("CONFLICT (payroll_period_id, user_id) DO UPDATE").
			Set("base_salary = EXCLUDED.base_salary").
			Set("shift_allowance = EXCLUDED.shift_allowance").
			Set("overtime_pay = EXCLUDED.overtime_pay").
			Set("taxable_income = EXCLUDED.taxable_income").
			Set("gross_pay = EXCLUDED.gross_pay").
			Set("income_tax = EXCLUDED.income_tax").
			Set("pension_employee = EXCLUDED.pension_employee").
			Set("pension_employer = EXCLUDED.pension_employer").
			Set("penalties = EXCLUDED.penalties").
			Set("bonuses = EXCLUDED.bonuses").
			Set("asset_deductions = EXCLUDED.asset_deductions").
			Set("agency_deductions = EXCLUDED.agency_deductions").
			Set("loan_repayments = EXCLUDED.loan_repayments").
			Set("total_deductions = EXCLUDED.total_deductions").
			Set("net_pay = EXCLUDED.net_pay").
			Set("worked_days = EXCLUDED.worked_days").
			Set("overtime_hours = EXCLUDED.overtime_hours").
			Set("late_days = EXCLUDED.late_days").
			Set("absent_days = EXCLUDED.absent_days").
			Set("status = EXCLUDED.status").
			Set("updated_at = now()").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "upserting payroll item")
		}

		consumed := []struct {
			table string
			ids   []int
		}{
			{"penalties", employee.penaltyIDs},
			{"bonuses", employee.bonusIDs},
		}
		for _, c := range consumed {
			if len(c.ids) == 0 {
				continue
			}
			if _, err := tx.NewUpdate().
				Table(c.table).
				Where("deleted_at IS NULL AND id IN (?)", bun.In(c.ids)).
				Set("payroll_period_id = ?", period.ID).
				Set("status = ?", entity.AdjustmentApplied).
				Set("updated_at = ?", now).
				Exec(ctx); err != nil {
				return errors.Wrapf(err, "consuming %s", c.table)
			}
		}

		return nil
	})
}

// CreatePenalty and CreateBonus record ad hoc adjustments; they stay
// PENDING and unlinked until a generation run folds them in.
func (r Repository) CreatePenalty(ctx context.Context, request AdjustmentRequest) (int, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return 0, err
	}

	if err := r.ValidateStruct(&request, "UserID", "Amount"); err != nil {
		return 0, err
	}

	now := time.Now()
	incurred := now
	if request.IncurredAt != nil {
		incurred = *request.IncurredAt
	}
	status := entity.AdjustmentPending

	row := entity.Penalty{
		UserID:     request.UserID,
		Amount:     request.Amount,
		Reason:     request.Reason,
		Status:     &status,
		IncurredAt: &incurred,
	}
	row.CreatedAt = &now
	row.CreatedBy = &claims.UserId

	if _, err := r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID); err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "creating penalty"), http.StatusBadRequest)
	}

	return row.ID, nil
}

func (r Repository) CreateBonus(ctx context.Context, request AdjustmentRequest) (int, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return 0, err
	}

	if err := r.ValidateStruct(&request, "UserID", "Amount"); err != nil {
		return 0, err
	}

	now := time.Now()
	incurred := now
	if request.IncurredAt != nil {
		incurred = *request.IncurredAt
	}
	status := entity.AdjustmentPending

	row := entity.Bonus{
		UserID:     request.UserID,
		Amount:     request.Amount,
		Reason:     request.Reason,
		Status:     &status,
		IncurredAt: &incurred,
	}
	row.CreatedAt = &now
	row.CreatedBy = &claims.UserId

	if _, err := r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID); err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "creating bonus"), http.StatusBadRequest)
	}

	return row.ID, nil
}

func endOfDay(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}
