package job

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/payroll"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetById returns the job even when it is retired: historical payroll must
// still resolve against it. Callers that schedule new shifts check Active.
func (r Repository) GetById(ctx context.Context, id int) (entity.Job, error) {
	var detail entity.Job

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Job{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			j.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (j.title ilike '%s' OR j.category ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.Category != nil {
		category := strings.Replace(*filter.Category, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND j.category = '%s'`, category)
	}
	if filter.Active != nil {
		whereQuery += fmt.Sprintf(` AND j.active = %t`, *filter.Active)
	}

	orderQuery := "ORDER BY j.created_at desc"

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
			j.id,
			j.title,
			j.category,
			j.pay_type,
			j.base_salary,
			j.hourly_rate,
			j.overtime_multiplier,
			j.tax_percent,
			j.agency_fee_percent,
			j.active
		FROM jobs as j
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting jobs"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.Category,
			&detail.PayType,
			&detail.BaseSalary,
			&detail.HourlyRate,
			&detail.OvertimeMultiplier,
			&detail.TaxPercent,
			&detail.AgencyFeePercent,
			&detail.Active); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning job list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(j.id)
		FROM jobs as j
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting jobs"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Title", "PayType"); err != nil {
		return CreateResponse{}, err
	}

	if *request.PayType != entity.PayTypeHourly && *request.PayType != entity.PayTypeMonthly {
		return CreateResponse{}, web.NewRequestError(errors.New("pay_type must be HOURLY or MONTHLY"), http.StatusBadRequest)
	}

	var response CreateResponse

	response.Title = request.Title
	response.Category = request.Category
	response.PayType = request.PayType
	response.BaseSalary = request.BaseSalary
	response.HourlyRate = request.HourlyRate
	response.OvertimeMultiplier = request.OvertimeMultiplier
	response.TaxPercent = request.TaxPercent
	response.LatePenaltyAmount = request.LatePenaltyAmount
	response.AbsentPenaltyAmount = request.AbsentPenaltyAmount
	response.AgencyFeePercent = request.AgencyFeePercent
	response.Active = true
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating job"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("jobs").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Title != nil {
		q.Set("title = ?", request.Title)
	}
	if request.Category != nil {
		q.Set("category = ?", request.Category)
	}
	if request.PayType != nil {
		q.Set("pay_type = ?", request.PayType)
	}
	if request.BaseSalary != nil {
		q.Set("base_salary = ?", request.BaseSalary)
	}
	if request.HourlyRate != nil {
		q.Set("hourly_rate = ?", request.HourlyRate)
	}
	if request.OvertimeMultiplier != nil {
		q.Set("overtime_multiplier = ?", request.OvertimeMultiplier)
	}
	if request.TaxPercent != nil {
		q.Set("tax_percent = ?", request.TaxPercent)
	}
	if request.LatePenaltyAmount != nil {
		q.Set("late_penalty_amount = ?", request.LatePenaltyAmount)
	}
	if request.AbsentPenaltyAmount != nil {
		q.Set("absent_penalty_amount = ?", request.AbsentPenaltyAmount)
	}
	if request.AgencyFeePercent != nil {
		q.Set("agency_fee_percent = ?", request.AgencyFeePercent)
	}
	if request.Active != nil {
		q.Set("active = ?", request.Active)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating job"), http.StatusBadRequest)
	}

	return nil
}

// Retire soft-deletes a job: it disappears from scheduling but keeps
// resolving for historical payroll.
func (r Repository) Retire(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("jobs").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("active = false")
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "retiring job"), http.StatusBadRequest)
	}

	return nil
}

// Assign upserts the (user, job) assignment. Promoting an assignment to
// primary demotes the previous primary in the same transaction, which is
// what keeps the one-primary-per-employee invariant.
func (r Repository) Assign(ctx context.Context, request AssignRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "UserID", "JobID"); err != nil {
		return err
	}

	job, err := r.GetById(ctx, *request.JobID)
	if err != nil {
		return err
	}
	if job.Active != nil && !*job.Active {
		return web.NewRequestError(errors.New("job is retired"), http.StatusBadRequest)
	}

	return r.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, tx bun.Tx) error {
		if request.IsPrimary != nil && *request.IsPrimary {
			if _, err := tx.NewUpdate().
				Table("job_assignments").
				Where("deleted_at IS NULL AND user_id = ? AND is_primary = true", request.UserID).
				Set("is_primary = false").
				Set("updated_at = ?", time.Now()).
				Set("updated_by = ?", claims.UserId).
				Exec(ctx); err != nil {
				return web.NewRequestError(errors.Wrap(err, "demoting primary assignment"), http.StatusBadRequest)
			}
		}

		assignment := entity.JobAssignment{
			UserID:              request.UserID,
			JobID:               request.JobID,
			IsPrimary:           request.IsPrimary,
			BaseSalary:          request.BaseSalary,
			HourlyRate:          request.HourlyRate,
			OvertimeMultiplier:  request.OvertimeMultiplier,
			TaxPercent:          request.TaxPercent,
			LatePenaltyAmount:   request.LatePenaltyAmount,
			AbsentPenaltyAmount: request.AbsentPenaltyAmount,
			AgencyFeePercent:    request.AgencyFeePercent,
		}
		now := time.Now()
		assignment.CreatedAt = &now
		assignment.CreatedBy = &claims.UserId

		if _, err := tx.NewInsert().
			Model(&assignment).
			On("CONFLICT (user_id, job_id) DO UPDATE").
			Set("is_primary = EXCLUDED.is_primary").
			Set("base_salary = EXCLUDED.base_salary").
			Set("hourly_rate = EXCLUDED.hourly_rate").
			Set("overtime_multiplier = EXCLUDED.overtime_multiplier").
			Set("tax_percent = EXCLUDED.tax_percent").
			Set("late_penalty_amount = EXCLUDED.late_penalty_amount").
			Set("absent_penalty_amount = EXCLUDED.absent_penalty_amount").
			Set("agency_fee_percent = EXCLUDED.agency_fee_percent").
			Set("updated_at = now()").
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "upserting job assignment"), http.StatusBadRequest)
		}

		return nil
	})
}

// GetAssignment returns the assignment row for (user, job), or nil when
// none exists.
func (r Repository) GetAssignment(ctx context.Context, userID, jobID int) (*entity.JobAssignment, error) {
	var assignment entity.JobAssignment

	err := r.NewSelect().
		Model(&assignment).
		Where("user_id = ? AND job_id = ? AND deleted_at IS NULL", userID, jobID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting job assignment"), http.StatusInternalServerError)
	}

	return &assignment, nil
}

// GetPrimaryAssignment returns the employee's primary assignment, or nil.
func (r Repository) GetPrimaryAssignment(ctx context.Context, userID int) (*entity.JobAssignment, error) {
	var assignment entity.JobAssignment

	err := r.NewSelect().
		Model(&assignment).
		Where("user_id = ? AND is_primary = true AND deleted_at IS NULL", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting primary assignment"), http.StatusInternalServerError)
	}

	return &assignment, nil
}

// ResolveSettings merges the job's defaults with the employee's overrides.
// No assignment means attendance and payroll must not proceed for the
// pairing, so the sentinel maps to 404 here.
func (r Repository) ResolveSettings(ctx context.Context, userID, jobID int) (payroll.EffectiveSettings, error) {
	job, err := r.GetById(ctx, jobID)
	if err != nil {
		return payroll.EffectiveSettings{}, err
	}

	assignment, err := r.GetAssignment(ctx, userID, jobID)
	if err != nil {
		return payroll.EffectiveSettings{}, err
	}

	settings, err := payroll.ResolveSettings(job, assignment)
	if err != nil {
		return payroll.EffectiveSettings{}, web.NewRequestError(err, http.StatusNotFound)
	}

	return settings, nil
}
