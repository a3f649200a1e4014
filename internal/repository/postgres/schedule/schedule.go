package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/payroll"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.ShiftSchedule, error) {
	var detail entity.ShiftSchedule

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ShiftSchedule{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			s.deleted_at IS NULL
		`

	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND s.user_id = %d`, *filter.UserID)
	}
	if filter.SiteID != nil {
		whereQuery += fmt.Sprintf(` AND s.site_id = %d`, *filter.SiteID)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case entity.ShiftScheduled, entity.ShiftInProgress, entity.ShiftCompleted, entity.ShiftCancelled, entity.ShiftNoShow:
			whereQuery += fmt.Sprintf(` AND s.status = '%s'`, *filter.Status)
		default:
			return nil, 0, web.NewRequestError(errors.New("unknown schedule status"), http.StatusBadRequest)
		}
	}
	if filter.Date != nil {
		day, err := date.ParseDate(*filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND s.start_time::date = '%s'", day.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY s.start_time desc"

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
			s.id,
			s.user_id,
			u.employee_id,
			u.full_name,
			s.site_id,
			cs.name,
			s.job_id,
			j.title,
			s.start_time,
			s.end_time,
			s.status,
			s.is_overtime_shift
		FROM shift_schedules as s
		LEFT JOIN users u ON s.user_id = u.id
		LEFT JOIN client_sites cs ON s.site_id = cs.id
		LEFT JOIN jobs j ON s.job_id = j.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting schedules"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.SiteID,
			&detail.SiteName,
			&detail.JobID,
			&detail.JobTitle,
			&detail.StartTime,
			&detail.EndTime,
			&detail.Status,
			&detail.IsOvertimeShift); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning schedule list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(s.id)
		FROM shift_schedules as s
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting schedules"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "UserID", "SiteID", "JobID", "StartTime", "EndTime"); err != nil {
		return CreateResponse{}, err
	}

	if !request.EndTime.After(*request.StartTime) {
		return CreateResponse{}, web.NewRequestError(errors.New("end_time must be after start_time"), http.StatusBadRequest)
	}

	// New shifts may only be scheduled against an active job the employee
	// is actually assigned to.
	var job entity.Job
	err = r.NewSelect().Model(&job).Where("id = ? AND deleted_at IS NULL", request.JobID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return CreateResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "selecting job"), http.StatusInternalServerError)
	}
	if job.Active != nil && !*job.Active {
		return CreateResponse{}, web.NewRequestError(errors.New("cannot schedule against a retired job"), http.StatusBadRequest)
	}

	exists, err := r.NewSelect().
		Table("job_assignments").
		Where("user_id = ? AND job_id = ? AND deleted_at IS NULL", request.UserID, request.JobID).
		Exists(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking job assignment"), http.StatusInternalServerError)
	}
	if !exists {
		return CreateResponse{}, web.NewRequestError(payroll.ErrNoJobAssignment, http.StatusBadRequest)
	}

	var response CreateResponse

	response.UserID = request.UserID
	response.SiteID = request.SiteID
	response.JobID = request.JobID
	response.StartTime = request.StartTime
	response.EndTime = request.EndTime
	response.Status = entity.ShiftScheduled
	response.IsOvertimeShift = request.IsOvertimeShift
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating schedule"), http.StatusBadRequest)
	}

	return response, nil
}

// Transition moves a schedule from one of the expected statuses to the
// next. It is idempotent for attendance-driven transitions: moving a row
// already in the target status is a no-op, not an error.
func (r Repository) Transition(ctx context.Context, id int, to string, from ...string) error {
	q := r.NewUpdate().
		Table("shift_schedules").
		Where("deleted_at IS NULL AND id = ?", id).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now())

	if len(from) > 0 {
		q.Where("status IN (?)", bun.In(from))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating schedule status"), http.StatusBadRequest)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		var current string
		if scanErr := r.NewSelect().
			Table("shift_schedules").
			Column("status").
			Where("id = ?", id).
			Scan(ctx, &current); scanErr == nil && current == to {
			return nil
		}
		return web.NewRequestError(errors.Errorf("schedule %d cannot move to %s", id, to), http.StatusConflict)
	}

	return nil
}

func (r Repository) Cancel(ctx context.Context, id int) error {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return err
	}

	return r.Transition(ctx, id, entity.ShiftCancelled, entity.ShiftScheduled)
}

// MarkNoShows flips every SCHEDULED shift whose window elapsed with no
// clock-in to NO_SHOW. Called by the roster sweep; asOf is injectable for
// reconciliation runs.
func (r Repository) MarkNoShows(ctx context.Context, asOf time.Time) (int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return 0, err
	}

	res, err := r.NewUpdate().
		Table("shift_schedules").
		Where(`deleted_at IS NULL AND status = ? AND end_time < ?
			AND NOT EXISTS (
				SELECT 1 FROM attendance_logs al
				WHERE al.schedule_id = shift_schedules.id AND al.deleted_at IS NULL
			)`, entity.ShiftScheduled, asOf).
		Set("status = ?", entity.ShiftNoShow).
		Set("updated_at = ?", asOf).
		Exec(ctx)
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "marking no-shows"), http.StatusInternalServerError)
	}

	affected, _ := res.RowsAffected()
	return int(affected), nil
}
