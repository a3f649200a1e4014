package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/payroll"
	"workforce/backend/internal/pkg/events"
	"workforce/backend/internal/pkg/geo"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
	events *events.Publisher
}

func NewRepository(database *postgresql.Database, publisher *events.Publisher) *Repository {
	return &Repository{Database: database, events: publisher}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.AttendanceLog, error) {
	var detail entity.AttendanceLog

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.AttendanceLog{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, err
}

// ClockIn opens an attendance log for the caller's scheduled shift. The
// geofence verdict is recorded, never rejected: an out-of-radius clock-in
// is stored unverified and flagged for a supervisor to resolve.
func (r Repository) ClockIn(ctx context.Context, request ClockInRequest) (ClockInResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockInResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ScheduleID", "Latitude", "Longitude"); err != nil {
		return ClockInResponse{}, err
	}

	now := time.Now()

	var shift entity.ShiftSchedule
	err = r.NewSelect().Model(&shift).
		Where("id = ? AND deleted_at IS NULL", request.ScheduleID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockInResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting schedule"), http.StatusInternalServerError)
	}

	if shift.UserID == nil || *shift.UserID != claims.UserId {
		return ClockInResponse{}, web.NewRequestError(errors.New("shift belongs to another employee"), http.StatusForbidden)
	}
	if shift.Status == nil || *shift.Status != entity.ShiftScheduled {
		if shift.Status != nil && (*shift.Status == entity.ShiftCompleted || *shift.Status == entity.ShiftInProgress) {
			return ClockInResponse{}, web.NewRequestError(payroll.ErrAlreadyClockedOut, http.StatusConflict)
		}
		return ClockInResponse{}, web.NewRequestError(errors.New("shift is not open for clock-in"), http.StatusConflict)
	}
	if shift.StartTime == nil || shift.EndTime == nil || now.Before(*shift.StartTime) || now.After(*shift.EndTime) {
		return ClockInResponse{}, web.NewRequestError(errors.New("no scheduled shift overlapping current time"), http.StatusConflict)
	}

	// The employee must still hold an assignment for the shift's job.
	if _, err := r.resolveAssignment(ctx, claims.UserId, shift); err != nil {
		return ClockInResponse{}, err
	}

	var site entity.ClientSite
	err = r.NewSelect().Model(&site).Where("id = ? AND deleted_at IS NULL", shift.SiteID).Scan(ctx)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting client site"), http.StatusInternalServerError)
	}

	verdict := checkGeofence(request, site)

	var response ClockInResponse

	response.ScheduleID = request.ScheduleID
	response.UserID = claims.UserId
	response.ClockInTime = now
	response.ClockInLatitude = request.Latitude
	response.ClockInLongitude = request.Longitude
	response.VerificationMethod = entity.VerificationGPS
	response.IsVerified = verdict.WithinRadius
	response.FlaggedLate = now.After(shift.StartTime.Add(payroll.DefaultLateGrace))
	response.DistanceMeters = verdict.DistanceMeters
	response.CreatedAt = now
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		// The partial unique index on open logs turns a double clock-in
		// race into a constraint violation.
		if strings.Contains(err.Error(), "23505") {
			return ClockInResponse{}, web.NewRequestError(errors.New("shift already has an open attendance log"), http.StatusConflict)
		}
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance log"), http.StatusBadRequest)
	}

	if err := r.transition(ctx, *request.ScheduleID, entity.ShiftInProgress, entity.ShiftScheduled); err != nil {
		return ClockInResponse{}, err
	}

	if !response.IsVerified {
		if err := r.events.PublishAttendanceFlagged(ctx, events.AttendanceFlagged{
			AttendanceLogID: response.ID,
			ScheduleID:      *request.ScheduleID,
			UserID:          claims.UserId,
			DistanceMeters:  response.DistanceMeters,
		}); err != nil {
			log.Println("attendance: publishing flagged event:", err)
		}
	}

	return response, nil
}

// ClockOut closes the open log. The exit coordinate is recorded for audit
// but not re-checked against the geofence.
func (r Repository) ClockOut(ctx context.Context, request ClockOutRequest) (ClockOutResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockOutResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ScheduleID"); err != nil {
		return ClockOutResponse{}, err
	}

	var logRow entity.AttendanceLog
	err = r.NewSelect().Model(&logRow).
		Where("schedule_id = ? AND user_id = ? AND deleted_at IS NULL", request.ScheduleID, claims.UserId).
		Order("clock_in_time DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockOutResponse{}, web.NewRequestError(errors.New("no attendance log for this shift"), http.StatusNotFound)
	}
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance log"), http.StatusInternalServerError)
	}

	if logRow.ClockOutTime != nil {
		return ClockOutResponse{}, web.NewRequestError(payroll.ErrAlreadyClockedOut, http.StatusConflict)
	}

	now := time.Now()

	q := r.NewUpdate().Table("attendance_logs").
		Where("deleted_at IS NULL AND id = ? AND clock_out_time IS NULL", logRow.ID)
	q.Set("clock_out_time = ?", now)
	q.Set("clock_out_latitude = ?", request.Latitude)
	q.Set("clock_out_longitude = ?", request.Longitude)
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "updating attendance log"), http.StatusBadRequest)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ClockOutResponse{}, web.NewRequestError(payroll.ErrAlreadyClockedOut, http.StatusConflict)
	}

	if err := r.transition(ctx, *request.ScheduleID, entity.ShiftCompleted, entity.ShiftInProgress); err != nil {
		return ClockOutResponse{}, err
	}

	return ClockOutResponse{
		ID:           logRow.ID,
		ScheduleID:   *request.ScheduleID,
		ClockOutTime: now,
	}, nil
}

// Verify lets a supervisor override the geofence verdict. The lateness
// flag is untouched; manual verification vouches for presence, not
// punctuality.
func (r Repository) Verify(ctx context.Context, request VerifyRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "IsVerified"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("attendance_logs").
		Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("is_verified = ?", request.IsVerified)
	q.Set("verification_method = ?", entity.VerificationManual)
	q.Set("verified_by = ?", claims.UserId)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance verification"), http.StatusBadRequest)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			a.deleted_at IS NULL
		`

	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND a.user_id = %d`, *filter.UserID)
	}
	if filter.SiteID != nil {
		whereQuery += fmt.Sprintf(` AND s.site_id = %d`, *filter.SiteID)
	}
	if filter.Verified != nil {
		whereQuery += fmt.Sprintf(` AND a.is_verified = %t`, *filter.Verified)
	}
	if filter.Date != nil {
		day, err := date.ParseDate(*filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND a.clock_in_time::date = '%s'", day.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY a.clock_in_time desc"

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
			a.id,
			a.schedule_id,
			a.user_id,
			u.employee_id,
			u.full_name,
			cs.name,
			a.clock_in_time,
			a.clock_out_time,
			a.verification_method,
			a.is_verified,
			a.flagged_late,
			a.distance_meters
		FROM attendance_logs as a
		LEFT JOIN shift_schedules s ON a.schedule_id = s.id
		LEFT JOIN users u ON a.user_id = u.id
		LEFT JOIN client_sites cs ON s.site_id = cs.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.ScheduleID,
			&detail.UserID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.SiteName,
			&detail.ClockInTime,
			&detail.ClockOutTime,
			&detail.VerificationMethod,
			&detail.IsVerified,
			&detail.FlaggedLate,
			&detail.DistanceMeters); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM attendance_logs as a
		LEFT JOIN shift_schedules s ON a.schedule_id = s.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) resolveAssignment(ctx context.Context, userID int, shift entity.ShiftSchedule) (bool, error) {
	if shift.JobID == nil {
		return false, web.NewRequestError(payroll.ErrNoJobAssignment, http.StatusBadRequest)
	}

	exists, err := r.NewSelect().
		Table("job_assignments").
		Where("user_id = ? AND job_id = ? AND deleted_at IS NULL", userID, shift.JobID).
		Exists(ctx)
	if err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "checking job assignment"), http.StatusInternalServerError)
	}
	if !exists {
		return false, web.NewRequestError(payroll.ErrNoJobAssignment, http.StatusBadRequest)
	}

	return true, nil
}

func (r Repository) transition(ctx context.Context, scheduleID int, to string, from string) error {
	res, err := r.NewUpdate().
		Table("shift_schedules").
		Where("deleted_at IS NULL AND id = ? AND status = ?", scheduleID, from).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating schedule status"), http.StatusBadRequest)
	}

	// Re-running the same attendance-driven transition is a no-op.
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		var current string
		if scanErr := r.NewSelect().
			Table("shift_schedules").
			Column("status").
			Where("id = ?", scheduleID).
			Scan(ctx, &current); scanErr == nil && current == to {
			return nil
		}
		return web.NewRequestError(errors.Errorf("schedule %d is not in %s", scheduleID, from), http.StatusConflict)
	}

	return nil
}

func checkGeofence(request ClockInRequest, site entity.ClientSite) geo.Verdict {
	var lat, lon, siteLat, siteLon, radius float64

	if request.Latitude != nil {
		lat, _ = request.Latitude.Float64()
	}
	if request.Longitude != nil {
		lon, _ = request.Longitude.Float64()
	}
	if site.Latitude != nil {
		siteLat, _ = site.Latitude.Float64()
	}
	if site.Longitude != nil {
		siteLon, _ = site.Longitude.Float64()
	}
	if site.GeoRadiusMeters != nil {
		radius, _ = site.GeoRadiusMeters.Float64()
	}

	return geo.CheckWithinRadius(lat, lon, siteLat, siteLon, radius)
}
