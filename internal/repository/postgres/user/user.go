package user

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
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("employee_id = ? AND deleted_at IS NULL AND active", employeeID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("employee_id or password is incorrect"), http.StatusUnauthorized)
	}

	return detail, err
}

func (r Repository) GetById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	var detail entity.User

	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return GetDetailByIdResponse{
		ID:         detail.ID,
		EmployeeID: detail.EmployeeID,
		FullName:   detail.FullName,
		Phone:      detail.Phone,
		Role:       detail.Role,
		Active:     detail.Active,
	}, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleSupervisor)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			u.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(u.employee_id ilike '%s' OR u.full_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		role := strings.Replace(*filter.Role, "'", "''", -1)
		whereQuery += fmt.Sprintf(" AND u.role = '%s'", role)
	}

	orderQuery := "ORDER BY u.created_at desc"

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
			u.id,
			u.employee_id,
			u.full_name,
			u.phone,
			u.role,
			u.active
		FROM users as u
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.Phone,
			&detail.Role,
			&detail.Active); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM users as u
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting users"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "Role"); err != nil {
		return CreateResponse{}, err
	}

	role := strings.ToUpper(*request.Role)
	if role != auth.RoleAdmin && role != auth.RoleSupervisor && role != auth.RoleEmployee {
		return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be ADMIN, SUPERVISOR or EMPLOYEE"), http.StatusBadRequest)
	}

	count, err := r.NewSelect().Table("users").
		Where("employee_id = ? AND deleted_at IS NULL", request.EmployeeID).
		Count(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking employee_id"), http.StatusInternalServerError)
	}
	if count != 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("employee_id is already used"), http.StatusBadRequest)
	}

	hash, err := r.GenerateHash(*request.Password)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}

	var response CreateResponse

	response.EmployeeID = request.EmployeeID
	response.Password = &hash
	response.Role = &role
	response.FullName = request.FullName
	response.Phone = request.Phone
	response.Active = true
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Password != nil {
		hash, err := r.GenerateHash(*request.Password)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", hash)
	}
	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleAdmin && role != auth.RoleSupervisor && role != auth.RoleEmployee {
			return web.NewRequestError(errors.New("incorrect role. role should be ADMIN, SUPERVISOR or EMPLOYEE"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}
	if request.FullName != nil {
		q.Set("full_name = ?", request.FullName)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Active != nil {
		q.Set("active = ?", request.Active)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "users", id)
}
