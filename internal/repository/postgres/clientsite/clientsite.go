package clientsite

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
	"github.com/shopspring/decimal"
)

var defaultGeoRadiusMeters = decimal.NewFromInt(100)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.ClientSite, error) {
	var detail entity.ClientSite

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ClientSite{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
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
			s.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(s.name ilike '%s' OR s.client_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY s.created_at desc"

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
			s.name,
			s.client_name,
			s.latitude,
			s.longitude,
			s.geo_radius_meters
		FROM client_sites as s
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting client sites"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.ClientName,
			&detail.Latitude,
			&detail.Longitude,
			&detail.GeoRadiusMeters); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning client site list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(s.id)
		FROM client_sites as s
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting client sites"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "Latitude", "Longitude"); err != nil {
		return CreateResponse{}, err
	}

	radius := defaultGeoRadiusMeters
	if request.GeoRadiusMeters != nil {
		radius = *request.GeoRadiusMeters
	}
	if !radius.IsPositive() {
		return CreateResponse{}, web.NewRequestError(errors.New("geo_radius_meters must be positive"), http.StatusBadRequest)
	}

	var response CreateResponse

	response.Name = request.Name
	response.ClientName = request.ClientName
	response.Latitude = request.Latitude
	response.Longitude = request.Longitude
	response.GeoRadiusMeters = &radius
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating client site"), http.StatusBadRequest)
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

	if request.GeoRadiusMeters != nil && !request.GeoRadiusMeters.IsPositive() {
		return web.NewRequestError(errors.New("geo_radius_meters must be positive"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("client_sites").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.ClientName != nil {
		q.Set("client_name = ?", request.ClientName)
	}
	if request.Latitude != nil {
		q.Set("latitude = ?", request.Latitude)
	}
	if request.Longitude != nil {
		q.Set("longitude = ?", request.Longitude)
	}
	if request.GeoRadiusMeters != nil {
		q.Set("geo_radius_meters = ?", request.GeoRadiusMeters)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating client site"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "client_sites", id)
}
