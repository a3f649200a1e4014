package clientsite

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID              int              `json:"id"`
	Name            *string          `json:"name"`
	ClientName      *string          `json:"client_name"`
	Latitude        *decimal.Decimal `json:"latitude"`
	Longitude       *decimal.Decimal `json:"longitude"`
	GeoRadiusMeters *decimal.Decimal `json:"geo_radius_meters"`
}

type CreateRequest struct {
	Name            *string          `json:"name" form:"name"`
	ClientName      *string          `json:"client_name" form:"client_name"`
	Latitude        *decimal.Decimal `json:"latitude" form:"latitude"`
	Longitude       *decimal.Decimal `json:"longitude" form:"longitude"`
	GeoRadiusMeters *decimal.Decimal `json:"geo_radius_meters" form:"geo_radius_meters"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:client_sites"`

	ID              int              `json:"id" bun:"-"`
	Name            *string          `json:"name" bun:"name"`
	ClientName      *string          `json:"client_name" bun:"client_name"`
	Latitude        *decimal.Decimal `json:"latitude" bun:"latitude"`
	Longitude       *decimal.Decimal `json:"longitude" bun:"longitude"`
	GeoRadiusMeters *decimal.Decimal `json:"geo_radius_meters" bun:"geo_radius_meters"`
	CreatedAt       time.Time        `json:"-" bun:"created_at"`
	CreatedBy       int              `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID              int              `json:"id" form:"id"`
	Name            *string          `json:"name" form:"name"`
	ClientName      *string          `json:"client_name" form:"client_name"`
	Latitude        *decimal.Decimal `json:"latitude" form:"latitude"`
	Longitude       *decimal.Decimal `json:"longitude" form:"longitude"`
	GeoRadiusMeters *decimal.Decimal `json:"geo_radius_meters" form:"geo_radius_meters"`
}
