package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// ClientSite is a client location employees are leased to. Its coordinate
// and radius define the clock-in geofence.
type ClientSite struct {
	bun.BaseModel `bun:"table:client_sites"`

	BasicEntity
	Name            *string          `json:"name"              bun:"name"`
	ClientName      *string          `json:"client_name"       bun:"client_name"`
	Latitude        *decimal.Decimal `json:"latitude"          bun:"latitude"`
	Longitude       *decimal.Decimal `json:"longitude"         bun:"longitude"`
	GeoRadiusMeters *decimal.Decimal `json:"geo_radius_meters" bun:"geo_radius_meters"`
}
