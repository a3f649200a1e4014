package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	UserID   *int
	SiteID   *int
	Verified *bool
	Date     *string
}

type GetListResponse struct {
	ID                 int        `json:"id"`
	ScheduleID         *int       `json:"schedule_id"`
	UserID             *int       `json:"user_id"`
	EmployeeID         *string    `json:"employee_id"`
	FullName           *string    `json:"full_name"`
	SiteName           *string    `json:"site_name"`
	ClockInTime        *time.Time `json:"clock_in_time"`
	ClockOutTime       *time.Time `json:"clock_out_time"`
	VerificationMethod *string    `json:"verification_method"`
	IsVerified         *bool      `json:"is_verified"`
	FlaggedLate        *bool      `json:"flagged_late"`
	DistanceMeters     *float64   `json:"distance_meters"`
}

type ClockInRequest struct {
	ScheduleID *int             `json:"schedule_id" form:"schedule_id"`
	Latitude   *decimal.Decimal `json:"latitude" form:"latitude"`
	Longitude  *decimal.Decimal `json:"longitude" form:"longitude"`
	Accuracy   *float64         `json:"accuracy" form:"accuracy"`
}

type ClockInResponse struct {
	bun.BaseModel `bun:"table:attendance_logs"`

	ID                 int              `json:"id" bun:"-"`
	ScheduleID         *int             `json:"schedule_id" bun:"schedule_id"`
	UserID             int              `json:"user_id" bun:"user_id"`
	ClockInTime        time.Time        `json:"clock_in_time" bun:"clock_in_time"`
	ClockInLatitude    *decimal.Decimal `json:"-" bun:"clock_in_latitude"`
	ClockInLongitude   *decimal.Decimal `json:"-" bun:"clock_in_longitude"`
	VerificationMethod string           `json:"verification_method" bun:"verification_method"`
	IsVerified         bool             `json:"verified" bun:"is_verified"`
	FlaggedLate        bool             `json:"flagged_late" bun:"flagged_late"`
	DistanceMeters     float64          `json:"distance_meters" bun:"distance_meters"`
	CreatedAt          time.Time        `json:"-" bun:"created_at"`
	CreatedBy          int              `json:"-" bun:"created_by"`
}

type ClockOutRequest struct {
	ScheduleID *int             `json:"schedule_id" form:"schedule_id"`
	Latitude   *decimal.Decimal `json:"latitude" form:"latitude"`
	Longitude  *decimal.Decimal `json:"longitude" form:"longitude"`
}

type ClockOutResponse struct {
	ID           int       `json:"id"`
	ScheduleID   int       `json:"schedule_id"`
	ClockOutTime time.Time `json:"clock_out_time"`
}

type VerifyRequest struct {
	ID         int   `json:"id" form:"id"`
	IsVerified *bool `json:"is_verified" form:"is_verified"`
}
