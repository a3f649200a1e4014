package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const (
	VerificationGPS      = "GPS"
	VerificationManual   = "MANUAL"
	VerificationTelegram = "TELEGRAM"
)

type AttendanceLog struct {
	bun.BaseModel `bun:"table:attendance_logs"`

	BasicEntity
	ScheduleID         *int             `json:"schedule_id"         bun:"schedule_id"`
	UserID             *int             `json:"user_id"             bun:"user_id"`
	ClockInTime        *time.Time       `json:"clock_in_time"       bun:"clock_in_time"`
	ClockOutTime       *time.Time       `json:"clock_out_time"      bun:"clock_out_time"`
	ClockInLatitude    *decimal.Decimal `json:"clock_in_latitude"   bun:"clock_in_latitude"`
	ClockInLongitude   *decimal.Decimal `json:"clock_in_longitude"  bun:"clock_in_longitude"`
	ClockOutLatitude   *decimal.Decimal `json:"clock_out_latitude"  bun:"clock_out_latitude"`
	ClockOutLongitude  *decimal.Decimal `json:"clock_out_longitude" bun:"clock_out_longitude"`
	VerificationMethod *string          `json:"verification_method" bun:"verification_method"`
	IsVerified         *bool            `json:"is_verified"         bun:"is_verified"`
	FlaggedLate        *bool            `json:"flagged_late"        bun:"flagged_late"`
	DistanceMeters     *float64         `json:"distance_meters"     bun:"distance_meters"`
	VerifiedBy         *int             `json:"verified_by"         bun:"verified_by"`
}
