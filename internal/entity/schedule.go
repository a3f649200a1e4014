package entity

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ShiftScheduled  = "SCHEDULED"
	ShiftInProgress = "IN_PROGRESS"
	ShiftCompleted  = "COMPLETED"
	ShiftCancelled  = "CANCELLED"
	ShiftNoShow     = "NO_SHOW"
)

type ShiftSchedule struct {
	bun.BaseModel `bun:"table:shift_schedules"`

	BasicEntity
	UserID          *int       `json:"user_id"           bun:"user_id"`
	SiteID          *int       `json:"site_id"           bun:"site_id"`
	JobID           *int       `json:"job_id"            bun:"job_id"`
	StartTime       *time.Time `json:"start_time"        bun:"start_time"`
	EndTime         *time.Time `json:"end_time"          bun:"end_time"`
	Status          *string    `json:"status"            bun:"status"`
	IsOvertimeShift *bool      `json:"is_overtime_shift" bun:"is_overtime_shift"`
}
