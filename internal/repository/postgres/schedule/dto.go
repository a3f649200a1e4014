package schedule

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	UserID *int
	SiteID *int
	Status *string
	Date   *string
}

type GetListResponse struct {
	ID              int        `json:"id"`
	UserID          *int       `json:"user_id"`
	EmployeeID      *string    `json:"employee_id"`
	FullName        *string    `json:"full_name"`
	SiteID          *int       `json:"site_id"`
	SiteName        *string    `json:"site_name"`
	JobID           *int       `json:"job_id"`
	JobTitle        *string    `json:"job_title"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Status          *string    `json:"status"`
	IsOvertimeShift *bool      `json:"is_overtime_shift"`
}

type CreateRequest struct {
	UserID          *int       `json:"user_id" form:"user_id"`
	SiteID          *int       `json:"site_id" form:"site_id"`
	JobID           *int       `json:"job_id" form:"job_id"`
	StartTime       *time.Time `json:"start_time" form:"start_time"`
	EndTime         *time.Time `json:"end_time" form:"end_time"`
	IsOvertimeShift *bool      `json:"is_overtime_shift" form:"is_overtime_shift"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:shift_schedules"`

	ID              int        `json:"id" bun:"-"`
	UserID          *int       `json:"user_id" bun:"user_id"`
	SiteID          *int       `json:"site_id" bun:"site_id"`
	JobID           *int       `json:"job_id" bun:"job_id"`
	StartTime       *time.Time `json:"start_time" bun:"start_time"`
	EndTime         *time.Time `json:"end_time" bun:"end_time"`
	Status          string     `json:"status" bun:"status"`
	IsOvertimeShift *bool      `json:"is_overtime_shift" bun:"is_overtime_shift"`
	CreatedAt       time.Time  `json:"-" bun:"created_at"`
	CreatedBy       int        `json:"-" bun:"created_by"`
}
