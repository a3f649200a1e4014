package attendance

import (
	"context"

	"workforce/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)

	ClockIn(ctx context.Context, request attendance.ClockInRequest) (attendance.ClockInResponse, error)
	ClockOut(ctx context.Context, request attendance.ClockOutRequest) (attendance.ClockOutResponse, error)
	Verify(ctx context.Context, request attendance.VerifyRequest) error
}
