package schedule

import (
	"context"
	"time"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/repository/postgres/schedule"
)

type Schedule interface {
	GetById(ctx context.Context, id int) (entity.ShiftSchedule, error)
	GetList(ctx context.Context, filter schedule.Filter) ([]schedule.GetListResponse, int, error)

	Create(ctx context.Context, request schedule.CreateRequest) (schedule.CreateResponse, error)
	Cancel(ctx context.Context, id int) error
	MarkNoShows(ctx context.Context, asOf time.Time) (int, error)
}
