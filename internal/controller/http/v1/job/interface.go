package job

import (
	"context"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/payroll"
	"workforce/backend/internal/repository/postgres/job"
)

type Job interface {
	GetById(ctx context.Context, id int) (entity.Job, error)
	GetList(ctx context.Context, filter job.Filter) ([]job.GetListResponse, int, error)
	ResolveSettings(ctx context.Context, userID, jobID int) (payroll.EffectiveSettings, error)

	Create(ctx context.Context, request job.CreateRequest) (job.CreateResponse, error)
	UpdateColumns(ctx context.Context, request job.UpdateRequest) error
	Retire(ctx context.Context, id int) error
	Assign(ctx context.Context, request job.AssignRequest) error
}
