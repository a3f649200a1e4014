package clientsite

import (
	"context"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/repository/postgres/clientsite"
)

type ClientSite interface {
	GetById(ctx context.Context, id int) (entity.ClientSite, error)
	GetList(ctx context.Context, filter clientsite.Filter) ([]clientsite.GetListResponse, int, error)

	Create(ctx context.Context, request clientsite.CreateRequest) (clientsite.CreateResponse, error)
	UpdateColumns(ctx context.Context, request clientsite.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
