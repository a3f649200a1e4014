package payroll

import (
	"context"

	"workforce/backend/internal/repository/postgres/payroll"
)

type Payroll interface {
	GetPeriodList(ctx context.Context, filter payroll.Filter) ([]payroll.GetPeriodListResponse, int, error)
	GetItemList(ctx context.Context, periodID int) ([]payroll.GetItemListResponse, error)

	CreatePeriod(ctx context.Context, request payroll.CreatePeriodRequest) (payroll.CreatePeriodResponse, error)
	Generate(ctx context.Context, periodID int) (payroll.GenerateResponse, error)
	Approve(ctx context.Context, periodID int) error
	CreatePenalty(ctx context.Context, request payroll.AdjustmentRequest) (int, error)
	CreateBonus(ctx context.Context, request payroll.AdjustmentRequest) (int, error)
}
