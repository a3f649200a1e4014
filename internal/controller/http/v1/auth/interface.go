package auth

import (
	"context"

	"workforce/backend/internal/entity"
)

type User interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error)
}
