package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Role   *string
}

type SignInRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Password   string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	Active     *bool   `json:"active"`
}

type GetDetailByIdResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	Active     *bool   `json:"active"`
}

type CreateRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password" form:"password"`
	Role       *string `json:"role" form:"role"`
	FullName   *string `json:"full_name" form:"full_name"`
	Phone      *string `json:"phone" form:"phone"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID *string   `json:"employee_id" bun:"employee_id"`
	Password   *string   `json:"-" bun:"password"`
	Role       *string   `json:"role" bun:"role"`
	FullName   *string   `json:"full_name" bun:"full_name"`
	Phone      *string   `json:"phone" bun:"phone"`
	Active     bool      `json:"active" bun:"active"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
	CreatedBy  int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID       int     `json:"id" form:"id"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
	FullName *string `json:"full_name" form:"full_name"`
	Phone    *string `json:"phone" form:"phone"`
	Active   *bool   `json:"active" form:"active"`
}
