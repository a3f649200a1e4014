package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	EmployeeID *string `json:"employee_id" bun:"employee_id"`
	FullName   *string `json:"full_name"   bun:"full_name"`
	Phone      *string `json:"phone"       bun:"phone"`
	Password   *string `json:"password"    bun:"password"`
	Role       *string `json:"role"        bun:"role"`
	Active     *bool   `json:"active"      bun:"active"`
}
