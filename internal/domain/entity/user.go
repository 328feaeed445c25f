package entity

import "time"

// Roles canónicos del sistema RBAC.
const (
	RoleAdmin     = "admin"
	RoleSales     = "sales"
	RoleWarehouse = "warehouse"
)

// User usuario del sistema con su rol para RBAC.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
