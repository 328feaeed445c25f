package entity

import "time"

// Customer cliente del punto de venta.
type Customer struct {
	ID        int64
	Name      string
	DNI       string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
