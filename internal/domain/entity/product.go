package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo. El inventario solo rastrea cantidades;
// el precio vive aquí para ventas y reportes, no participa del motor de stock.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
