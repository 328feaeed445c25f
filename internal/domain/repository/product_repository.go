package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve nil si no existe.
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// List busca por nombre o SKU (substring, case-insensitive) y pagina.
	// Devuelve el total filtrado.
	List(search string, limit, offset int) ([]*entity.Product, int64, error)
}
