package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
	List(search string, limit, offset int) ([]*entity.Customer, int64, error)
}
