package repository

import "github.com/puntoventa/bodega-api/internal/domain/entity"

// TransferPage parámetros de listado de transferencias.
type TransferPage struct {
	PageIndex int
	PageSize  int
	Search    string
	Sort      []Sort
}

// TransferRepository define el puerto de persistencia para transferencias y sus líneas.
type TransferRepository interface {
	// Create inserta la cabecera y asigna el ID generado.
	Create(transfer *entity.Transfer) error
	CreateItem(item *entity.TransferItem) error
	// GetByID devuelve la cabecera con nombres de bodegas; nil si no existe.
	GetByID(id int64) (*entity.TransferWithDetail, error)
	ListItems(transferID int64) ([]entity.TransferItemWithProduct, error)
	// List pagina con búsqueda sobre observación/estado/nombres de bodega (e ID numérico)
	// y orden por whitelist. Devuelve el total filtrado.
	List(page TransferPage) ([]entity.TransferWithDetail, int64, error)
}
