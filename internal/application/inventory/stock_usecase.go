package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

// StockUseCase aplica entradas y salidas de stock sobre una sola bodega de
// forma transaccional: bloqueo de fila (SELECT FOR UPDATE) en las salidas,
// upsert atómico en las entradas, y exactamente un movimiento en el libro por
// llamada. Commit o Rollback completo vía TxRunner.
type StockUseCase struct {
	txRunner TxRunner
	metrics  Metrics
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, metrics Metrics) *StockUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &StockUseCase{txRunner: txRunner, metrics: metrics}
}

// StockInput entrada para AddStock / RemoveStock. Quantity siempre positiva;
// cero o negativo es error de validación antes de tocar la BD.
type StockInput struct {
	WarehouseID int64
	ProductID   int64
	Quantity    int64
	Description string
	UserID      *int64
}

// AddStock registra una entrada: verifica bodega (existe y activa) y producto,
// agrega Movement(IN) y crea-o-incrementa el balance, todo en una transacción.
func (uc *StockUseCase) AddStock(ctx context.Context, in StockInput) error {
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := checkWarehouse(r, in.WarehouseID); err != nil {
			return err
		}
		product, err := r.Products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
		}

		description := in.Description
		if description == "" {
			description = "Ingreso manual"
		}
		mov := &entity.InventoryMovement{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Type:        entity.MovementTypeIN,
			Quantity:    in.Quantity,
			Description: description,
			UserID:      in.UserID,
			CreatedAt:   time.Now(),
		}
		if err := r.Movements.Create(mov); err != nil {
			return err
		}
		return r.Balances.CreateOrIncrement(in.ProductID, in.WarehouseID, in.Quantity)
	})
	if err == nil {
		uc.metrics.MovementApplied(entity.MovementTypeIN)
	}
	return err
}

// RemoveStock registra una salida: bloquea la fila del balance, verifica que
// alcance (si no, reporta lo disponible), agrega Movement(OUT) y decrementa.
func (uc *StockUseCase) RemoveStock(ctx context.Context, in StockInput) error {
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := checkWarehouse(r, in.WarehouseID); err != nil {
			return err
		}
		// Bloquea la fila del balance antes de verificar suficiencia: dos
		// salidas concurrentes sobre el mismo par se serializan aquí.
		balance, err := r.Balances.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if balance == nil {
			return fmt.Errorf("sin registro de stock para el producto %d en la bodega %d: %w",
				in.ProductID, in.WarehouseID, domain.ErrNotFound)
		}
		if balance.Quantity < in.Quantity {
			return &domain.InsufficientStockError{ProductID: in.ProductID, Available: balance.Quantity}
		}

		description := in.Description
		if description == "" {
			description = "Salida manual"
		}
		mov := &entity.InventoryMovement{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Type:        entity.MovementTypeOUT,
			Quantity:    in.Quantity,
			Description: description,
			UserID:      in.UserID,
			CreatedAt:   time.Now(),
		}
		if err := r.Movements.Create(mov); err != nil {
			return err
		}
		return r.Balances.Decrement(in.ProductID, in.WarehouseID, in.Quantity)
	})
	switch {
	case err == nil:
		uc.metrics.MovementApplied(entity.MovementTypeOUT)
	case errors.Is(err, domain.ErrInsufficientStock):
		uc.metrics.InsufficientStock()
	}
	return err
}

// checkWarehouse verifica existencia y estado activo de la bodega dentro de la tx.
func checkWarehouse(r TxRepos, warehouseID int64) error {
	warehouse, err := r.Warehouses.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("bodega %d: %w", warehouseID, domain.ErrNotFound)
	}
	if !warehouse.Active {
		return fmt.Errorf("bodega %d: %w", warehouseID, domain.ErrInactiveWarehouse)
	}
	return nil
}
