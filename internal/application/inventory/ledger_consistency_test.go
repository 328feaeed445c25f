package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

// ledgerSum suma firmada del libro para un par producto+bodega:
// IN y TRANSFER_IN suman, OUT y TRANSFER_OUT restan.
func ledgerSum(s *fakeState, productID, warehouseID int64) int64 {
	var total int64
	for _, m := range s.movements {
		if m.ProductID != productID || m.WarehouseID != warehouseID {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIN, entity.MovementTypeTransferIN:
			total += m.Quantity
		case entity.MovementTypeOUT, entity.MovementTypeTransferOUT:
			total -= m.Quantity
		}
	}
	return total
}

// Tras una secuencia mezclada de entradas, salidas y traslados (incluyendo un
// rechazo por insuficiencia a mitad de camino), cada balance debe igualar la
// suma firmada de su libro. El balance es una proyección del libro, nunca una
// fuente independiente.
func TestBalancesCuadranConElLibroTrasSecuenciaMixta(t *testing.T) {
	s := newFakeState()
	s.addWarehouse(1, "Bodega Central", true)
	s.addWarehouse(2, "Sucursal Norte", true)
	s.addProduct(10, "SKU-010", "Aceite 1L")
	s.addProduct(20, "SKU-020", "Arroz 5kg")

	ctx := context.Background()
	stock := NewStockUseCase(&fakeTxRunner{s: s}, nil)
	transfer := NewTransferUseCase(&fakeTxRunner{s: s}, nil)

	require.NoError(t, stock.AddStock(ctx, StockInput{WarehouseID: 1, ProductID: 10, Quantity: 100}))
	require.NoError(t, stock.AddStock(ctx, StockInput{WarehouseID: 1, ProductID: 20, Quantity: 40}))
	require.NoError(t, stock.AddStock(ctx, StockInput{WarehouseID: 2, ProductID: 10, Quantity: 5}))
	require.NoError(t, stock.RemoveStock(ctx, StockInput{WarehouseID: 1, ProductID: 10, Quantity: 30}))

	_, err := transfer.Transfer(ctx, TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items: []TransferItemInput{
			{ProductID: 10, Quantity: 20},
			{ProductID: 20, Quantity: 10},
		},
	})
	require.NoError(t, err)

	// Rechazo a mitad de la secuencia: no debe dejar rastro ni en el libro
	// ni en los balances.
	err = stock.RemoveStock(ctx, StockInput{WarehouseID: 2, ProductID: 20, Quantity: 999})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = transfer.Transfer(ctx, TransferInput{
		FromWarehouseID: 2,
		ToWarehouseID:   1,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 5}},
	})
	require.NoError(t, err)

	require.NoError(t, stock.RemoveStock(ctx, StockInput{WarehouseID: 2, ProductID: 10, Quantity: 8}))

	pairs := []struct {
		productID   int64
		warehouseID int64
		want        int64
	}{
		{10, 1, 55}, // 100 - 30 - 20 + 5
		{10, 2, 12}, // 5 + 20 - 5 - 8
		{20, 1, 30}, // 40 - 10
		{20, 2, 10}, // 0 + 10
	}
	for _, p := range pairs {
		got := s.quantity(p.productID, p.warehouseID)
		assert.Equal(t, p.want, got,
			"balance producto %d bodega %d", p.productID, p.warehouseID)
		assert.Equal(t, ledgerSum(s, p.productID, p.warehouseID), got,
			"el balance del producto %d en la bodega %d debe igualar la suma del libro",
			p.productID, p.warehouseID)
	}
}
