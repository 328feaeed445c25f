package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

func newStockFixture() (*fakeState, *StockUseCase, *recordingMetrics) {
	s := newFakeState()
	s.addWarehouse(1, "Bodega Central", true)
	s.addWarehouse(2, "Sucursal Norte", true)
	s.addWarehouse(3, "Bodega Cerrada", false)
	s.addProduct(10, "SKU-010", "Aceite 1L")
	s.addProduct(20, "SKU-020", "Arroz 5kg")
	m := newRecordingMetrics()
	return s, NewStockUseCase(&fakeTxRunner{s: s}, m), m
}

func TestAddStock_CreaBalanceYMovimiento(t *testing.T) {
	s, uc, m := newStockFixture()

	err := uc.AddStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 25})
	require.NoError(t, err)

	assert.Equal(t, int64(25), s.quantity(10, 1), "el balance debe crearse con la cantidad ingresada")
	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(25), mov.Quantity)
	assert.Equal(t, "Ingreso manual", mov.Description, "sin descripción debe usarse la por defecto")
	assert.Nil(t, mov.ReferenceID)
	assert.Equal(t, 1, m.movements[entity.MovementTypeIN])
}

func TestAddStock_AcumulaSobreBalanceExistente(t *testing.T) {
	s, uc, _ := newStockFixture()
	s.setBalance(10, 1, 40)

	err := uc.AddStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 5, Description: "Compra proveedor"})
	require.NoError(t, err)

	assert.Equal(t, int64(45), s.quantity(10, 1))
	require.Len(t, s.movements, 1)
	assert.Equal(t, "Compra proveedor", s.movements[0].Description)
}

func TestAddStock_ValidaEntrada(t *testing.T) {
	s, uc, _ := newStockFixture()

	tests := []struct {
		name    string
		input   StockInput
		wantErr error
	}{
		{"cantidad cero", StockInput{WarehouseID: 1, ProductID: 10, Quantity: 0}, domain.ErrInvalidInput},
		{"cantidad negativa", StockInput{WarehouseID: 1, ProductID: 10, Quantity: -3}, domain.ErrInvalidInput},
		{"bodega inexistente", StockInput{WarehouseID: 99, ProductID: 10, Quantity: 1}, domain.ErrNotFound},
		{"bodega inactiva", StockInput{WarehouseID: 3, ProductID: 10, Quantity: 1}, domain.ErrInactiveWarehouse},
		{"producto inexistente", StockInput{WarehouseID: 1, ProductID: 99, Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.AddStock(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Empty(t, s.movements, "ninguna entrada inválida debe tocar el libro")
}

func TestRemoveStock_DescuentaYRegistraSalida(t *testing.T) {
	s, uc, m := newStockFixture()
	s.setBalance(10, 1, 30)

	err := uc.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 12})
	require.NoError(t, err)

	assert.Equal(t, int64(18), s.quantity(10, 1))
	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, int64(12), mov.Quantity, "la cantidad del movimiento se guarda positiva")
	assert.Equal(t, "Salida manual", mov.Description)
	assert.Equal(t, 1, m.movements[entity.MovementTypeOUT])
}

func TestRemoveStock_SaldoExactoQuedaEnCero(t *testing.T) {
	s, uc, _ := newStockFixture()
	s.setBalance(10, 1, 7)

	err := uc.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.quantity(10, 1))
}

func TestRemoveStock_InsuficienteReportaDisponible(t *testing.T) {
	s, uc, m := newStockFixture()
	s.setBalance(10, 1, 3)

	err := uc.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 5})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(3), insufficient.Available, "el error debe reportar el saldo disponible")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), s.quantity(10, 1), "el rechazo no debe modificar el balance")
	assert.Empty(t, s.movements, "el rechazo no debe escribir en el libro")
	assert.Equal(t, 1, m.insufficient)
}

func TestRemoveStock_SinRegistroDeStock(t *testing.T) {
	_, uc, _ := newStockFixture()

	err := uc.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveStock_BodegaInactiva(t *testing.T) {
	s, uc, _ := newStockFixture()
	s.setBalance(10, 3, 50)

	err := uc.RemoveStock(context.Background(), StockInput{WarehouseID: 3, ProductID: 10, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInactiveWarehouse)
	assert.Equal(t, int64(50), s.quantity(10, 3))
}

func TestStock_ErroresNoSonInsuficiencia(t *testing.T) {
	// ErrNotFound y ErrInvalidInput no deben confundirse con insuficiencia.
	_, uc, m := newStockFixture()

	_ = uc.RemoveStock(context.Background(), StockInput{WarehouseID: 99, ProductID: 10, Quantity: 1})
	_ = uc.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: -1})

	assert.Equal(t, 0, m.insufficient)
	assert.False(t, errors.Is(domain.ErrNotFound, domain.ErrInsufficientStock))
}
