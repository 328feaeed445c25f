package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoventa/bodega-api/internal/domain"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

func newTransferFixture() (*fakeState, *TransferUseCase, *recordingMetrics) {
	s := newFakeState()
	s.addWarehouse(1, "Bodega Central", true)
	s.addWarehouse(2, "Sucursal Norte", true)
	s.addWarehouse(3, "Bodega Cerrada", false)
	s.addProduct(10, "SKU-010", "Aceite 1L")
	s.addProduct(20, "SKU-020", "Arroz 5kg")
	m := newRecordingMetrics()
	return s, NewTransferUseCase(&fakeTxRunner{s: s}, m), m
}

func TestTransfer_MueveStockYRegistraDobleMovimiento(t *testing.T) {
	s, uc, m := newTransferFixture()
	s.setBalance(10, 1, 100)
	s.setBalance(20, 1, 50)

	transfer, err := uc.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items: []TransferItemInput{
			{ProductID: 10, Quantity: 30},
			{ProductID: 20, Quantity: 5},
		},
		Observation: "Reposición semanal",
	})
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.Equal(t, entity.TransferStatusCompleted, transfer.Status)
	assert.Equal(t, "Reposición semanal", transfer.Observation)

	// Balances: débito en origen, crédito en destino (destino sin fila previa).
	assert.Equal(t, int64(70), s.quantity(10, 1))
	assert.Equal(t, int64(30), s.quantity(10, 2))
	assert.Equal(t, int64(45), s.quantity(20, 1))
	assert.Equal(t, int64(5), s.quantity(20, 2))

	// Libro: exactamente dos movimientos por línea, ambos con la referencia.
	require.Len(t, s.movements, 4)
	var outs, ins int
	for _, mov := range s.movements {
		require.NotNil(t, mov.ReferenceID)
		assert.Equal(t, transfer.ID, *mov.ReferenceID)
		switch mov.Type {
		case entity.MovementTypeTransferOUT:
			outs++
			assert.Equal(t, int64(1), mov.WarehouseID)
			assert.Equal(t, "Transferencia a Sucursal Norte", mov.Description)
		case entity.MovementTypeTransferIN:
			ins++
			assert.Equal(t, int64(2), mov.WarehouseID)
			assert.Equal(t, "Transferencia de Bodega Central", mov.Description)
		default:
			t.Fatalf("tipo de movimiento inesperado: %s", mov.Type)
		}
	}
	assert.Equal(t, 2, outs)
	assert.Equal(t, 2, ins)

	// Líneas persistidas.
	require.Len(t, s.items, 2)
	for _, it := range s.items {
		assert.Equal(t, transfer.ID, it.TransferID)
	}

	assert.Equal(t, 1, m.transfers)
	assert.Equal(t, 2, m.items)
}

func TestTransfer_FallaUnaLineaRevierteTodo(t *testing.T) {
	s, uc, m := newTransferFixture()
	s.setBalance(10, 1, 100)
	s.setBalance(20, 1, 2) // insuficiente para la segunda línea

	_, err := uc.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items: []TransferItemInput{
			{ProductID: 10, Quantity: 30},
			{ProductID: 20, Quantity: 5},
		},
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(20), insufficient.ProductID, "la segunda línea en orden de producto es la que falla")
	assert.Equal(t, int64(2), insufficient.Available)

	// Nada cambió: ni balances, ni libro, ni cabecera, ni líneas.
	assert.Equal(t, int64(100), s.quantity(10, 1))
	assert.Equal(t, int64(0), s.quantity(10, 2))
	assert.Equal(t, int64(2), s.quantity(20, 1))
	assert.Empty(t, s.movements)
	assert.Empty(t, s.transfers)
	assert.Empty(t, s.items)
	assert.Equal(t, 1, m.insufficient)
	assert.Equal(t, 0, m.transfers)
}

func TestTransfer_OrigenSinFilaCuentaComoCero(t *testing.T) {
	s, uc, _ := newTransferFixture()

	_, err := uc.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 1}},
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(0), insufficient.Available)
	assert.Empty(t, s.transfers)
}

func TestTransfer_ValidaEntrada(t *testing.T) {
	s, uc, _ := newTransferFixture()
	s.setBalance(10, 1, 100)

	tests := []struct {
		name    string
		input   TransferInput
		wantErr error
	}{
		{
			"misma bodega",
			TransferInput{FromWarehouseID: 1, ToWarehouseID: 1, Items: []TransferItemInput{{ProductID: 10, Quantity: 1}}},
			domain.ErrInvalidInput,
		},
		{
			"sin items",
			TransferInput{FromWarehouseID: 1, ToWarehouseID: 2},
			domain.ErrInvalidInput,
		},
		{
			"cantidad cero",
			TransferInput{FromWarehouseID: 1, ToWarehouseID: 2, Items: []TransferItemInput{{ProductID: 10, Quantity: 0}}},
			domain.ErrInvalidInput,
		},
		{
			"bodega origen inexistente",
			TransferInput{FromWarehouseID: 99, ToWarehouseID: 2, Items: []TransferItemInput{{ProductID: 10, Quantity: 1}}},
			domain.ErrNotFound,
		},
		{
			"bodega destino inactiva",
			TransferInput{FromWarehouseID: 1, ToWarehouseID: 3, Items: []TransferItemInput{{ProductID: 10, Quantity: 1}}},
			domain.ErrInactiveWarehouse,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Transfer(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Equal(t, int64(100), s.quantity(10, 1), "ninguna entrada inválida debe mover stock")
	assert.Empty(t, s.transfers)
}

func TestTransfer_SaldoExactoEnOrigen(t *testing.T) {
	s, uc, _ := newTransferFixture()
	s.setBalance(10, 1, 8)

	_, err := uc.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.quantity(10, 1))
	assert.Equal(t, int64(8), s.quantity(10, 2))
}

func TestTransfer_DestinoConSaldoPrevioAcumula(t *testing.T) {
	s, uc, _ := newTransferFixture()
	s.setBalance(10, 1, 20)
	s.setBalance(10, 2, 15)

	_, err := uc.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), s.quantity(10, 1))
	assert.Equal(t, int64(20), s.quantity(10, 2))
}
