package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoventa/bodega-api/internal/application/dto"
	"github.com/puntoventa/bodega-api/internal/domain"
)

func newQueryFixture() (*fakeState, *QueryUseCase) {
	s := newFakeState()
	s.addWarehouse(1, "Bodega Central", true)
	s.addWarehouse(2, "Sucursal Norte", true)
	s.addProduct(10, "SKU-010", "Aceite 1L")
	s.addProduct(20, "SKU-020", "Arroz 5kg")
	s.addProduct(30, "SKU-030", "Azúcar 1kg")
	repos := s.repos()
	return s, NewQueryUseCase(repos.Balances, repos.Movements, repos.Transfers, repos.Warehouses)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		wantIndex int
		wantSize  int
		wantErr   bool
	}{
		{"defaults con ceros", 0, 0, 1, 10, false},
		{"valores válidos", 2, 50, 2, 50, false},
		{"tamaño recortado al máximo", 1, 1000, 1, 100, false},
		{"índice negativo", -1, 10, 0, 0, true},
		{"tamaño negativo", 1, -5, 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, size, err := normalizePage(tc.pageIndex, tc.pageSize)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIndex, idx)
			assert.Equal(t, tc.wantSize, size)
		})
	}
}

func TestGetBalance_PaginaYBusca(t *testing.T) {
	s, uc := newQueryFixture()
	s.setBalance(10, 1, 100)
	s.setBalance(20, 1, 50)
	s.setBalance(30, 1, 25)
	s.setBalance(10, 2, 999) // otra bodega, no debe aparecer

	resp, err := uc.GetBalance(context.Background(), 1, dto.StockQuery{PageIndex: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total, "el total es el conjunto filtrado, no la página")
	assert.Len(t, resp.Data, 2)

	resp, err = uc.GetBalance(context.Background(), 1, dto.StockQuery{Search: "arroz"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Arroz 5kg", resp.Data[0].Product.Name)
	assert.Equal(t, "SKU-020", resp.Data[0].Product.SKU)
}

func TestGetBalance_BodegaInexistente(t *testing.T) {
	_, uc := newQueryFixture()
	_, err := uc.GetBalance(context.Background(), 99, dto.StockQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMovements_FiltraPorTipoYBodega(t *testing.T) {
	s, uc := newQueryFixture()
	stock := NewStockUseCase(&fakeTxRunner{s: s}, nil)
	require.NoError(t, stock.AddStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 10}))
	require.NoError(t, stock.AddStock(context.Background(), StockInput{WarehouseID: 2, ProductID: 10, Quantity: 4}))
	require.NoError(t, stock.RemoveStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 3}))

	warehouseID := int64(1)
	out, err := uc.GetMovements(context.Background(), dto.MovementQuery{WarehouseID: &warehouseID})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.GetMovements(context.Background(), dto.MovementQuery{Type: "OUT"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].Quantity)
	assert.Equal(t, "Bodega Central", out[0].Warehouse.Name)
}

func TestListTransfers_MetaYDetalle(t *testing.T) {
	s, uc := newQueryFixture()
	s.setBalance(10, 1, 100)
	transferUC := NewTransferUseCase(&fakeTxRunner{s: s}, nil)
	created, err := transferUC.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 10}},
		Observation:     "Pedido urgente",
	})
	require.NoError(t, err)

	resp, err := uc.ListTransfers(context.Background(), dto.TransferQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.PageIndex)
	assert.Equal(t, 10, resp.Meta.PageSize)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Bodega Central", resp.Data[0].FromWarehouseName)
	assert.Equal(t, "Sucursal Norte", resp.Data[0].ToWarehouseName)
	assert.Equal(t, 1, resp.Data[0].ItemsCount)
	assert.Empty(t, resp.Data[0].Items, "el listado no incluye las líneas")

	detail, err := uc.GetTransferByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Aceite 1L", detail.Items[0].Product.Name)
	assert.Equal(t, int64(10), detail.Items[0].Quantity)
}

func TestListTransfers_BuscaPorObservacionEID(t *testing.T) {
	s, uc := newQueryFixture()
	s.setBalance(10, 1, 100)
	transferUC := NewTransferUseCase(&fakeTxRunner{s: s}, nil)
	created, err := transferUC.Transfer(context.Background(), TransferInput{
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Items:           []TransferItemInput{{ProductID: 10, Quantity: 1}},
		Observation:     "Pedido urgente",
	})
	require.NoError(t, err)

	resp, err := uc.ListTransfers(context.Background(), dto.TransferQuery{Search: "urgente"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Meta.Total)

	// Búsqueda numérica: coincide con el ID exacto.
	resp, err = uc.ListTransfers(context.Background(), dto.TransferQuery{Search: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, created.ID, resp.Data[0].ID)

	resp, err = uc.ListTransfers(context.Background(), dto.TransferQuery{Search: "no-coincide"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Meta.Total)
}

func TestGetTransferByID_NoExiste(t *testing.T) {
	_, uc := newQueryFixture()
	_, err := uc.GetTransferByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseSort_EntradaInvalidaCaeAlDefault(t *testing.T) {
	assert.Nil(t, dto.ParseSort(""))
	assert.Nil(t, dto.ParseSort("{no es json"))
	specs := dto.ParseSort(`[{"key":"date","order":"desc"},{"key":"id","order":"asc"}]`)
	require.Len(t, specs, 2)
	assert.Equal(t, "date", specs[0].Key)
	assert.Equal(t, "desc", specs[0].Order)
}

func TestGetMovements_LimitePorDefecto(t *testing.T) {
	s, uc := newQueryFixture()
	stock := NewStockUseCase(&fakeTxRunner{s: s}, nil)
	for i := 0; i < 15; i++ {
		require.NoError(t, stock.AddStock(context.Background(), StockInput{WarehouseID: 1, ProductID: 10, Quantity: 1}))
	}
	out, err := uc.GetMovements(context.Background(), dto.MovementQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 10, "sin límite explícito se devuelven 10 filas")
}
