package inventory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/puntoventa/bodega-api/internal/domain/entity"
	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

// fakeState estado en memoria compartido por los repos falsos. El fakeTxRunner
// toma un snapshot antes de cada Run y lo restaura si fn falla, imitando el
// Rollback de una transacción real.
type fakeState struct {
	warehouses map[int64]*entity.Warehouse
	products   map[int64]*entity.Product
	balances   map[string]*entity.InventoryBalance
	movements  []entity.InventoryMovement
	transfers  []entity.Transfer
	items      []entity.TransferItem

	nextBalanceID  int64
	nextMovementID int64
	nextTransferID int64
	nextItemID     int64
}

func newFakeState() *fakeState {
	return &fakeState{
		warehouses: make(map[int64]*entity.Warehouse),
		products:   make(map[int64]*entity.Product),
		balances:   make(map[string]*entity.InventoryBalance),
	}
}

func balKey(productID, warehouseID int64) string {
	return fmt.Sprintf("%d/%d", productID, warehouseID)
}

func (s *fakeState) addWarehouse(id int64, name string, active bool) {
	s.warehouses[id] = &entity.Warehouse{ID: id, Name: name, Active: active}
}

func (s *fakeState) addProduct(id int64, sku, name string) {
	s.products[id] = &entity.Product{ID: id, SKU: sku, Name: name}
}

func (s *fakeState) setBalance(productID, warehouseID, quantity int64) {
	s.nextBalanceID++
	s.balances[balKey(productID, warehouseID)] = &entity.InventoryBalance{
		ID:          s.nextBalanceID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
}

func (s *fakeState) quantity(productID, warehouseID int64) int64 {
	if b, ok := s.balances[balKey(productID, warehouseID)]; ok {
		return b.Quantity
	}
	return 0
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, w := range s.warehouses {
		cp := *w
		c.warehouses[id] = &cp
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for k, b := range s.balances {
		cp := *b
		c.balances[k] = &cp
	}
	c.movements = append([]entity.InventoryMovement(nil), s.movements...)
	c.transfers = append([]entity.Transfer(nil), s.transfers...)
	c.items = append([]entity.TransferItem(nil), s.items...)
	c.nextBalanceID = s.nextBalanceID
	c.nextMovementID = s.nextMovementID
	c.nextTransferID = s.nextTransferID
	c.nextItemID = s.nextItemID
	return c
}

func (s *fakeState) repos() TxRepos {
	return TxRepos{
		Balances:   &fakeBalanceRepo{s: s},
		Movements:  &fakeMovementRepo{s: s},
		Transfers:  &fakeTransferRepo{s: s},
		Warehouses: &fakeWarehouseRepo{s: s},
		Products:   &fakeProductRepo{s: s},
	}
}

// fakeTxRunner ejecuta fn sobre el estado vivo y restaura el snapshot si falla.
type fakeTxRunner struct {
	s *fakeState
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(TxRepos) error) error {
	snapshot := r.s.clone()
	if err := fn(r.s.repos()); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

// --- Balances ---

type fakeBalanceRepo struct{ s *fakeState }

func (r *fakeBalanceRepo) Get(productID, warehouseID int64) (*entity.InventoryBalance, error) {
	if b, ok := r.s.balances[balKey(productID, warehouseID)]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBalanceRepo) GetForUpdate(productID, warehouseID int64) (*entity.InventoryBalance, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeBalanceRepo) CreateOrIncrement(productID, warehouseID, delta int64) error {
	key := balKey(productID, warehouseID)
	if b, ok := r.s.balances[key]; ok {
		b.Quantity += delta
		b.UpdatedAt = time.Now()
		return nil
	}
	r.s.nextBalanceID++
	r.s.balances[key] = &entity.InventoryBalance{
		ID:          r.s.nextBalanceID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    delta,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	return nil
}

func (r *fakeBalanceRepo) Decrement(productID, warehouseID, quantity int64) error {
	b, ok := r.s.balances[balKey(productID, warehouseID)]
	if !ok {
		return fmt.Errorf("fila inexistente para producto %d bodega %d", productID, warehouseID)
	}
	b.Quantity -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBalanceRepo) ListByWarehouse(warehouseID int64, page repository.StockPage) ([]entity.BalanceWithProduct, int64, error) {
	var all []entity.BalanceWithProduct
	for _, b := range r.s.balances {
		if b.WarehouseID != warehouseID {
			continue
		}
		p := r.s.products[b.ProductID]
		if page.Search != "" {
			needle := strings.ToLower(page.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) && !strings.Contains(strings.ToLower(p.SKU), needle) {
				continue
			}
		}
		all = append(all, entity.BalanceWithProduct{
			InventoryBalance: *b,
			ProductName:      p.Name,
			ProductSKU:       p.SKU,
		})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ProductID < all[j].ProductID })
	total := int64(len(all))
	start := (page.PageIndex - 1) * page.PageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// --- Movements ---

type fakeMovementRepo struct{ s *fakeState }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	r.s.nextMovementID++
	m.ID = r.s.nextMovementID
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]entity.MovementWithDetail, error) {
	var out []entity.MovementWithDetail
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if filter.WarehouseID != nil && m.WarehouseID != *filter.WarehouseID {
			continue
		}
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		p := r.s.products[m.ProductID]
		w := r.s.warehouses[m.WarehouseID]
		out = append(out, entity.MovementWithDetail{
			InventoryMovement: m,
			ProductName:       p.Name,
			ProductSKU:        p.SKU,
			WarehouseName:     w.Name,
		})
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) SumByType(warehouseID *int64, _, _ *time.Time) (map[string]int64, error) {
	sums := make(map[string]int64)
	for _, m := range r.s.movements {
		if warehouseID != nil && m.WarehouseID != *warehouseID {
			continue
		}
		sums[m.Type] += m.Quantity
	}
	return sums, nil
}

// --- Transfers ---

type fakeTransferRepo struct{ s *fakeState }

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	r.s.nextTransferID++
	t.ID = r.s.nextTransferID
	r.s.transfers = append(r.s.transfers, *t)
	return nil
}

func (r *fakeTransferRepo) CreateItem(item *entity.TransferItem) error {
	r.s.nextItemID++
	item.ID = r.s.nextItemID
	r.s.items = append(r.s.items, *item)
	return nil
}

func (r *fakeTransferRepo) GetByID(id int64) (*entity.TransferWithDetail, error) {
	for _, t := range r.s.transfers {
		if t.ID != id {
			continue
		}
		detail := entity.TransferWithDetail{Transfer: t}
		if w := r.s.warehouses[t.FromWarehouseID]; w != nil {
			detail.FromWarehouseName = w.Name
		}
		if w := r.s.warehouses[t.ToWarehouseID]; w != nil {
			detail.ToWarehouseName = w.Name
		}
		for _, it := range r.s.items {
			if it.TransferID == id {
				detail.ItemsCount++
			}
		}
		return &detail, nil
	}
	return nil, nil
}

func (r *fakeTransferRepo) ListItems(transferID int64) ([]entity.TransferItemWithProduct, error) {
	var out []entity.TransferItemWithProduct
	for _, it := range r.s.items {
		if it.TransferID != transferID {
			continue
		}
		p := r.s.products[it.ProductID]
		out = append(out, entity.TransferItemWithProduct{
			TransferItem: it,
			ProductName:  p.Name,
			ProductSKU:   p.SKU,
		})
	}
	return out, nil
}

func (r *fakeTransferRepo) List(page repository.TransferPage) ([]entity.TransferWithDetail, int64, error) {
	var all []entity.TransferWithDetail
	for _, t := range r.s.transfers {
		detail, _ := r.GetByID(t.ID)
		if page.Search != "" {
			needle := strings.ToLower(page.Search)
			id, idErr := strconv.ParseInt(page.Search, 10, 64)
			match := strings.Contains(strings.ToLower(t.Observation), needle) ||
				strings.Contains(strings.ToLower(t.Status), needle) ||
				strings.Contains(strings.ToLower(detail.FromWarehouseName), needle) ||
				strings.Contains(strings.ToLower(detail.ToWarehouseName), needle) ||
				(idErr == nil && t.ID == id)
			if !match {
				continue
			}
		}
		all = append(all, *detail)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	total := int64(len(all))
	start := (page.PageIndex - 1) * page.PageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// --- Warehouses ---

type fakeWarehouseRepo struct{ s *fakeState }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	if w, ok := r.s.warehouses[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeWarehouseRepo) Delete(id int64) error {
	delete(r.s.warehouses, id)
	return nil
}

// --- Products ---

type fakeProductRepo struct{ s *fakeState }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ string, _, _ int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

// recordingMetrics acumula llamadas para afirmar instrumentación.
type recordingMetrics struct {
	movements    map[string]int
	transfers    int
	items        int
	insufficient int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{movements: make(map[string]int)}
}

func (m *recordingMetrics) MovementApplied(movementType string) { m.movements[movementType]++ }
func (m *recordingMetrics) TransferCompleted(items int)         { m.transfers++; m.items += items }
func (m *recordingMetrics) InsufficientStock()                  { m.insufficient++ }
