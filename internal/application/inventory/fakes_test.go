package inventory_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria del almacenamiento. El fakeTxRunner serializa las
// transacciones con un mutex y restaura un snapshot si la función falla,
// emulando commit/rollback de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

func pairKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

type memState struct {
	inventories map[string]*entity.Inventory
	movements   []*entity.InventoryMovement
}

func newMemState() *memState {
	return &memState{inventories: make(map[string]*entity.Inventory)}
}

func (s *memState) clone() *memState {
	out := newMemState()
	for k, inv := range s.inventories {
		cp := *inv
		out.inventories[k] = &cp
	}
	out.movements = make([]*entity.InventoryMovement, len(s.movements))
	for i, m := range s.movements {
		cp := *m
		out.movements[i] = &cp
	}
	return out
}

func (s *memState) restore(from *memState) {
	s.inventories = from.inventories
	s.movements = from.movements
}

// ─── InventoryRepository ─────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	st *memState
}

func (r *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := r.st.inventories[pairKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	r.st.inventories[pairKey(inv.ProductID, inv.WarehouseID)] = &cp
	return nil
}

func (r *fakeInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.st.inventories {
		if inv.ProductID == productID && inv.CurrentStock > 0 {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r *fakeInventoryRepo) CountWithStock(warehouseID string) (int64, error) {
	var n int64
	for _, inv := range r.st.inventories {
		if inv.WarehouseID == warehouseID && inv.CurrentStock > 0 {
			n++
		}
	}
	return n, nil
}

func (r *fakeInventoryRepo) TotalStock() (int64, error) {
	var total int64
	for _, inv := range r.st.inventories {
		total += int64(inv.CurrentStock)
	}
	return total, nil
}

// ─── InventoryMovementRepository ─────────────────────────────────────────────

type fakeMovementRepo struct {
	st *memState
}

func (r *fakeMovementRepo) Create(mov *entity.InventoryMovement) error {
	cp := *mov
	r.st.movements = append(r.st.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit, offset int) ([]*entity.InventoryMovement, error) {
	ordered := make([]*entity.InventoryMovement, len(r.st.movements))
	copy(ordered, r.st.movements)
	// Inserción cronológica: invertir da el más reciente primero.
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	if offset >= len(ordered) {
		return nil, nil
	}
	ordered = ordered[offset:]
	if limit > 0 && limit < len(ordered) {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

func (r *fakeMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.st.movements {
		if !m.MovementDate.Before(from) && !m.MovementDate.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByDateRange(from, to time.Time) (int64, error) {
	list, _ := r.ListByDateRange(from, to)
	return int64(len(list)), nil
}

func (r *fakeMovementRepo) Count() (int64, error) {
	return int64(len(r.st.movements)), nil
}

// ─── TxRunner ────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	mu sync.Mutex
	st *memState
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.st.clone()
	if err := fn(&fakeInventoryRepo{st: r.st}, &fakeMovementRepo{st: r.st}); err != nil {
		r.st.restore(snapshot)
		return err
	}
	return nil
}

// ─── Catálogos (producto, almacén, usuario) ──────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) && p.IsActive() {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListWithTotalStock(active bool) ([]repository.ProductWithStock, error) {
	var out []repository.ProductWithStock
	for _, p := range r.products {
		if p.IsActive() == active {
			out = append(out, repository.ProductWithStock{Product: *p})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountActive() (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsActive() {
			n++
		}
	}
	return n, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if strings.EqualFold(w.Name, name) && w.IsActive() {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) List(active bool) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.IsActive() == active {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeWarehouseRepo) CountActive() (int64, error) {
	var n int64
	for _, w := range r.warehouses {
		if w.IsActive() {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetActiveByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) && u.IsActive() {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(active bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.IsActive() == active {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeUserRepo) CountActiveByRole(role entity.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsActive() && u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}
