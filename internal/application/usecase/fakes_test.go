package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// Dobles en memoria del almacenamiento para los casos de uso de catálogo.

type memProductRepo struct {
	products map[string]*entity.Product
	stocks   map[string]int // stock total por producto
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}, stocks: map[string]int{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) && p.IsActive() {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) ListWithTotalStock(active bool) ([]repository.ProductWithStock, error) {
	var out []repository.ProductWithStock
	for _, p := range r.products {
		if p.IsActive() == active {
			out = append(out, repository.ProductWithStock{Product: *p, TotalStock: r.stocks[p.ID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.Name < out[j].Product.Name })
	return out, nil
}

func (r *memProductRepo) CountActive() (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsActive() {
			n++
		}
	}
	return n, nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if strings.EqualFold(w.Name, name) && w.IsActive() {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) List(active bool) ([]*entity.Warehouse, error) {
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

func (r *memWarehouseRepo) CountActive() (int64, error) {
	var n int64
	for _, w := range r.warehouses {
		if w.IsActive() {
			n++
		}
	}
	return n, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetActiveByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) && u.IsActive() {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(active bool) ([]*entity.User, error) {
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

func (r *memUserRepo) CountActiveByRole(role entity.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsActive() && u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type memInventoryRepo struct {
	rows map[string]*entity.Inventory // clave producto|almacén
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{rows: map[string]*entity.Inventory{}}
}

func invKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (r *memInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := r.rows[invKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}

func (r *memInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	r.rows[invKey(inv.ProductID, inv.WarehouseID)] = &cp
	return nil
}

func (r *memInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.rows {
		if inv.ProductID == productID && inv.CurrentStock > 0 {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) CountWithStock(warehouseID string) (int64, error) {
	var n int64
	for _, inv := range r.rows {
		if inv.WarehouseID == warehouseID && inv.CurrentStock > 0 {
			n++
		}
	}
	return n, nil
}

func (r *memInventoryRepo) TotalStock() (int64, error) {
	var total int64
	for _, inv := range r.rows {
		total += int64(inv.CurrentStock)
	}
	return total, nil
}

// memReportRepo resuelve StockByWarehouse contra el inventario y los
// productos en memoria; el resto de reportes devuelve datos fijos.
type memReportRepo struct {
	inventories *memInventoryRepo
	products    *memProductRepo
	lowStock    []repository.LowStockRow
	movements   []repository.MovementReportRow
	mostSold    []repository.MostSoldRow
	recent      []repository.RecentMovementRow
}

func (r *memReportRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	return r.lowStock, nil
}

func (r *memReportRepo) MovementsByDate(ctx context.Context, from, to time.Time) ([]repository.MovementReportRow, error) {
	var out []repository.MovementReportRow
	for _, m := range r.movements {
		if !m.MovementDate.Before(from) && !m.MovementDate.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memReportRepo) MostSold(ctx context.Context) ([]repository.MostSoldRow, error) {
	return r.mostSold, nil
}

func (r *memReportRepo) RecentMovements(ctx context.Context, limit int) ([]repository.RecentMovementRow, error) {
	if limit < len(r.recent) {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *memReportRepo) StockByWarehouse(ctx context.Context, warehouseID string) ([]repository.ProductStockRow, error) {
	var out []repository.ProductStockRow
	for _, inv := range r.inventories.rows {
		if inv.WarehouseID != warehouseID || inv.CurrentStock <= 0 {
			continue
		}
		name := ""
		if p, ok := r.products.products[inv.ProductID]; ok {
			name = p.Name
		}
		out = append(out, repository.ProductStockRow{
			ProductID:    inv.ProductID,
			ProductName:  name,
			CurrentStock: inv.CurrentStock,
			MinStock:     inv.MinStock,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}
