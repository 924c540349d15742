package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/reports"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// Stubs de conteo para el dashboard: cada repositorio devuelve métricas
// fijas; solo se implementa lo que el resumen consulta.

type stubProductRepo struct{ active int64 }

func (s *stubProductRepo) Create(*entity.Product) error                { return nil }
func (s *stubProductRepo) GetByID(string) (*entity.Product, error)     { return nil, nil }
func (s *stubProductRepo) GetByName(string) (*entity.Product, error)   { return nil, nil }
func (s *stubProductRepo) Update(*entity.Product) error                { return nil }
func (s *stubProductRepo) CountActive() (int64, error)                 { return s.active, nil }
func (s *stubProductRepo) ListWithTotalStock(bool) ([]repository.ProductWithStock, error) {
	return nil, nil
}

type stubWarehouseRepo struct{ active int64 }

func (s *stubWarehouseRepo) Create(*entity.Warehouse) error              { return nil }
func (s *stubWarehouseRepo) GetByID(string) (*entity.Warehouse, error)   { return nil, nil }
func (s *stubWarehouseRepo) GetByName(string) (*entity.Warehouse, error) { return nil, nil }
func (s *stubWarehouseRepo) Update(*entity.Warehouse) error              { return nil }
func (s *stubWarehouseRepo) List(bool) ([]*entity.Warehouse, error)      { return nil, nil }
func (s *stubWarehouseRepo) CountActive() (int64, error)                 { return s.active, nil }

type stubUserRepo struct{ total int64 }

func (s *stubUserRepo) Create(*entity.User) error                     { return nil }
func (s *stubUserRepo) GetByID(string) (*entity.User, error)          { return nil, nil }
func (s *stubUserRepo) GetActiveByEmail(string) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) Update(*entity.User) error                     { return nil }
func (s *stubUserRepo) List(bool) ([]*entity.User, error)             { return nil, nil }
func (s *stubUserRepo) CountActiveByRole(entity.Role) (int64, error)  { return 0, nil }
func (s *stubUserRepo) Count() (int64, error)                         { return s.total, nil }

type stubInventoryRepo struct{ total int64 }

func (s *stubInventoryRepo) Get(string, string) (*entity.Inventory, error)          { return nil, nil }
func (s *stubInventoryRepo) GetForUpdate(string, string) (*entity.Inventory, error) { return nil, nil }
func (s *stubInventoryRepo) Upsert(*entity.Inventory) error                         { return nil }
func (s *stubInventoryRepo) ListByProduct(string) ([]*entity.Inventory, error)      { return nil, nil }
func (s *stubInventoryRepo) CountWithStock(string) (int64, error)                   { return 0, nil }
func (s *stubInventoryRepo) TotalStock() (int64, error)                             { return s.total, nil }

type stubMovementRepo struct {
	total int64
	today int64
}

func (s *stubMovementRepo) Create(*entity.InventoryMovement) error { return nil }
func (s *stubMovementRepo) ListRecent(int, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}
func (s *stubMovementRepo) ListByDateRange(time.Time, time.Time) ([]*entity.InventoryMovement, error) {
	return nil, nil
}
func (s *stubMovementRepo) CountByDateRange(time.Time, time.Time) (int64, error) {
	return s.today, nil
}
func (s *stubMovementRepo) Count() (int64, error) { return s.total, nil }

func TestDashboardSummary_ReuneMetricas(t *testing.T) {
	now := time.Now()
	reportRepo := &stubReportRepo{
		lowStock: []repository.LowStockRow{
			{ProductID: "p1", ProductName: "Laptop", WarehouseName: "Central", CurrentStock: 2, MinStock: 10},
			{ProductID: "p2", ProductName: "Mouse", WarehouseName: "Norte", CurrentStock: 4, MinStock: 5},
		},
		recent: []repository.RecentMovementRow{
			{ID: "m1", ProductName: "Laptop", WarehouseName: "Central",
				MovementType: entity.MovementTypeExit, Quantity: 3, MovementDate: now, UserName: "Carlos"},
			{ID: "m2", ProductName: "Mouse", WarehouseName: "Norte",
				MovementType: entity.MovementTypeEntry, Quantity: 7, MovementDate: now, UserName: ""},
		},
	}
	uc := reports.NewDashboardUseCase(
		&stubProductRepo{active: 12},
		&stubWarehouseRepo{active: 3},
		&stubUserRepo{total: 5},
		&stubInventoryRepo{total: 480},
		&stubMovementRepo{total: 90, today: 6},
		reportRepo,
	)

	out, err := uc.Summary(context.Background(), "Carlos")
	require.NoError(t, err)

	assert.Equal(t, "Carlos", out.UserName)
	assert.Equal(t, int64(12), out.TotalProducts)
	assert.Equal(t, int64(3), out.TotalWarehouses)
	assert.Equal(t, int64(480), out.TotalStock)
	assert.Equal(t, int64(5), out.TotalUsers)
	assert.Equal(t, int64(90), out.TotalMovements)
	assert.Equal(t, int64(6), out.MovementsToday)

	assert.Equal(t, 2, out.LowStockCount)
	require.Len(t, out.LowStockAlerts, 2)
	assert.Equal(t, "Laptop", out.LowStockAlerts[0].ProductName)

	require.Len(t, out.RecentMovements, 2)
	assert.Equal(t, -3, out.RecentMovements[0].Quantity,
		"las salidas se muestran con cantidad negativa")
	assert.Equal(t, 7, out.RecentMovements[1].Quantity)
	assert.Equal(t, "Sistema", out.RecentMovements[1].UserName,
		"un movimiento sin usuario resuelto se atribuye a Sistema")
}

func TestDashboardSummary_SinDatos(t *testing.T) {
	uc := reports.NewDashboardUseCase(
		&stubProductRepo{}, &stubWarehouseRepo{}, &stubUserRepo{},
		&stubInventoryRepo{}, &stubMovementRepo{}, &stubReportRepo{},
	)

	out, err := uc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, out.TotalProducts)
	assert.NotNil(t, out.LowStockAlerts, "las colecciones vacías serializan como [] y no null")
	assert.NotNil(t, out.RecentMovements)
	assert.Empty(t, out.LowStockAlerts)
}
