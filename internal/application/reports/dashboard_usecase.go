package reports

import (
	"context"
	"time"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// recentMovementsLimit cuántos movimientos recientes muestra el dashboard.
const recentMovementsLimit = 5

// DashboardUseCase arma el resumen de métricas de la vista principal leyendo
// ledger y movimientos de forma independiente, sin efectos secundarios.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	movementRepo  repository.InventoryMovementRepository
	reportRepo    repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	movementRepo repository.InventoryMovementRepository,
	reportRepo repository.ReportRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		reportRepo:    reportRepo,
	}
}

// Summary reúne todas las métricas del dashboard para el usuario dado.
func (uc *DashboardUseCase) Summary(ctx context.Context, userName string) (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{
		UserName:        userName,
		LowStockAlerts:  []dto.LowStockAlert{},
		RecentMovements: []dto.RecentMovement{},
	}

	var err error
	if summary.TotalProducts, err = uc.productRepo.CountActive(); err != nil {
		return nil, err
	}
	if summary.TotalWarehouses, err = uc.warehouseRepo.CountActive(); err != nil {
		return nil, err
	}
	if summary.TotalStock, err = uc.inventoryRepo.TotalStock(); err != nil {
		return nil, err
	}
	if summary.TotalUsers, err = uc.userRepo.Count(); err != nil {
		return nil, err
	}
	if summary.TotalMovements, err = uc.movementRepo.Count(); err != nil {
		return nil, err
	}

	now := time.Now()
	if summary.MovementsToday, err = uc.movementRepo.CountByDateRange(startOfDay(now), endOfDay(now)); err != nil {
		return nil, err
	}

	lowStock, err := uc.reportRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range lowStock {
		summary.LowStockAlerts = append(summary.LowStockAlerts, dto.LowStockAlert{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			WarehouseName: row.WarehouseName,
			CurrentStock:  row.CurrentStock,
			MinStock:      row.MinStock,
		})
	}
	summary.LowStockCount = len(summary.LowStockAlerts)

	recent, err := uc.reportRepo.RecentMovements(ctx, recentMovementsLimit)
	if err != nil {
		return nil, err
	}
	for _, row := range recent {
		qty := row.Quantity
		if row.MovementType == entity.MovementTypeExit {
			qty = -qty
		}
		userName := row.UserName
		if userName == "" {
			userName = "Sistema"
		}
		summary.RecentMovements = append(summary.RecentMovements, dto.RecentMovement{
			ID:            row.ID,
			ProductName:   row.ProductName,
			WarehouseName: row.WarehouseName,
			Quantity:      qty,
			MovementDate:  row.MovementDate,
			UserName:      userName,
		})
	}
	return summary, nil
}
