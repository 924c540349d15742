package dto

import "time"

// LowStockAlert alerta de stock bajo para el dashboard.
type LowStockAlert struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
	CurrentStock  int    `json:"current_stock"`
	MinStock      int    `json:"min_stock"`
}

// RecentMovement movimiento reciente para el dashboard. La cantidad se
// muestra negativa en las salidas.
type RecentMovement struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      int       `json:"quantity"`
	MovementDate  time.Time `json:"movement_date"`
	UserName      string    `json:"user_name"`
}

// DashboardSummary métricas agregadas para la vista principal.
type DashboardSummary struct {
	UserName        string           `json:"user_name"`
	TotalProducts   int64            `json:"total_products"`
	TotalWarehouses int64            `json:"total_warehouses"`
	TotalStock      int64            `json:"total_stock"`
	MovementsToday  int64            `json:"movements_today"`
	TotalUsers      int64            `json:"total_users"`
	TotalMovements  int64            `json:"total_movements"`
	LowStockCount   int              `json:"low_stock_count"`
	LowStockAlerts  []LowStockAlert  `json:"low_stock_alerts"`
	RecentMovements []RecentMovement `json:"recent_movements"`
}
