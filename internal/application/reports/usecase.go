package reports

import (
	"context"
	"time"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura sobre inventario y movimientos.
// Nunca muta el ledger ni el historial.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// LowStock devuelve exactamente las filas de inventario con stock actual por
// debajo del umbral mínimo, entre productos activos.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.StockReportItem, error) {
	rows, err := uc.reportRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockReportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.StockReportItem{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			WarehouseName: row.WarehouseName,
			CurrentStock:  row.CurrentStock,
			MinimumStock:  row.MinStock,
		})
	}
	return items, nil
}

// MovementsByDate devuelve los movimientos entre los dos días dados, en orden
// cronológico. El rango cubre desde la medianoche del día inicial hasta el
// final del día final.
func (uc *ReportUseCase) MovementsByDate(ctx context.Context, startDate, endDate time.Time) ([]dto.MovementReportItem, error) {
	if endDate.Before(startDate) {
		return nil, domain.ErrInvalidInput
	}
	from := startOfDay(startDate)
	to := endOfDay(endDate)
	rows, err := uc.reportRepo.MovementsByDate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementReportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.MovementReportItem{
			MovementDate:  row.MovementDate,
			ProductName:   row.ProductName,
			MovementType:  row.MovementType,
			Quantity:      row.Quantity,
			WarehouseName: row.WarehouseName,
			UserName:      row.UserName,
		})
	}
	return items, nil
}

// MostSold devuelve los productos con más unidades salidas. El ingreso usa el
// precio actual del producto, no el histórico al momento de cada salida.
func (uc *ReportUseCase) MostSold(ctx context.Context) ([]dto.SalesReportItem, error) {
	rows, err := uc.reportRepo.MostSold(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesReportItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.SalesReportItem{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			UnitsSold:    row.UnitsSold,
			TotalRevenue: row.TotalRevenue,
			AveragePrice: row.AveragePrice,
		})
	}
	return items, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
