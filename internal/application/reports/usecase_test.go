package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/reports"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// stubReportRepo devuelve datos fijos y captura el rango consultado.
type stubReportRepo struct {
	lowStock []repository.LowStockRow
	byDate   []repository.MovementReportRow
	mostSold []repository.MostSoldRow
	recent   []repository.RecentMovementRow

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubReportRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	return s.lowStock, nil
}

func (s *stubReportRepo) MovementsByDate(ctx context.Context, from, to time.Time) ([]repository.MovementReportRow, error) {
	s.gotFrom, s.gotTo = from, to
	return s.byDate, nil
}

func (s *stubReportRepo) MostSold(ctx context.Context) ([]repository.MostSoldRow, error) {
	return s.mostSold, nil
}

func (s *stubReportRepo) RecentMovements(ctx context.Context, limit int) ([]repository.RecentMovementRow, error) {
	if limit < len(s.recent) {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func (s *stubReportRepo) StockByWarehouse(ctx context.Context, warehouseID string) ([]repository.ProductStockRow, error) {
	return nil, nil
}

func TestLowStock_MapeaFilas(t *testing.T) {
	repo := &stubReportRepo{lowStock: []repository.LowStockRow{
		{ProductID: "p1", ProductName: "Laptop", WarehouseName: "Central", CurrentStock: 3, MinStock: 10},
	}}
	uc := reports.NewReportUseCase(repo)

	items, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].ProductName)
	assert.Equal(t, 3, items[0].CurrentStock)
	assert.Equal(t, 10, items[0].MinimumStock)
}

func TestMovementsByDate_RangoCubreDiasCompletos(t *testing.T) {
	repo := &stubReportRepo{}
	uc := reports.NewReportUseCase(repo)

	start := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 9, 15, 0, 0, time.UTC)
	_, err := uc.MovementsByDate(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), repo.gotFrom,
		"el rango arranca en la medianoche del día inicial")
	assert.Equal(t, 12, repo.gotTo.Day())
	assert.Equal(t, 23, repo.gotTo.Hour(), "el rango cubre hasta el final del día final")
}

func TestMovementsByDate_RangoInvertidoRechazado(t *testing.T) {
	uc := reports.NewReportUseCase(&stubReportRepo{})

	start := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.MovementsByDate(context.Background(), start, end)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementsByDate_MismoDiaValido(t *testing.T) {
	repo := &stubReportRepo{}
	uc := reports.NewReportUseCase(repo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.MovementsByDate(context.Background(), day, day)
	require.NoError(t, err, "un rango de un solo día es válido")
}

func TestMostSold_MapeaIngresos(t *testing.T) {
	repo := &stubReportRepo{mostSold: []repository.MostSoldRow{
		{ProductID: "p1", ProductName: "Laptop", UnitsSold: 40,
			TotalRevenue: decimal.NewFromInt(4000), AveragePrice: decimal.NewFromInt(100)},
	}}
	uc := reports.NewReportUseCase(repo)

	items, err := uc.MostSold(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(40), items[0].UnitsSold)
	assert.True(t, items[0].TotalRevenue.Equal(decimal.NewFromInt(4000)))
}
