package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

type warehouseFixture struct {
	uc          *usecase.WarehouseUseCase
	warehouses  *memWarehouseRepo
	inventories *memInventoryRepo
	products    *memProductRepo
}

func newWarehouseFixture(t *testing.T) *warehouseFixture {
	t.Helper()
	warehouses := newMemWarehouseRepo()
	inventories := newMemInventoryRepo()
	products := newMemProductRepo()
	reports := &memReportRepo{inventories: inventories, products: products}
	return &warehouseFixture{
		uc:          usecase.NewWarehouseUseCase(warehouses, inventories, reports),
		warehouses:  warehouses,
		inventories: inventories,
		products:    products,
	}
}

func TestWarehouseCreate_NombreUnico(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central", City: "Bogotá"})
	require.NoError(t, err)
	assert.True(t, out.Active)

	_, err = f.uc.Create(dto.CreateWarehouseRequest{Name: "central"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.uc.Create(dto.CreateWarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseDelete_BloqueadoConStock(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)

	require.NoError(t, f.inventories.Upsert(&entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: out.ID, CurrentStock: 4, MinStock: 10,
	}))
	require.NoError(t, f.inventories.Upsert(&entity.Inventory{
		ID: "inv-2", ProductID: "prod-2", WarehouseID: out.ID, CurrentStock: 9, MinStock: 10,
	}))

	err = f.uc.Delete(out.ID)
	require.Error(t, err)

	var hasStock *domain.WarehouseHasStockError
	require.ErrorAs(t, err, &hasStock,
		"eliminar un almacén con stock debe indicar cuántos productos lo bloquean")
	assert.Equal(t, int64(2), hasStock.ProductsWithStock)

	stored, _ := f.warehouses.GetByID(out.ID)
	assert.True(t, stored.IsActive(), "el almacén debe seguir activo tras el rechazo")
}

func TestWarehouseDelete_PermitidoConFilasEnCero(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)

	// Una fila en cero no bloquea: solo cuenta el stock positivo.
	require.NoError(t, f.inventories.Upsert(&entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: out.ID, CurrentStock: 0, MinStock: 10,
	}))

	require.NoError(t, f.uc.Delete(out.ID))
	stored, _ := f.warehouses.GetByID(out.ID)
	assert.False(t, stored.IsActive())
	assert.NotNil(t, stored.DeletedAt)
}

func TestWarehouseRestore(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(out.ID))

	require.NoError(t, f.uc.Restore(out.ID))
	stored, _ := f.warehouses.GetByID(out.ID)
	assert.True(t, stored.IsActive())
	assert.Nil(t, stored.DeletedAt, "restaurar limpia la fecha de eliminación")

	assert.ErrorIs(t, f.uc.Restore(out.ID), domain.ErrAlreadyActive)
	assert.ErrorIs(t, f.uc.Restore("wh-fantasma"), domain.ErrNotFound)
}

func TestWarehouseUpdate_SoloActivos(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(out.ID))

	name := "Renombrado"
	_, err = f.uc.Update(out.ID, dto.UpdateWarehouseRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrEntityInactive)
}

func TestWarehouseList_IncorporaStockYProductos(t *testing.T) {
	f := newWarehouseFixture(t)

	out, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)

	require.NoError(t, f.products.Create(&entity.Product{
		ID: "prod-1", Name: "Laptop", Lifecycle: entity.NewActiveLifecycle(), CreatedAt: time.Now(),
	}))
	require.NoError(t, f.inventories.Upsert(&entity.Inventory{
		ID: "inv-1", ProductID: "prod-1", WarehouseID: out.ID, CurrentStock: 12, MinStock: 5,
	}))

	items, err := f.uc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 12, items[0].TotalStock)
	require.Len(t, items[0].Products, 1)
	assert.Equal(t, "Laptop", items[0].Products[0].ProductName)
}

func TestWarehouseActiveForSelection(t *testing.T) {
	f := newWarehouseFixture(t)

	central, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	norte, err := f.uc.Create(dto.CreateWarehouseRequest{Name: "Norte"})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(norte.ID))

	items, err := f.uc.ActiveForSelection()
	require.NoError(t, err)
	require.Len(t, items, 1, "los eliminados no aparecen en el selector")
	assert.Equal(t, central.ID, items[0].ID)
}
