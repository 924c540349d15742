package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEntityInactive     = errors.New("el recurso está inactivo")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInsufficientStock señala una salida mayor al stock disponible.
	// El motor envuelve este centinela en InsufficientStockError con las cantidades.
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrNoInventoryRecord señala una salida contra un par (producto, almacén)
	// que nunca ha tenido inventario (distinto de stock en cero).
	ErrNoInventoryRecord = errors.New("no existe inventario de este producto en el almacén seleccionado")

	// ErrConflict señala un conflicto de concurrencia (deadlock o fallo de
	// serialización) sobre la misma fila de inventario. Reintentable.
	ErrConflict = errors.New("conflicto de concurrencia, reintente la operación")

	// ErrInvariant indica un bug: se intentó persistir un stock negativo.
	ErrInvariant = errors.New("invariante de inventario violado: stock negativo")

	ErrLastAdministrator = errors.New("no se puede eliminar al único Administrador del sistema")
	ErrAlreadyActive     = errors.New("el recurso ya se encuentra activo")
)

// InsufficientStockError lleva las cantidades para diagnóstico del operador.
type InsufficientStockError struct {
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Hay %d unidades y se intenta sacar %d.", e.Current, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// WarehouseHasStockError bloquea la eliminación de un almacén con stock asignado.
type WarehouseHasStockError struct {
	ProductsWithStock int64
}

func (e *WarehouseHasStockError) Error() string {
	return fmt.Sprintf("El almacén tiene productos asignados y no puede ser eliminado. Productos con stock activo: %d", e.ProductsWithStock)
}
