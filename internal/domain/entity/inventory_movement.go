package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry = "ENTRADA"
	MovementTypeExit  = "SALIDA"
)

// InventoryMovement es un registro inmutable del historial de movimientos.
// Se crea exclusivamente desde el motor de movimientos y nunca se actualiza
// ni se elimina: es la pista de auditoría.
// TransferReference correlaciona las dos patas de un traslado; vacío en
// entradas y salidas simples.
type InventoryMovement struct {
	ID                string
	MovementDate      time.Time
	Type              string
	Quantity          int
	ProductID         string
	WarehouseID       string
	UserID            string
	Motive            string
	TransferReference string
}
