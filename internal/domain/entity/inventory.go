package entity

import "time"

// Inventory es la fila de inventario de un par (producto, almacén): stock
// actual y umbral mínimo de alerta. Existe a lo sumo una por par; la crea
// el motor de movimientos (o el alta de producto) y nunca se elimina.
// CurrentStock jamás es negativo.
type Inventory struct {
	ID           string
	ProductID    string
	WarehouseID  string
	CurrentStock int
	MinStock     int
	UpdatedAt    time.Time
}
