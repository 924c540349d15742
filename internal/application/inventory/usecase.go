package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// DefaultMinStock umbral mínimo por defecto para filas de inventario creadas
// perezosamente en una ENTRADA. Se inyecta desde configuración; este valor
// solo aplica si la configuración no define otro.
const DefaultMinStock = 10

// transferReferencePrefix prefijo de la referencia que correlaciona las dos
// patas de un traslado.
const transferReferencePrefix = "TRANS-"

// MovementUseCase es el motor de movimientos: la única autoridad que muta
// cantidades de stock y produce la pista de auditoría. Toda operación de
// lectura-modificación-escritura corre dentro de TxRunner con bloqueo de
// fila (SELECT FOR UPDATE), de modo que dos salidas concurrentes no puedan
// pasar ambas la verificación de suficiencia contra un valor obsoleto.
type MovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	movementRepo  repository.InventoryMovementRepository
	minStock      int
}

// NewMovementUseCase construye el motor. defaultMinStock es el umbral para
// filas creadas perezosamente; si es <= 0 se usa DefaultMinStock.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	movementRepo repository.InventoryMovementRepository,
	defaultMinStock int,
) *MovementUseCase {
	if defaultMinStock <= 0 {
		defaultMinStock = DefaultMinStock
	}
	return &MovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		minStock:      defaultMinStock,
	}
}

// MovementInput entrada para registrar una entrada o salida simple.
type MovementInput struct {
	ProductID   string
	WarehouseID string
	Quantity    int
	UserID      string
	Motive      string
}

// TransferInput entrada para un traslado entre almacenes.
type TransferInput struct {
	ProductID              string
	OriginWarehouseID      string
	DestinationWarehouseID string
	Quantity               int
	UserID                 string
	Motive                 string
}

// TransferResult las dos patas de un traslado más su referencia compartida.
type TransferResult struct {
	TransferReference string
	ExitMovement      *entity.InventoryMovement
	EntryMovement     *entity.InventoryMovement
}

// RegisterEntry suma stock a un par (producto, almacén), creando la fila de
// inventario en cero si no existe, y registra el movimiento ENTRADA.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, in MovementInput) (*entity.InventoryMovement, error) {
	if err := uc.validateMovement(in); err != nil {
		return nil, err
	}
	now := time.Now()
	var mov *entity.InventoryMovement
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		var err error
		mov, err = uc.applyEntry(invRepo, movRepo, in.ProductID, in.WarehouseID, in.UserID, in.Quantity, in.Motive, "", now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterExit resta stock de un par (producto, almacén) existente, previa
// verificación de suficiencia, y registra el movimiento SALIDA. Una salida
// contra un par sin fila de inventario se rechaza, no se crea en cero.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, in MovementInput) (*entity.InventoryMovement, error) {
	if err := uc.validateMovement(in); err != nil {
		return nil, err
	}
	now := time.Now()
	var mov *entity.InventoryMovement
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		var err error
		mov, err = uc.applyExit(invRepo, movRepo, in.ProductID, in.WarehouseID, in.UserID, in.Quantity, in.Motive, "", now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Transfer mueve stock entre dos almacenes como unidad atómica: salida en el
// origen y entrada en el destino, cuatro escrituras en una sola transacción,
// ambas patas etiquetadas con la misma referencia y motivo. Cualquier fallo
// de precondición aborta el traslado completo sin efecto parcial.
func (uc *MovementUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	if in.ProductID == "" || in.OriginWarehouseID == "" || in.DestinationWarehouseID == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OriginWarehouseID == in.DestinationWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateParticipants(in.ProductID, in.UserID, in.OriginWarehouseID, in.DestinationWarehouseID); err != nil {
		return nil, err
	}

	reference := transferReferencePrefix + uuid.New().String()
	now := time.Now()
	result := &TransferResult{TransferReference: reference}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		exitMov, err := uc.applyExit(invRepo, movRepo, in.ProductID, in.OriginWarehouseID, in.UserID, in.Quantity, in.Motive, reference, now)
		if err != nil {
			return err
		}
		entryMov, err := uc.applyEntry(invRepo, movRepo, in.ProductID, in.DestinationWarehouseID, in.UserID, in.Quantity, in.Motive, reference, now)
		if err != nil {
			return err
		}
		result.ExitMovement = exitMov
		result.EntryMovement = entryMov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListMovements devuelve el historial del más reciente al más antiguo.
func (uc *MovementUseCase) ListMovements(limit, offset int) ([]*entity.InventoryMovement, error) {
	return uc.movementRepo.ListRecent(limit, offset)
}

// MovementsByDateRange devuelve los movimientos del rango en orden cronológico.
func (uc *MovementUseCase) MovementsByDateRange(from, to time.Time) ([]*entity.InventoryMovement, error) {
	return uc.movementRepo.ListByDateRange(from, to)
}

// StockByProduct devuelve el stock por almacén de un producto, limitado a
// almacenes con stock positivo.
func (uc *MovementUseCase) StockByProduct(productID string) ([]*entity.Inventory, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.activeProduct(productID); err != nil {
		return nil, err
	}
	return uc.inventoryRepo.ListByProduct(productID)
}

// applyEntry suma cantidad a la fila del par, creándola en cero con el umbral
// configurado si no existe, y registra el movimiento ENTRADA.
func (uc *MovementUseCase) applyEntry(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	productID, warehouseID, userID string,
	quantity int, motive, transferRef string,
	now time.Time,
) (*entity.InventoryMovement, error) {
	inv, err := invRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		inv = &entity.Inventory{
			ID:          uuid.New().String(),
			ProductID:   productID,
			WarehouseID: warehouseID,
			MinStock:    uc.minStock,
		}
	}
	inv.CurrentStock += quantity
	inv.UpdatedAt = now
	if inv.CurrentStock < 0 {
		return nil, domain.ErrInvariant
	}
	if err := invRepo.Upsert(inv); err != nil {
		return nil, err
	}
	return uc.record(movRepo, entity.MovementTypeEntry, productID, warehouseID, userID, quantity, motive, transferRef, now)
}

// applyExit resta cantidad de la fila del par. La fila debe existir y tener
// stock suficiente; el chequeo corre contra el valor bloqueado por FOR UPDATE.
func (uc *MovementUseCase) applyExit(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	productID, warehouseID, userID string,
	quantity int, motive, transferRef string,
	now time.Time,
) (*entity.InventoryMovement, error) {
	inv, err := invRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNoInventoryRecord
	}
	if inv.CurrentStock < quantity {
		return nil, &domain.InsufficientStockError{Current: inv.CurrentStock, Requested: quantity}
	}
	inv.CurrentStock -= quantity
	inv.UpdatedAt = now
	if inv.CurrentStock < 0 {
		return nil, domain.ErrInvariant
	}
	if err := invRepo.Upsert(inv); err != nil {
		return nil, err
	}
	return uc.record(movRepo, entity.MovementTypeExit, productID, warehouseID, userID, quantity, motive, transferRef, now)
}

// record crea el registro de auditoría del movimiento.
func (uc *MovementUseCase) record(
	movRepo repository.InventoryMovementRepository,
	movType, productID, warehouseID, userID string,
	quantity int, motive, transferRef string,
	now time.Time,
) (*entity.InventoryMovement, error) {
	mov := &entity.InventoryMovement{
		ID:                uuid.New().String(),
		MovementDate:      now,
		Type:              movType,
		Quantity:          quantity,
		ProductID:         productID,
		WarehouseID:       warehouseID,
		UserID:            userID,
		Motive:            motive,
		TransferReference: transferRef,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// validateMovement precondiciones comunes de entrada y salida.
func (uc *MovementUseCase) validateMovement(in MovementInput) error {
	if in.ProductID == "" || in.WarehouseID == "" || in.UserID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.validateParticipants(in.ProductID, in.UserID, in.WarehouseID)
}

// validateParticipants verifica producto activo, usuario activo y existencia
// de los almacenes referenciados.
func (uc *MovementUseCase) validateParticipants(productID, userID string, warehouseIDs ...string) error {
	if _, err := uc.activeProduct(productID); err != nil {
		return err
	}
	for _, id := range warehouseIDs {
		wh, err := uc.warehouseRepo.GetByID(id)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !user.IsActive() {
		return domain.ErrEntityInactive
	}
	return nil
}

func (uc *MovementUseCase) activeProduct(productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive() {
		return nil, domain.ErrEntityInactive
	}
	return product, nil
}
