package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/inventory"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// Paginación por defecto del historial de movimientos.
const (
	defaultMovementLimit = 50
	maxMovementLimit     = 200
)

// MovementHandler maneja las peticiones HTTP del motor de movimientos
// (entradas, salidas, traslados, historial y stock por producto).
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, warehouse_id, quantity, motive"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	in, ok := h.parseMovement(c)
	if !ok {
		return nil
	}
	mov, err := h.uc.RegisterEntry(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterExit godoc
// @Summary      Registrar salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, warehouse_id, quantity, motive"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/exits [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	in, ok := h.parseMovement(c)
	if !ok {
		return nil
	}
	mov, err := h.uc.RegisterExit(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// Transfer godoc
// @Summary      Trasladar stock entre almacenes
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, origin_warehouse_id, destination_warehouse_id, quantity, motive"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Transfer(c.Context(), inventory.TransferInput{
		ProductID:              in.ProductID,
		OriginWarehouseID:      in.OriginWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		UserID:                 userID,
		Motive:                 in.Motive,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		TransferReference: result.TransferReference,
		ExitMovement:      toMovementResponse(result.ExitMovement),
		EntryMovement:     toMovementResponse(result.EntryMovement),
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos (más reciente primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (defecto 50, tope 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) ListMovements(c *fiber.Ctx) error {
	limit := queryInt(c, "limit", defaultMovementLimit)
	if limit <= 0 || limit > maxMovementLimit {
		limit = defaultMovementLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	movs, err := h.uc.ListMovements(limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// StockByProduct godoc
// @Summary      Stock de un producto por almacén (solo almacenes con stock)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}   dto.WarehouseStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *MovementHandler) StockByProduct(c *fiber.Ctx) error {
	rows, err := h.uc.StockByProduct(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	out := make([]dto.WarehouseStockResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, dto.WarehouseStockResponse{
			WarehouseID:  inv.WarehouseID,
			CurrentStock: inv.CurrentStock,
			MinStock:     inv.MinStock,
		})
	}
	return c.JSON(out)
}

// parseMovement parsea el cuerpo común de entradas y salidas; el user_id
// sale del token, nunca del cuerpo. Si devuelve false la respuesta de error
// ya fue escrita.
func (h *MovementHandler) parseMovement(c *fiber.Ctx) (inventory.MovementInput, bool) {
	userID := GetUserID(c)
	if userID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		return inventory.MovementInput{}, false
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return inventory.MovementInput{}, false
	}
	return inventory.MovementInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UserID:      userID,
		Motive:      in.Motive,
	}, true
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                m.ID,
		MovementDate:      m.MovementDate,
		Type:              m.Type,
		Quantity:          m.Quantity,
		ProductID:         m.ProductID,
		WarehouseID:       m.WarehouseID,
		UserID:            m.UserID,
		Motive:            m.Motive,
		TransferReference: m.TransferReference,
	}
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
