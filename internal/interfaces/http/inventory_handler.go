package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// InventoryHandler consultas de existencias y kardex.
type InventoryHandler struct {
	uc *almacen.KardexUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *almacen.KardexUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Kardex godoc
// @Summary      Kardex de una refacción
// @Description  Movimientos en orden cronológico (fecha asc, id asc) con saldo corrido.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la refacción"
// @Success      200  {array}   dto.KardexEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{id} [get]
func (h *InventoryHandler) Kardex(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	entries, err := h.uc.RunningBalance(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	result := make([]dto.KardexEntryDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.KardexEntryDTO{
			ID:          e.Movement.ID,
			RefaccionID: e.Movement.PartID,
			Tipo:        e.Movement.Tipo,
			Cantidad:    e.Movement.Cantidad,
			Saldo:       e.Saldo,
			Referencia:  e.Movement.Referencia,
			Fecha:       e.Movement.Fecha,
		})
	}
	return c.JSON(result)
}

// Stock godoc
// @Summary      Existencia actual de una refacción
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la refacción"
// @Success      200  {object}  dto.StockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	existencia, err := h.uc.GetBalance(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockDTO{RefaccionID: id, Existencia: existencia})
}
