package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// IssueHandler maneja el protocolo de salida de refacciones.
type IssueHandler struct {
	uc *almacen.IssueUseCase
}

// NewIssueHandler construye el handler.
func NewIssueHandler(uc *almacen.IssueUseCase) *IssueHandler {
	return &IssueHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de refacciones
// @Description  Verifica y descuenta existencias y genera movimientos de salida
//
//	en una sola transacción. Si una partida no alcanza, el lote
//	entero se rechaza con 409.
//
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "orden_servicio_id, entregado_por, recibido_por, detalles"
// @Success      201   {object}  entity.Issue
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/salidas [post]
func (h *IssueHandler) Create(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := almacen.IssueInput{
		ServiceOrderID: in.OrdenServicioID,
		EntregadoPor:   in.EntregadoPor,
		RecibidoPor:    in.RecibidoPor,
	}
	for _, det := range in.Detalles {
		input.Lines = append(input.Lines, almacen.IssueLineInput{
			PartID:   det.RefaccionID,
			Cantidad: det.Cantidad,
		})
	}
	issue, err := h.uc.Issue(c.Context(), input)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entregado_por, recibido_por y detalles son requeridos"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida en detalle"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio o refacción no encontrada"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay suficiente inventario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}
