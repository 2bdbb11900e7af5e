package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// ReceiptHandler maneja el protocolo de recepción de mercancía.
type ReceiptHandler struct {
	uc *almacen.ReceiveUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *almacen.ReceiveUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recepción de mercancía
// @Description  Suma existencias y genera movimientos de entrada en una sola
//
//	transacción; cualquier fallo revierte la recepción completa.
//
// @Tags         recepciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "oc_id, recibido_por, detalles"
// @Success      201   {object}  entity.Receipt
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recepciones [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := almacen.ReceiveInput{
		PurchaseOrderID: in.OCID,
		RecibidoPor:     in.RecibidoPor,
	}
	for _, det := range in.Detalles {
		input.Lines = append(input.Lines, almacen.ReceiveLineInput{
			PartID:           det.RefaccionID,
			CantidadRecibida: det.CantidadRecibida,
			CantidadOC:       det.CantidadOC,
		})
	}
	receipt, err := h.uc.Receive(c.Context(), input)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recibido_por y detalles son requeridos"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad recibida inválida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra o refacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}
