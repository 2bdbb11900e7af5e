package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/ingest"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// PurchaseOrderHandler maneja órdenes de compra, incluida la importación de
// documentos de proveedor (json, texto plano o xml).
type PurchaseOrderHandler struct {
	uc       *usecase.PurchaseOrderUseCase
	importer *ingest.Importer
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase, importer *ingest.Importer) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, importer: importer}
}

// Create godoc
// @Summary      Capturar orden de compra
// @Tags         ordenes_compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseOrderRequest  true  "proveedor, detalles (refaccion_id, cantidad, precio_unitario)"
// @Success      201   {object}  entity.PurchaseOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ordenes_compra [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor y detalles válidos son requeridos"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida en detalle"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción o solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID godoc
// @Summary      Consultar orden de compra
// @Tags         ordenes_compra
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la OC"
// @Success      200  {object}  entity.PurchaseOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes_compra/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	order, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         ordenes_compra
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.PurchaseOrder
// @Router       /api/ordenes_compra [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Import godoc
// @Summary      Importar orden de compra desde documento de proveedor
// @Description  Acepta el documento en json, texto plano (formato de cotización) o xml.
//
//	Las refacciones desconocidas se dan de alta en el catálogo con la
//	descripción del documento.
//
// @Tags         ordenes_compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "tipo (json|texto|xml), contenido"
// @Success      201   {object}  entity.PurchaseOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes_compra/importar [post]
func (h *PurchaseOrderHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.importer.Import(c.Context(), in.Tipo, in.Contenido)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "documento no reconocido o sin partidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
