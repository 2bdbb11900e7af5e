package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// PartRequestHandler maneja las solicitudes de refacciones de los mecánicos.
type PartRequestHandler struct {
	uc *usecase.PartRequestUseCase
}

// NewPartRequestHandler construye el handler.
func NewPartRequestHandler(uc *usecase.PartRequestUseCase) *PartRequestHandler {
	return &PartRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Levantar solicitud de refacciones
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartRequestRequest  true  "orden_servicio_id, solicitante, detalles"
// @Success      201   {object}  entity.PartRequest
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *PartRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.PartRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	request, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solicitante y detalles son requeridos"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida en detalle"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio o refacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// List godoc
// @Summary      Listar solicitudes de refacciones
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.PartRequest
// @Router       /api/solicitudes [get]
func (h *PartRequestHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
