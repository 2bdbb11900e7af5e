package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// ServiceOrderHandler maneja las órdenes de servicio del taller.
type ServiceOrderHandler struct {
	uc *usecase.ServiceOrderUseCase
}

// NewServiceOrderHandler construye el handler.
func NewServiceOrderHandler(uc *usecase.ServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir orden de servicio
// @Tags         ordenes_servicio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ServiceOrderRequest  true  "vehiculo_id, diagnostico, tecnico_asignado"
// @Success      201   {object}  entity.ServiceOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ordenes_servicio [post]
func (h *ServiceOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.ServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vehiculo_id es requerido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID godoc
// @Summary      Consultar orden de servicio
// @Tags         ordenes_servicio
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  entity.ServiceOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes_servicio/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	order, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// List godoc
// @Summary      Listar órdenes de servicio
// @Tags         ordenes_servicio
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.ServiceOrder
// @Router       /api/ordenes_servicio [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
