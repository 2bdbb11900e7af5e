package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// PartHandler maneja el catálogo de refacciones.
type PartHandler struct {
	uc *usecase.PartUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar refacción en el catálogo
// @Tags         refacciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartRequestBody  true  "clave, descripcion, unidad_medida (default pieza)"
// @Success      201   {object}  entity.Part
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/refacciones [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.PartRequestBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	part, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave y descripcion son requeridas"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la clave ya existe en el catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(part)
}

// GetByID godoc
// @Summary      Consultar refacción
// @Tags         refacciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la refacción"
// @Success      200  {object}  entity.Part
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	part, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(part)
}

// List godoc
// @Summary      Listar catálogo de refacciones
// @Tags         refacciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Part
// @Router       /api/refacciones [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
