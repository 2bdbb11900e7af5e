package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/reports"
	"github.com/tu-usuario/taller-api/internal/domain"
)

// ReportHandler expone los reportes de conciliación y el dashboard.
type ReportHandler struct {
	uc  *reports.UseCase
	pdf reports.InventoryPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, pdf reports.InventoryPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryDetailDTO
// @Router       /api/reportes/inventario [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	result, err := h.uc.InventoryDetail(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	rows, err := h.uc.InventoryDetail(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.pdf.GenerateInventoryPDF(c.Context(), rows, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}

// Differential godoc
// @Summary      Diferencias pedido vs recibido de una OC
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la OC"
// @Success      200  {array}   dto.DifferentialDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/diferencial/{id} [get]
func (h *ReportHandler) Differential(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	result, err := h.uc.Differential(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// PriceAnomalies godoc
// @Summary      Compras más caras que el mínimo histórico
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PriceAnomalyDTO
// @Router       /api/reportes/anomalias_precio [get]
func (h *ReportHandler) PriceAnomalies(c *fiber.Ctx) error {
	result, err := h.uc.PriceAnomalies(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// CostByVehicle godoc
// @Summary      Gasto en refacciones por vehículo
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VehicleCostDTO
// @Router       /api/reportes/costo_por_vehiculo [get]
func (h *ReportHandler) CostByVehicle(c *fiber.Ctx) error {
	result, err := h.uc.CostByVehicle(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// UsageRanking godoc
// @Summary      Refacciones más usadas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsageRankDTO
// @Router       /api/reportes/mas_usadas [get]
func (h *ReportHandler) UsageRanking(c *fiber.Ctx) error {
	result, err := h.uc.UsageRanking(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// LowStock godoc
// @Summary      Refacciones con bajo inventario
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        minimo  query  int  false  "Umbral (default 5)"
// @Success      200  {array}  dto.InventoryDetailDTO
// @Router       /api/reportes/bajo_inventario [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	minimo := int64(reports.LowStockDefault)
	if q := c.Query("minimo"); q != "" {
		n, err := strconv.ParseInt(q, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minimo inválido"})
		}
		minimo = n
	}
	result, err := h.uc.LowStock(c.Context(), minimo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Consumption godoc
// @Summary      Consumo de una orden de servicio
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden de servicio"
// @Success      200  {array}   dto.ConsumptionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/consumo/{id} [get]
func (h *ReportHandler) Consumption(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	result, err := h.uc.ConsumptionByServiceOrder(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de servicio no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// PurchasesBySupplier godoc
// @Summary      Compras por proveedor
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        proveedor  query  string  true  "Nombre del proveedor"
// @Success      200  {array}  dto.SupplierPurchaseDTO
// @Router       /api/reportes/compras_proveedor [get]
func (h *ReportHandler) PurchasesBySupplier(c *fiber.Ctx) error {
	proveedor := c.Query("proveedor")
	if proveedor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor es requerido"})
	}
	result, err := h.uc.PurchasesBySupplier(c.Context(), proveedor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Dashboard godoc
// @Summary      Resumen general del taller
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	result, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}
