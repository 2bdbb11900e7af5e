package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryDetailDTO un renglón del reporte de inventario.
type InventoryDetailDTO struct {
	RefaccionID  int64  `json:"refaccion_id"`
	Clave        string `json:"clave"`
	Descripcion  string `json:"descripcion"`
	UnidadMedida string `json:"unidad_medida"`
	Existencia   int64  `json:"existencia"`
}

// DifferentialDTO diferencia pedido-vs-recibido de una partida de OC.
type DifferentialDTO struct {
	RefaccionID int64  `json:"refaccion_id"`
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion"`
	CantidadOC  int64  `json:"cantidad_oc"`
	Recibido    int64  `json:"recibido"`
	Diferencia  int64  `json:"diferencia"`
}

// PriceAnomalyDTO partida de compra más cara que el mínimo histórico de su refacción.
type PriceAnomalyDTO struct {
	RefaccionID        int64           `json:"refaccion_id"`
	Clave              string          `json:"clave"`
	Descripcion        string          `json:"descripcion"`
	PrecioHistoricoMin decimal.Decimal `json:"precio_historico_min"`
	PrecioActual       decimal.Decimal `json:"precio_actual"`
	Diferencia         decimal.Decimal `json:"diferencia"`
	Porcentaje         decimal.Decimal `json:"porcentaje"`
	Mensaje            string          `json:"mensaje"`
}

// VehicleCostDTO gasto acumulado en refacciones de un vehículo.
type VehicleCostDTO struct {
	VehiculoID   int64           `json:"vehiculo_id"`
	Placas       string          `json:"placas"`
	Marca        string          `json:"marca"`
	Modelo       string          `json:"modelo"`
	TotalGastado decimal.Decimal `json:"total_gastado"`
}

// UsageRankDTO refacción con su total entregado.
type UsageRankDTO struct {
	RefaccionID int64  `json:"refaccion_id"`
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion"`
	TotalUsado  int64  `json:"total_usado"`
}

// ConsumptionDTO consumo de una orden de servicio.
type ConsumptionDTO struct {
	RefaccionID  int64     `json:"refaccion_id"`
	Clave        string    `json:"clave"`
	Descripcion  string    `json:"descripcion"`
	Cantidad     int64     `json:"cantidad"`
	FechaSalida  time.Time `json:"fecha_salida"`
	EntregadoPor string    `json:"entregado_por"`
	RecibidoPor  string    `json:"recibido_por"`
}

// SupplierPurchaseDTO resumen de una OC para el reporte por proveedor.
type SupplierPurchaseDTO struct {
	OCID   int64           `json:"oc_id"`
	Fecha  time.Time       `json:"fecha"`
	Estado string          `json:"estado"`
	Total  decimal.Decimal `json:"total"`
}

// DashboardDTO resumen general del taller.
type DashboardDTO struct {
	OrdenesAbiertas           int64             `json:"ordenes_abiertas"`
	InventarioTotal           int64             `json:"inventario_total"`
	RefaccionesBajoInventario int               `json:"refacciones_bajo_inventario"`
	TopRefaccionesUsadas      []UsageRankDTO    `json:"top_refacciones_usadas"`
	AlertasCompraCara         []PriceAnomalyDTO `json:"alertas_compra_cara"`
	GastoPorVehiculo          []VehicleCostDTO  `json:"gasto_por_vehiculo"`
}
