package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderPendiente = "pendiente"
	PurchaseOrderRecibida  = "recibida"
	PurchaseOrderCerrada   = "cerrada"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Las partidas quedan fijas en la creación; nunca se editan después.
type PurchaseOrder struct {
	ID        int64
	RequestID *int64 // solicitud de refacciones de origen (opcional)
	Proveedor string
	Estado    string
	Factura   string
	FechaOC   time.Time
	Lines     []PurchaseOrderLine
}

// PurchaseOrderLine es una partida de la orden de compra.
// El ID de partida es creciente: la partida más reciente de una refacción
// es la de mayor ID (criterio usado por el costeo por vehículo).
type PurchaseOrderLine struct {
	ID              int64
	PurchaseOrderID int64
	PartID          int64
	Cantidad        int64
	PrecioUnitario  decimal.Decimal
}
