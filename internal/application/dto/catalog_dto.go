package dto

import "github.com/shopspring/decimal"

// VehicleRequest body para POST /api/vehiculos.
type VehicleRequest struct {
	NumeroEconomico string `json:"numero_economico"`
	Tipo            string `json:"tipo"`
	Placas          string `json:"placas"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	Anio            int    `json:"anio"`
	NumeroSerie     string `json:"numero_serie,omitempty"`
	AreaAsignada    string `json:"area_asignada,omitempty"`
}

// PartRequestBody body para POST /api/refacciones.
type PartRequestBody struct {
	Clave        string `json:"clave"`
	Descripcion  string `json:"descripcion"`
	UnidadMedida string `json:"unidad_medida,omitempty"`
}

// ServiceOrderRequest body para POST /api/ordenes_servicio.
type ServiceOrderRequest struct {
	VehiculoID      int64  `json:"vehiculo_id"`
	Diagnostico     string `json:"diagnostico,omitempty"`
	TecnicoAsignado string `json:"tecnico_asignado,omitempty"`
}

// PartRequestLineRequest partida de una solicitud de refacciones.
type PartRequestLineRequest struct {
	RefaccionID int64 `json:"refaccion_id"`
	Cantidad    int64 `json:"cantidad"`
}

// PartRequestRequest body para POST /api/solicitudes.
type PartRequestRequest struct {
	OrdenServicioID int64                    `json:"orden_servicio_id"`
	Solicitante     string                   `json:"solicitante"`
	Detalles        []PartRequestLineRequest `json:"detalles"`
}

// PurchaseOrderLineRequest partida de una orden de compra.
type PurchaseOrderLineRequest struct {
	RefaccionID    int64           `json:"refaccion_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// PurchaseOrderRequest body para POST /api/ordenes_compra.
type PurchaseOrderRequest struct {
	SolicitudID *int64                     `json:"solicitud_id,omitempty"`
	Proveedor   string                     `json:"proveedor"`
	Factura     string                     `json:"factura,omitempty"`
	Detalles    []PurchaseOrderLineRequest `json:"detalles"`
}

// SupplierRequest body para POST /api/proveedores.
type SupplierRequest struct {
	Nombre    string `json:"nombre"`
	RFC       string `json:"rfc,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ImportRequest body para POST /api/ordenes_compra/importar.
// Tipo: "json" | "texto" | "xml". Contenido lleva el documento tal cual.
type ImportRequest struct {
	Tipo      string `json:"tipo"`
	Contenido string `json:"contenido"`
}
