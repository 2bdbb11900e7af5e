// Package ingest normaliza documentos de órdenes de compra (JSON, texto
// plano extraído de PDF, XML) a una lista de partidas {descripción,
// cantidad, precio_unitario} y las importa creando refacciones por
// coincidencia exacta de descripción cuando no existen.
package ingest

import "github.com/shopspring/decimal"

// DocumentLine partida normalizada de un documento externo.
type DocumentLine struct {
	Clave          string          `json:"clave,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Unidad         string          `json:"unidad,omitempty"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// Document orden de compra normalizada, lista para importar.
type Document struct {
	Proveedor string         `json:"proveedor"`
	Factura   string         `json:"factura,omitempty"`
	NumeroOC  string         `json:"numero_oc,omitempty"`
	Detalles  []DocumentLine `json:"detalles"`
}
