package dto

import "time"

// ReceiveLineRequest partida de una recepción.
type ReceiveLineRequest struct {
	RefaccionID      int64 `json:"refaccion_id"`
	CantidadRecibida int64 `json:"cantidad_recibida"`
	CantidadOC       int64 `json:"cantidad_oc"`
}

// ReceiveRequest body para POST /api/recepciones.
type ReceiveRequest struct {
	OCID        int64                `json:"oc_id"`
	RecibidoPor string               `json:"recibido_por"`
	Detalles    []ReceiveLineRequest `json:"detalles"`
}

// IssueLineRequest partida de una salida.
type IssueLineRequest struct {
	RefaccionID int64 `json:"refaccion_id"`
	Cantidad    int64 `json:"cantidad"`
}

// IssueRequest body para POST /api/salidas.
type IssueRequest struct {
	OrdenServicioID int64              `json:"orden_servicio_id"`
	EntregadoPor    string             `json:"entregado_por"`
	RecibidoPor     string             `json:"recibido_por"`
	Detalles        []IssueLineRequest `json:"detalles"`
}

// KardexEntryDTO un renglón del kardex con saldo corrido.
type KardexEntryDTO struct {
	ID          int64     `json:"id"`
	RefaccionID int64     `json:"refaccion_id"`
	Tipo        string    `json:"tipo"`
	Cantidad    int64     `json:"cantidad"`
	Saldo       int64     `json:"saldo"`
	Referencia  string    `json:"referencia"`
	Fecha       time.Time `json:"fecha"`
}

// StockDTO existencia actual de una refacción.
type StockDTO struct {
	RefaccionID int64 `json:"refaccion_id"`
	Existencia  int64 `json:"existencia"`
}
