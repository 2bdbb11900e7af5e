package entity

import "time"

// Estados de una solicitud de refacciones.
const (
	PartRequestPendiente = "pendiente"
	PartRequestAprobada  = "aprobada"
	PartRequestRechazada = "rechazada"
)

// PartRequest representa una solicitud de refacciones ligada a una orden de servicio.
type PartRequest struct {
	ID             int64
	ServiceOrderID int64
	Solicitante    string
	Estado         string
	FechaSolicitud time.Time
	Lines          []PartRequestLine
}

// PartRequestLine es una partida de la solicitud.
type PartRequestLine struct {
	ID       int64
	PartID   int64
	Cantidad int64
}
