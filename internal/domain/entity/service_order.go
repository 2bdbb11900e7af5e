package entity

import "time"

// Estados de una orden de servicio.
const (
	ServiceOrderPendiente            = "pendiente"
	ServiceOrderEnProceso            = "en_proceso"
	ServiceOrderEsperandoRefacciones = "esperando_refacciones"
	ServiceOrderFinalizado           = "finalizado"
)

// ServiceOrder representa una orden de servicio (trabajo de mantenimiento sobre un vehículo).
type ServiceOrder struct {
	ID              int64
	VehicleID       int64
	Diagnostico     string
	Estado          string
	TecnicoAsignado string
	FechaCreacion   time.Time
}
