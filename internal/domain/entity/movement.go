package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
)

// Movement representa un movimiento de inventario (kardex), inmutable y append-only.
// TransactionID agrupa todos los movimientos generados por una misma recepción o salida.
// El orden del kardex es por Fecha ascendente con desempate por ID de inserción.
type Movement struct {
	ID            int64
	TransactionID string
	PartID        int64
	Tipo          string // entrada | salida
	Cantidad      int64  // siempre positiva; el signo lo da el tipo
	Referencia    string // "Recepción OC 12", "Salida OS 5"
	Fecha         time.Time
}
