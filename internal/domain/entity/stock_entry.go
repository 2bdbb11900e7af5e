package entity

import "time"

// StockEntry representa la existencia actual de una refacción (una fila por refacción).
// Se crea de forma perezosa con el primer movimiento; la cantidad nunca es negativa.
// Es una proyección materializada del log de movimientos (kardex).
type StockEntry struct {
	PartID     int64
	Existencia int64
	UpdatedAt  time.Time
}
