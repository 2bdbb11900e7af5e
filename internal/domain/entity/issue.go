package entity

import "time"

// Issue representa una salida de refacciones contra una orden de servicio.
// Persistir una salida valida existencias, las descuenta y genera movimientos
// de salida en la misma transacción (todo o nada).
type Issue struct {
	ID             int64
	ServiceOrderID int64
	EntregadoPor   string
	RecibidoPor    string
	FechaSalida    time.Time
	Lines          []IssueLine
}

// IssueLine es una partida entregada.
type IssueLine struct {
	ID       int64
	IssueID  int64
	PartID   int64
	Cantidad int64
}
