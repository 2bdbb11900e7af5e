package entity

import "time"

// Receipt representa una recepción de mercancía contra una orden de compra.
// Persistir una recepción incrementa existencias y genera movimientos de
// entrada en la misma transacción (nunca efectos parciales).
type Receipt struct {
	ID              int64
	PurchaseOrderID int64
	RecibidoPor     string
	FechaRecepcion  time.Time
	Lines           []ReceiptLine
}

// ReceiptLine es una partida recibida. CantidadOC es la cantidad pedida,
// copiada para el cálculo de diferencias pedido-vs-recibido.
type ReceiptLine struct {
	ID               int64
	ReceiptID        int64
	PartID           int64
	CantidadRecibida int64
	CantidadOC       int64
}
