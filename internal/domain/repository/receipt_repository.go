package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para recepciones.
// La creación siempre ocurre dentro de la transacción del protocolo de recepción.
type ReceiptRepository interface {
	// CreateHeader persiste el encabezado y asigna su ID.
	CreateHeader(receipt *entity.Receipt) error
	// CreateLine persiste una partida recibida y asigna su ID.
	CreateLine(line *entity.ReceiptLine) error
	// ListByPurchaseOrder devuelve las recepciones (con partidas) de una OC.
	ListByPurchaseOrder(purchaseOrderID int64) ([]*entity.Receipt, error)
	List() ([]*entity.Receipt, error)
}
