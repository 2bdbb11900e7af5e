package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	// Create persiste la orden con sus partidas fijas y asigna IDs.
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	ListBySupplier(proveedor string) ([]*entity.PurchaseOrder, error)
	// ListAllLines devuelve todas las partidas de compra en orden de inserción
	// (id ascendente). Lo usa la detección de anomalías de precio.
	ListAllLines() ([]*entity.PurchaseOrderLine, error)
	// LatestLineByPart devuelve la partida de compra más reciente (mayor id)
	// para una refacción, o nil si nunca se ha comprado.
	LatestLineByPart(partID int64) (*entity.PurchaseOrderLine, error)
}
