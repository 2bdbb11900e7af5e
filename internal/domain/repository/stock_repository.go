package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para existencias.
// Solo los protocolos de recepción y salida escriben aquí.
type StockRepository interface {
	// Get devuelve la existencia actual; una entrada en cero si la refacción
	// aún no tiene fila.
	Get(partID int64) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// posteos concurrentes sobre la misma refacción.
	GetForUpdate(partID int64) (*entity.StockEntry, error)
	Upsert(stock *entity.StockEntry) error
	// List devuelve todas las existencias ordenadas por refacción.
	List() ([]*entity.StockEntry, error)
}
