package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// IssueRepository define el puerto de persistencia para salidas de refacciones.
// La creación siempre ocurre dentro de la transacción del protocolo de salida.
type IssueRepository interface {
	// CreateHeader persiste el encabezado y asigna su ID.
	CreateHeader(issue *entity.Issue) error
	// CreateLine persiste una partida entregada y asigna su ID.
	CreateLine(line *entity.IssueLine) error
	// ListByServiceOrder devuelve las salidas (con partidas) de una OS.
	ListByServiceOrder(serviceOrderID int64) ([]*entity.Issue, error)
	// List devuelve todas las salidas (con partidas) en orden de inserción.
	List() ([]*entity.Issue, error)
}
