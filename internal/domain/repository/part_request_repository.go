package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// PartRequestRepository define el puerto de persistencia para solicitudes de refacciones.
type PartRequestRepository interface {
	// Create persiste la solicitud con sus partidas y asigna IDs.
	Create(request *entity.PartRequest) error
	GetByID(id int64) (*entity.PartRequest, error)
	List() ([]*entity.PartRequest, error)
}
