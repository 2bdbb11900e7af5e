package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// ServiceOrderRepository define el puerto de persistencia para órdenes de servicio.
type ServiceOrderRepository interface {
	Create(order *entity.ServiceOrder) error
	GetByID(id int64) (*entity.ServiceOrder, error)
	List() ([]*entity.ServiceOrder, error)
	// CountOpen cuenta las órdenes cuyo estado no es "finalizado".
	CountOpen() (int64, error)
}
