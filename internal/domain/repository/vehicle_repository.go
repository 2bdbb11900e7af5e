package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para vehículos.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id int64) (*entity.Vehicle, error)
	List() ([]*entity.Vehicle, error)
}
