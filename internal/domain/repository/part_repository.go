package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para refacciones (DIP).
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id int64) (*entity.Part, error)
	GetByClave(clave string) (*entity.Part, error)
	// GetByDescripcion busca por descripción exacta (usado por la importación
	// de órdenes de compra; sin coincidencia difusa).
	GetByDescripcion(descripcion string) (*entity.Part, error)
	List() ([]*entity.Part, error)
}
