package usecase

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// PartUseCase operaciones de catálogo para refacciones.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create da de alta una refacción. La clave es única; repetirla es ErrDuplicate.
func (uc *PartUseCase) Create(_ context.Context, in dto.PartRequestBody) (*entity.Part, error) {
	if in.Clave == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByClave(in.Clave)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unidad := in.UnidadMedida
	if unidad == "" {
		unidad = "pieza"
	}
	part := &entity.Part{
		Clave:        in.Clave,
		Descripcion:  in.Descripcion,
		UnidadMedida: unidad,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return part, nil
}

// GetByID devuelve una refacción o ErrNotFound.
func (uc *PartUseCase) GetByID(_ context.Context, id int64) (*entity.Part, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// List devuelve el catálogo completo de refacciones.
func (uc *PartUseCase) List(_ context.Context) ([]*entity.Part, error) {
	return uc.repo.List()
}
