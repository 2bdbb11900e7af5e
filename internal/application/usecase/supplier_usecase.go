package usecase

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// SupplierUseCase operaciones de catálogo para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create da de alta un proveedor activo.
func (uc *SupplierUseCase) Create(_ context.Context, in dto.SupplierRequest) (*entity.Supplier, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Nombre:    in.Nombre,
		RFC:       in.RFC,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Activo:    true,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List(_ context.Context) ([]*entity.Supplier, error) {
	return uc.repo.List()
}
