package usecase

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// VehicleUseCase operaciones de catálogo para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create da de alta un vehículo. Placas y marca/modelo son obligatorios.
func (uc *VehicleUseCase) Create(_ context.Context, in dto.VehicleRequest) (*entity.Vehicle, error) {
	if in.Placas == "" || in.Marca == "" || in.Modelo == "" {
		return nil, domain.ErrInvalidInput
	}
	veh := &entity.Vehicle{
		NumeroEconomico: in.NumeroEconomico,
		Tipo:            in.Tipo,
		Placas:          in.Placas,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Anio:            in.Anio,
		NumeroSerie:     in.NumeroSerie,
		AreaAsignada:    in.AreaAsignada,
	}
	if err := uc.repo.Create(veh); err != nil {
		return nil, err
	}
	return veh, nil
}

// GetByID devuelve un vehículo o ErrNotFound.
func (uc *VehicleUseCase) GetByID(_ context.Context, id int64) (*entity.Vehicle, error) {
	veh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if veh == nil {
		return nil, domain.ErrNotFound
	}
	return veh, nil
}

// List devuelve todos los vehículos.
func (uc *VehicleUseCase) List(_ context.Context) ([]*entity.Vehicle, error) {
	return uc.repo.List()
}
