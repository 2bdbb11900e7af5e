package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// ServiceOrderUseCase operaciones sobre órdenes de servicio.
type ServiceOrderUseCase struct {
	repo        repository.ServiceOrderRepository
	vehicleRepo repository.VehicleRepository
}

// NewServiceOrderUseCase construye el caso de uso.
func NewServiceOrderUseCase(
	repo repository.ServiceOrderRepository,
	vehicleRepo repository.VehicleRepository,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, vehicleRepo: vehicleRepo}
}

// Create abre una orden de servicio en estado pendiente para un vehículo existente.
func (uc *ServiceOrderUseCase) Create(_ context.Context, in dto.ServiceOrderRequest) (*entity.ServiceOrder, error) {
	veh, err := uc.vehicleRepo.GetByID(in.VehiculoID)
	if err != nil {
		return nil, err
	}
	if veh == nil {
		return nil, domain.ErrNotFound
	}
	order := &entity.ServiceOrder{
		VehicleID:       in.VehiculoID,
		Diagnostico:     in.Diagnostico,
		Estado:          entity.ServiceOrderPendiente,
		TecnicoAsignado: in.TecnicoAsignado,
		FechaCreacion:   time.Now(),
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID devuelve una orden de servicio o ErrNotFound.
func (uc *ServiceOrderUseCase) GetByID(_ context.Context, id int64) (*entity.ServiceOrder, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve todas las órdenes de servicio.
func (uc *ServiceOrderUseCase) List(_ context.Context) ([]*entity.ServiceOrder, error) {
	return uc.repo.List()
}
