package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// PartRequestUseCase operaciones sobre solicitudes de refacciones.
type PartRequestUseCase struct {
	repo             repository.PartRequestRepository
	serviceOrderRepo repository.ServiceOrderRepository
	partRepo         repository.PartRepository
}

// NewPartRequestUseCase construye el caso de uso.
func NewPartRequestUseCase(
	repo repository.PartRequestRepository,
	serviceOrderRepo repository.ServiceOrderRepository,
	partRepo repository.PartRepository,
) *PartRequestUseCase {
	return &PartRequestUseCase{repo: repo, serviceOrderRepo: serviceOrderRepo, partRepo: partRepo}
}

// Create registra una solicitud con sus partidas contra una OS existente.
func (uc *PartRequestUseCase) Create(_ context.Context, in dto.PartRequestRequest) (*entity.PartRequest, error) {
	if in.Solicitante == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	os, err := uc.serviceOrderRepo.GetByID(in.OrdenServicioID)
	if err != nil {
		return nil, err
	}
	if os == nil {
		return nil, domain.ErrNotFound
	}
	request := &entity.PartRequest{
		ServiceOrderID: in.OrdenServicioID,
		Solicitante:    in.Solicitante,
		Estado:         entity.PartRequestPendiente,
		FechaSolicitud: time.Now(),
	}
	for _, det := range in.Detalles {
		if det.Cantidad <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		part, err := uc.partRepo.GetByID(det.RefaccionID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		request.Lines = append(request.Lines, entity.PartRequestLine{
			PartID:   det.RefaccionID,
			Cantidad: det.Cantidad,
		})
	}
	if err := uc.repo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List devuelve todas las solicitudes.
func (uc *PartRequestUseCase) List(_ context.Context) ([]*entity.PartRequest, error) {
	return uc.repo.List()
}
