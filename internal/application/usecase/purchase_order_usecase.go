package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// PurchaseOrderUseCase operaciones sobre órdenes de compra. Las partidas
// quedan fijas en la creación; toda modificación posterior del surtido pasa
// por el protocolo de recepción, nunca por la OC.
type PurchaseOrderUseCase struct {
	repo     repository.PurchaseOrderRepository
	partRepo repository.PartRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	partRepo repository.PartRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, partRepo: partRepo}
}

// Create registra la OC con sus partidas.
func (uc *PurchaseOrderUseCase) Create(_ context.Context, in dto.PurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if in.Proveedor == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.PurchaseOrder{
		RequestID: in.SolicitudID,
		Proveedor: in.Proveedor,
		Estado:    entity.PurchaseOrderPendiente,
		Factura:   in.Factura,
		FechaOC:   time.Now(),
	}
	for _, det := range in.Detalles {
		if det.Cantidad <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if det.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		part, err := uc.partRepo.GetByID(det.RefaccionID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		order.Lines = append(order.Lines, entity.PurchaseOrderLine{
			PartID:         det.RefaccionID,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
		})
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID devuelve una OC (con partidas) o ErrNotFound.
func (uc *PurchaseOrderUseCase) GetByID(_ context.Context, id int64) (*entity.PurchaseOrder, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve todas las órdenes de compra.
func (uc *PurchaseOrderUseCase) List(_ context.Context) ([]*entity.PurchaseOrder, error) {
	return uc.repo.List()
}
