package almacen

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/kardex"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// KardexUseCase consultas de solo lectura sobre el libro de movimientos
// y la existencia materializada.
type KardexUseCase struct {
	movRepo   repository.MovementRepository
	stockRepo repository.StockRepository
	partRepo  repository.PartRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	partRepo repository.PartRepository,
) *KardexUseCase {
	return &KardexUseCase{movRepo: movRepo, stockRepo: stockRepo, partRepo: partRepo}
}

// History devuelve los movimientos de una refacción en orden de kardex.
func (uc *KardexUseCase) History(_ context.Context, partID int64) ([]*entity.Movement, error) {
	if err := uc.requirePart(partID); err != nil {
		return nil, err
	}
	return uc.movRepo.ListByPart(partID)
}

// RunningBalance devuelve los movimientos con su saldo corrido. El saldo de
// la última entrada coincide con la existencia materializada (invariante
// verificado por los tests del ledger).
func (uc *KardexUseCase) RunningBalance(_ context.Context, partID int64) ([]kardex.Entry, error) {
	if err := uc.requirePart(partID); err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.ListByPart(partID)
	if err != nil {
		return nil, err
	}
	return kardex.RunningBalance(movs), nil
}

// GetBalance devuelve la existencia actual; cero si no hay fila todavía.
func (uc *KardexUseCase) GetBalance(_ context.Context, partID int64) (int64, error) {
	if err := uc.requirePart(partID); err != nil {
		return 0, err
	}
	stock, err := uc.stockRepo.Get(partID)
	if err != nil {
		return 0, err
	}
	return stock.Existencia, nil
}

func (uc *KardexUseCase) requirePart(partID int64) error {
	part, err := uc.partRepo.GetByID(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return nil
}
