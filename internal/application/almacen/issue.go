package almacen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// IssueUseCase registra salidas de refacciones contra una orden de servicio.
// Por cada partida: verifica existencia suficiente (con bloqueo de fila),
// descuenta, persiste el detalle y agrega un movimiento de salida al kardex.
// Si una sola partida no alcanza, la salida completa se rechaza.
type IssueUseCase struct {
	txRunner         TxRunner
	serviceOrderRepo repository.ServiceOrderRepository
	partRepo         repository.PartRepository
}

// NewIssueUseCase construye el caso de uso.
func NewIssueUseCase(
	txRunner TxRunner,
	serviceOrderRepo repository.ServiceOrderRepository,
	partRepo repository.PartRepository,
) *IssueUseCase {
	return &IssueUseCase{
		txRunner:         txRunner,
		serviceOrderRepo: serviceOrderRepo,
		partRepo:         partRepo,
	}
}

// IssueLineInput es una partida a entregar.
type IssueLineInput struct {
	PartID   int64
	Cantidad int64
}

// IssueInput entrada para registrar una salida.
type IssueInput struct {
	ServiceOrderID int64
	EntregadoPor   string
	RecibidoPor    string
	Lines          []IssueLineInput
}

// Issue valida la entrada y ejecuta el posteo dentro de una transacción.
// ErrInsufficientStock en cualquier partida aborta el lote entero sin
// confirmar ninguna mutación (tampoco las partidas ya procesadas).
func (uc *IssueUseCase) Issue(ctx context.Context, input IssueInput) (*entity.Issue, error) {
	if input.EntregadoPor == "" || input.RecibidoPor == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range input.Lines {
		if line.Cantidad <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	os, err := uc.serviceOrderRepo.GetByID(input.ServiceOrderID)
	if err != nil {
		return nil, err
	}
	if os == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range input.Lines {
		part, err := uc.partRepo.GetByID(line.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	txID := uuid.New().String()
	issue := &entity.Issue{
		ServiceOrderID: input.ServiceOrderID,
		EntregadoPor:   input.EntregadoPor,
		RecibidoPor:    input.RecibidoPor,
		FechaSalida:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		_ repository.ReceiptRepository,
		issueRepo repository.IssueRepository,
	) error {
		if err := issueRepo.CreateHeader(issue); err != nil {
			return err
		}
		for _, in := range input.Lines {
			stock, err := stockRepo.GetForUpdate(in.PartID)
			if err != nil {
				return err
			}
			if stock.Existencia < in.Cantidad {
				return domain.ErrInsufficientStock
			}
			stock.Existencia -= in.Cantidad
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}

			line := &entity.IssueLine{
				IssueID:  issue.ID,
				PartID:   in.PartID,
				Cantidad: in.Cantidad,
			}
			if err := issueRepo.CreateLine(line); err != nil {
				return err
			}
			issue.Lines = append(issue.Lines, *line)

			mov := &entity.Movement{
				TransactionID: txID,
				PartID:        in.PartID,
				Tipo:          entity.MovementTypeSalida,
				Cantidad:      in.Cantidad,
				Referencia:    fmt.Sprintf("Salida OS %d", input.ServiceOrderID),
				Fecha:         now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}
