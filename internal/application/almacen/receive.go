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

// ReceiveUseCase registra recepciones de mercancía contra una orden de compra.
// Por cada partida: persiste el detalle, suma existencia (con bloqueo de fila)
// y agrega un movimiento de entrada al kardex, todo en una sola transacción.
type ReceiveUseCase struct {
	txRunner          TxRunner
	purchaseOrderRepo repository.PurchaseOrderRepository
	partRepo          repository.PartRepository
}

// NewReceiveUseCase construye el caso de uso.
func NewReceiveUseCase(
	txRunner TxRunner,
	purchaseOrderRepo repository.PurchaseOrderRepository,
	partRepo repository.PartRepository,
) *ReceiveUseCase {
	return &ReceiveUseCase{
		txRunner:          txRunner,
		purchaseOrderRepo: purchaseOrderRepo,
		partRepo:          partRepo,
	}
}

// ReceiveLineInput es una partida a recibir. CantidadOC se copia tal cual
// para el reporte de diferencias; no se valida contra lo recibido (recibir
// de más está permitido y se detecta después en el diferencial).
type ReceiveLineInput struct {
	PartID           int64
	CantidadRecibida int64
	CantidadOC       int64
}

// ReceiveInput entrada para registrar una recepción.
type ReceiveInput struct {
	PurchaseOrderID int64
	RecibidoPor     string
	Lines           []ReceiveLineInput
}

// Receive valida la entrada sin tocar estado y después ejecuta el posteo
// completo dentro de una transacción. Cualquier fallo revierte la recepción
// entera: nunca queda una recepción parcial observable.
func (uc *ReceiveUseCase) Receive(ctx context.Context, input ReceiveInput) (*entity.Receipt, error) {
	if input.RecibidoPor == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range input.Lines {
		if line.CantidadRecibida <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	oc, err := uc.purchaseOrderRepo.GetByID(input.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if oc == nil {
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
	receipt := &entity.Receipt{
		PurchaseOrderID: input.PurchaseOrderID,
		RecibidoPor:     input.RecibidoPor,
		FechaRecepcion:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.IssueRepository,
	) error {
		if err := receiptRepo.CreateHeader(receipt); err != nil {
			return err
		}
		for _, in := range input.Lines {
			line := &entity.ReceiptLine{
				ReceiptID:        receipt.ID,
				PartID:           in.PartID,
				CantidadRecibida: in.CantidadRecibida,
				CantidadOC:       in.CantidadOC,
			}
			if err := receiptRepo.CreateLine(line); err != nil {
				return err
			}
			receipt.Lines = append(receipt.Lines, *line)

			// Bloquea la fila de existencias para serializar posteos
			// concurrentes sobre la misma refacción.
			stock, err := stockRepo.GetForUpdate(in.PartID)
			if err != nil {
				return err
			}
			stock.Existencia += in.CantidadRecibida
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}

			mov := &entity.Movement{
				TransactionID: txID,
				PartID:        in.PartID,
				Tipo:          entity.MovementTypeEntrada,
				Cantidad:      in.CantidadRecibida,
				Referencia:    fmt.Sprintf("Recepción OC %d", input.PurchaseOrderID),
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
	return receipt, nil
}
