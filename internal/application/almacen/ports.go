package almacen

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de cada posteo:
// si fn devuelve error, nada de lo hecho por los repos queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		receiptRepo repository.ReceiptRepository,
		issueRepo repository.IssueRepository,
	) error) error
}
