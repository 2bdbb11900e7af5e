package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL.
// Se usa siempre con el Querier de la transacción del protocolo de recepción.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// CreateHeader persiste el encabezado de la recepción y asigna su ID.
func (r *ReceiptRepo) CreateHeader(receipt *entity.Receipt) error {
	query := `
		INSERT INTO recepciones (orden_compra_id, recibido_por, fecha_recepcion)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		receipt.PurchaseOrderID, receipt.RecibidoPor, receipt.FechaRecepcion,
	).Scan(&receipt.ID)
	if err != nil {
		return fmt.Errorf("create recepcion: %w", err)
	}
	return nil
}

// CreateLine persiste una partida recibida y asigna su ID.
func (r *ReceiptRepo) CreateLine(line *entity.ReceiptLine) error {
	query := `
		INSERT INTO recepciones_detalle (recepcion_id, refaccion_id, cantidad_recibida, cantidad_oc)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.ReceiptID, line.PartID, line.CantidadRecibida, line.CantidadOC,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("create partida recepcion: %w", err)
	}
	return nil
}

// ListByPurchaseOrder devuelve las recepciones (con partidas) de una OC.
func (r *ReceiptRepo) ListByPurchaseOrder(purchaseOrderID int64) ([]*entity.Receipt, error) {
	return r.listWhere("WHERE orden_compra_id = $1", []any{purchaseOrderID})
}

// List devuelve todas las recepciones con sus partidas.
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	return r.listWhere("", nil)
}

func (r *ReceiptRepo) listWhere(where string, args []any) ([]*entity.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT id, orden_compra_id, recibido_por, fecha_recepcion
		FROM recepciones %s ORDER BY id`, where)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recepciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.PurchaseOrderID, &rec.RecibidoPor,
			&rec.FechaRecepcion); err != nil {
			return nil, fmt.Errorf("scan recepcion: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range list {
		lines, err := r.linesFor(rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Lines = lines
	}
	return list, nil
}

func (r *ReceiptRepo) linesFor(receiptID int64) ([]entity.ReceiptLine, error) {
	query := `
		SELECT id, recepcion_id, refaccion_id, cantidad_recibida, cantidad_oc
		FROM recepciones_detalle
		WHERE recepcion_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list partidas recepcion: %w", err)
	}
	defer rows.Close()
	var lines []entity.ReceiptLine
	for rows.Next() {
		var l entity.ReceiptLine
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.PartID,
			&l.CantidadRecibida, &l.CantidadOC); err != nil {
			return nil, fmt.Errorf("scan partida recepcion: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
