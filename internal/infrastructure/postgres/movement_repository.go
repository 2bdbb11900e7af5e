package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de inventario y asigna su ID.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos_inventario (transaction_id, refaccion_id, tipo, cantidad, referencia, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.TransactionID, movement.PartID, movement.Tipo,
		movement.Cantidad, movement.Referencia, movement.Fecha,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByPart devuelve los movimientos de una refacción en orden de kardex
// (fecha asc, id asc como desempate de inserción).
func (r *MovementRepo) ListByPart(partID int64) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, refaccion_id, tipo, cantidad, referencia, fecha
		FROM movimientos_inventario
		WHERE refaccion_id = $1
		ORDER BY fecha ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, partID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.PartID, &m.Tipo,
			&m.Cantidad, &m.Referencia, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
