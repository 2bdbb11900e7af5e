package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual de una refacción; una entrada en cero si no hay fila.
func (r *StockRepo) Get(partID int64) (*entity.StockEntry, error) {
	query := `
		SELECT refaccion_id, existencia, updated_at
		FROM inventario WHERE refaccion_id = $1`
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, partID).Scan(
		&s.PartID, &s.Existencia, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{PartID: partID}, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE)
// para serializar posteos concurrentes sobre la misma refacción.
func (r *StockRepo) GetForUpdate(partID int64) (*entity.StockEntry, error) {
	query := `
		SELECT refaccion_id, existencia, updated_at
		FROM inventario WHERE refaccion_id = $1
		FOR UPDATE`
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, partID).Scan(
		&s.PartID, &s.Existencia, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{PartID: partID}, nil
		}
		return nil, fmt.Errorf("get inventario for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la existencia de una refacción.
func (r *StockRepo) Upsert(stock *entity.StockEntry) error {
	query := `
		INSERT INTO inventario (refaccion_id, existencia, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (refaccion_id)
		DO UPDATE SET existencia = EXCLUDED.existencia, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.PartID, stock.Existencia)
	if err != nil {
		return fmt.Errorf("upsert inventario: %w", err)
	}
	return nil
}

// List devuelve todas las existencias ordenadas por refacción.
func (r *StockRepo) List() ([]*entity.StockEntry, error) {
	query := `
		SELECT refaccion_id, existencia, updated_at
		FROM inventario ORDER BY refaccion_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.PartID, &s.Existencia, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
