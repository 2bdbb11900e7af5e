package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación de PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste una refacción y asigna su ID.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO refacciones (clave, descripcion, unidad_medida)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		part.Clave, part.Descripcion, part.UnidadMedida,
	).Scan(&part.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create refaccion: %w", err)
	}
	return nil
}

// GetByID obtiene una refacción por ID; nil si no existe.
func (r *PartRepo) GetByID(id int64) (*entity.Part, error) {
	return r.getBy("id = $1", id)
}

// GetByClave obtiene una refacción por clave; nil si no existe.
func (r *PartRepo) GetByClave(clave string) (*entity.Part, error) {
	return r.getBy("clave = $1", clave)
}

// GetByDescripcion busca por descripción exacta; nil si no existe.
func (r *PartRepo) GetByDescripcion(descripcion string) (*entity.Part, error) {
	return r.getBy("descripcion = $1", descripcion)
}

func (r *PartRepo) getBy(where string, arg any) (*entity.Part, error) {
	query := `
		SELECT id, clave, descripcion, unidad_medida
		FROM refacciones WHERE ` + where
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Clave, &p.Descripcion, &p.UnidadMedida,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refaccion: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo completo ordenado por ID.
func (r *PartRepo) List() ([]*entity.Part, error) {
	query := `
		SELECT id, clave, descripcion, unidad_medida
		FROM refacciones ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list refacciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Clave, &p.Descripcion, &p.UnidadMedida); err != nil {
			return nil, fmt.Errorf("scan refaccion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
