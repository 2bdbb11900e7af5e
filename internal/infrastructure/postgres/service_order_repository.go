package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

// ServiceOrderRepo implementación de ServiceOrderRepository sobre PostgreSQL.
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

// Create persiste una orden de servicio y asigna su ID.
func (r *ServiceOrderRepo) Create(order *entity.ServiceOrder) error {
	query := `
		INSERT INTO ordenes_servicio (vehiculo_id, diagnostico, estado, tecnico_asignado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.VehicleID, order.Diagnostico, order.Estado,
		order.TecnicoAsignado, order.FechaCreacion,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("create orden servicio: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de servicio por ID; nil si no existe.
func (r *ServiceOrderRepo) GetByID(id int64) (*entity.ServiceOrder, error) {
	query := `
		SELECT id, vehiculo_id, diagnostico, estado, tecnico_asignado, fecha_creacion
		FROM ordenes_servicio WHERE id = $1`
	var o entity.ServiceOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.VehicleID, &o.Diagnostico, &o.Estado, &o.TecnicoAsignado, &o.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden servicio: %w", err)
	}
	return &o, nil
}

// List devuelve todas las órdenes de servicio ordenadas por ID.
func (r *ServiceOrderRepo) List() ([]*entity.ServiceOrder, error) {
	query := `
		SELECT id, vehiculo_id, diagnostico, estado, tecnico_asignado, fecha_creacion
		FROM ordenes_servicio ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ordenes servicio: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceOrder
	for rows.Next() {
		var o entity.ServiceOrder
		if err := rows.Scan(&o.ID, &o.VehicleID, &o.Diagnostico, &o.Estado,
			&o.TecnicoAsignado, &o.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan orden servicio: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CountOpen cuenta las órdenes cuyo estado no es "finalizado".
func (r *ServiceOrderRepo) CountOpen() (int64, error) {
	query := `SELECT COUNT(*) FROM ordenes_servicio WHERE estado <> $1`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, entity.ServiceOrderFinalizado).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ordenes abiertas: %w", err)
	}
	return count, nil
}
