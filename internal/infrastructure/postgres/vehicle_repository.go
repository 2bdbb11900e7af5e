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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un vehículo y asigna su ID. Placas duplicadas son ErrDuplicate.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehiculos (numero_economico, tipo, placas, marca, modelo, anio, numero_serie, area_asignada)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		vehicle.NumeroEconomico, vehicle.Tipo, vehicle.Placas, vehicle.Marca,
		vehicle.Modelo, vehicle.Anio, vehicle.NumeroSerie, vehicle.AreaAsignada,
	).Scan(&vehicle.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID; nil si no existe.
func (r *VehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	query := `
		SELECT id, numero_economico, tipo, placas, marca, modelo, anio, numero_serie, area_asignada
		FROM vehiculos WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.NumeroEconomico, &v.Tipo, &v.Placas, &v.Marca,
		&v.Modelo, &v.Anio, &v.NumeroSerie, &v.AreaAsignada,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return &v, nil
}

// List devuelve todos los vehículos ordenados por ID.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	query := `
		SELECT id, numero_economico, tipo, placas, marca, modelo, anio, numero_serie, area_asignada
		FROM vehiculos ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.NumeroEconomico, &v.Tipo, &v.Placas, &v.Marca,
			&v.Modelo, &v.Anio, &v.NumeroSerie, &v.AreaAsignada); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
