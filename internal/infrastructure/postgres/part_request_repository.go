package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.PartRequestRepository = (*PartRequestRepo)(nil)

// PartRequestRepo implementación de PartRequestRepository sobre PostgreSQL.
type PartRequestRepo struct {
	q Querier
}

// NewPartRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRequestRepository(q Querier) *PartRequestRepo {
	return &PartRequestRepo{q: q}
}

// Create persiste la solicitud con sus partidas y asigna IDs.
func (r *PartRequestRepo) Create(request *entity.PartRequest) error {
	headerQuery := `
		INSERT INTO solicitudes_refacciones (orden_servicio_id, solicitante, estado, fecha_solicitud)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), headerQuery,
		request.ServiceOrderID, request.Solicitante, request.Estado, request.FechaSolicitud,
	).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("create solicitud: %w", err)
	}

	lineQuery := `
		INSERT INTO solicitudes_detalle (solicitud_id, refaccion_id, cantidad)
		VALUES ($1, $2, $3)
		RETURNING id`
	for i := range request.Lines {
		line := &request.Lines[i]
		err := r.q.QueryRow(context.Background(), lineQuery,
			request.ID, line.PartID, line.Cantidad,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("create partida solicitud: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una solicitud con sus partidas; nil si no existe.
func (r *PartRequestRepo) GetByID(id int64) (*entity.PartRequest, error) {
	query := `
		SELECT id, orden_servicio_id, solicitante, estado, fecha_solicitud
		FROM solicitudes_refacciones WHERE id = $1`
	var req entity.PartRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.ServiceOrderID, &req.Solicitante, &req.Estado, &req.FechaSolicitud,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	lines, err := r.linesFor(req.ID)
	if err != nil {
		return nil, err
	}
	req.Lines = lines
	return &req, nil
}

// List devuelve todas las solicitudes con sus partidas.
func (r *PartRequestRepo) List() ([]*entity.PartRequest, error) {
	query := `
		SELECT id, orden_servicio_id, solicitante, estado, fecha_solicitud
		FROM solicitudes_refacciones ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartRequest
	for rows.Next() {
		var req entity.PartRequest
		if err := rows.Scan(&req.ID, &req.ServiceOrderID, &req.Solicitante,
			&req.Estado, &req.FechaSolicitud); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, req := range list {
		lines, err := r.linesFor(req.ID)
		if err != nil {
			return nil, err
		}
		req.Lines = lines
	}
	return list, nil
}

func (r *PartRequestRepo) linesFor(requestID int64) ([]entity.PartRequestLine, error) {
	query := `
		SELECT id, refaccion_id, cantidad
		FROM solicitudes_detalle
		WHERE solicitud_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list partidas solicitud: %w", err)
	}
	defer rows.Close()
	var lines []entity.PartRequestLine
	for rows.Next() {
		var l entity.PartRequestLine
		if err := rows.Scan(&l.ID, &l.PartID, &l.Cantidad); err != nil {
			return nil, fmt.Errorf("scan partida solicitud: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
