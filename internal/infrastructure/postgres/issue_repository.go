package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo implementación de IssueRepository sobre PostgreSQL.
// Se usa siempre con el Querier de la transacción del protocolo de salida.
type IssueRepo struct {
	q Querier
}

// NewIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

// CreateHeader persiste el encabezado de la salida y asigna su ID.
func (r *IssueRepo) CreateHeader(issue *entity.Issue) error {
	query := `
		INSERT INTO salidas_refacciones (orden_servicio_id, entregado_por, recibido_por, fecha_salida)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		issue.ServiceOrderID, issue.EntregadoPor, issue.RecibidoPor, issue.FechaSalida,
	).Scan(&issue.ID)
	if err != nil {
		return fmt.Errorf("create salida: %w", err)
	}
	return nil
}

// CreateLine persiste una partida entregada y asigna su ID.
func (r *IssueRepo) CreateLine(line *entity.IssueLine) error {
	query := `
		INSERT INTO salidas_detalle (salida_id, refaccion_id, cantidad)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.IssueID, line.PartID, line.Cantidad,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("create partida salida: %w", err)
	}
	return nil
}

// ListByServiceOrder devuelve las salidas (con partidas) de una OS.
func (r *IssueRepo) ListByServiceOrder(serviceOrderID int64) ([]*entity.Issue, error) {
	return r.listWhere("WHERE orden_servicio_id = $1", []any{serviceOrderID})
}

// List devuelve todas las salidas con sus partidas en orden de inserción.
func (r *IssueRepo) List() ([]*entity.Issue, error) {
	return r.listWhere("", nil)
}

func (r *IssueRepo) listWhere(where string, args []any) ([]*entity.Issue, error) {
	query := fmt.Sprintf(`
		SELECT id, orden_servicio_id, entregado_por, recibido_por, fecha_salida
		FROM salidas_refacciones %s ORDER BY id`, where)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Issue
	for rows.Next() {
		var s entity.Issue
		if err := rows.Scan(&s.ID, &s.ServiceOrderID, &s.EntregadoPor,
			&s.RecibidoPor, &s.FechaSalida); err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		lines, err := r.linesFor(s.ID)
		if err != nil {
			return nil, err
		}
		s.Lines = lines
	}
	return list, nil
}

func (r *IssueRepo) linesFor(issueID int64) ([]entity.IssueLine, error) {
	query := `
		SELECT id, salida_id, refaccion_id, cantidad
		FROM salidas_detalle
		WHERE salida_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, issueID)
	if err != nil {
		return nil, fmt.Errorf("list partidas salida: %w", err)
	}
	defer rows.Close()
	var lines []entity.IssueLine
	for rows.Next() {
		var l entity.IssueLine
		if err := rows.Scan(&l.ID, &l.IssueID, &l.PartID, &l.Cantidad); err != nil {
			return nil, fmt.Errorf("scan partida salida: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
