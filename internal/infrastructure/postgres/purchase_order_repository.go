package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden de compra con sus partidas y asigna IDs.
// Las partidas se insertan en el orden dado para que el ID creciente
// refleje el orden de captura.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	headerQuery := `
		INSERT INTO ordenes_compra (solicitud_id, proveedor, estado, factura, fecha_oc)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), headerQuery,
		order.RequestID, order.Proveedor, order.Estado, order.Factura, order.FechaOC,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("create orden compra: %w", err)
	}

	lineQuery := `
		INSERT INTO ordenes_compra_detalle (orden_compra_id, refaccion_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range order.Lines {
		line := &order.Lines[i]
		line.PurchaseOrderID = order.ID
		err := r.q.QueryRow(context.Background(), lineQuery,
			line.PurchaseOrderID, line.PartID, line.Cantidad, line.PrecioUnitario,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("create partida orden compra: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden de compra con sus partidas; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, solicitud_id, proveedor, estado, factura, fecha_oc
		FROM ordenes_compra WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.RequestID, &o.Proveedor, &o.Estado, &o.Factura, &o.FechaOC,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden compra: %w", err)
	}
	lines, err := r.linesFor(o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List devuelve todas las órdenes de compra con sus partidas.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	return r.listWhere("", nil)
}

// ListBySupplier devuelve las órdenes de compra de un proveedor.
func (r *PurchaseOrderRepo) ListBySupplier(proveedor string) ([]*entity.PurchaseOrder, error) {
	return r.listWhere("WHERE proveedor = $1", []any{proveedor})
}

func (r *PurchaseOrderRepo) listWhere(where string, args []any) ([]*entity.PurchaseOrder, error) {
	query := fmt.Sprintf(`
		SELECT id, solicitud_id, proveedor, estado, factura, fecha_oc
		FROM ordenes_compra %s ORDER BY id`, where)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.RequestID, &o.Proveedor, &o.Estado,
			&o.Factura, &o.FechaOC); err != nil {
			return nil, fmt.Errorf("scan orden compra: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}

func (r *PurchaseOrderRepo) linesFor(orderID int64) ([]entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, orden_compra_id, refaccion_id, cantidad, precio_unitario
		FROM ordenes_compra_detalle
		WHERE orden_compra_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list partidas orden compra: %w", err)
	}
	defer rows.Close()
	var lines []entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.PurchaseOrderID, &l.PartID,
			&l.Cantidad, &l.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan partida orden compra: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ListAllLines devuelve todas las partidas de compra en orden de inserción
// (id ascendente), insumo de la detección de anomalías de precio.
func (r *PurchaseOrderRepo) ListAllLines() ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, orden_compra_id, refaccion_id, cantidad, precio_unitario
		FROM ordenes_compra_detalle
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partidas compra: %w", err)
	}
	defer rows.Close()
	var lines []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.PurchaseOrderID, &l.PartID,
			&l.Cantidad, &l.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan partida compra: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// LatestLineByPart devuelve la partida de compra más reciente (mayor id)
// para una refacción; nil si nunca se ha comprado.
func (r *PurchaseOrderRepo) LatestLineByPart(partID int64) (*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, orden_compra_id, refaccion_id, cantidad, precio_unitario
		FROM ordenes_compra_detalle
		WHERE refaccion_id = $1
		ORDER BY id DESC
		LIMIT 1`
	var l entity.PurchaseOrderLine
	err := r.q.QueryRow(context.Background(), query, partID).Scan(
		&l.ID, &l.PurchaseOrderID, &l.PartID, &l.Cantidad, &l.PrecioUnitario,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ultima partida compra: %w", err)
	}
	return &l, nil
}
