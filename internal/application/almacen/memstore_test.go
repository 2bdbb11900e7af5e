package almacen_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// memStore es el almacén en memoria compartido por los fakes de los tests.
// El TxRunner de prueba toma un snapshot antes de ejecutar y lo restaura si
// la función devuelve error, reproduciendo la semántica todo-o-nada de la
// transacción real.
type memStore struct {
	parts          map[int64]*entity.Part
	stock          map[int64]int64
	movements      []*entity.Movement
	receipts       []*entity.Receipt
	receiptLines   []*entity.ReceiptLine
	issues         []*entity.Issue
	issueLines     []*entity.IssueLine
	purchaseOrders map[int64]*entity.PurchaseOrder
	serviceOrders  map[int64]*entity.ServiceOrder
	nextID         int64
}

func newMemStore() *memStore {
	return &memStore{
		parts:          make(map[int64]*entity.Part),
		stock:          make(map[int64]int64),
		purchaseOrders: make(map[int64]*entity.PurchaseOrder),
		serviceOrders:  make(map[int64]*entity.ServiceOrder),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addPart(clave, descripcion string) *entity.Part {
	p := &entity.Part{ID: s.id(), Clave: clave, Descripcion: descripcion, UnidadMedida: "pieza"}
	s.parts[p.ID] = p
	return p
}

func (s *memStore) addPurchaseOrder(proveedor string) *entity.PurchaseOrder {
	oc := &entity.PurchaseOrder{ID: s.id(), Proveedor: proveedor, Estado: entity.PurchaseOrderPendiente}
	s.purchaseOrders[oc.ID] = oc
	return oc
}

func (s *memStore) addServiceOrder() *entity.ServiceOrder {
	os := &entity.ServiceOrder{ID: s.id(), Estado: entity.ServiceOrderPendiente}
	s.serviceOrders[os.ID] = os
	return os
}

// ── snapshot / restore ────────────────────────────────────────────────────────

type snapshot struct {
	stock        map[int64]int64
	movements    int
	receipts     int
	receiptLines int
	issues       int
	issueLines   int
	nextID       int64
}

func (s *memStore) snapshot() snapshot {
	stock := make(map[int64]int64, len(s.stock))
	for k, v := range s.stock {
		stock[k] = v
	}
	return snapshot{
		stock:        stock,
		movements:    len(s.movements),
		receipts:     len(s.receipts),
		receiptLines: len(s.receiptLines),
		issues:       len(s.issues),
		issueLines:   len(s.issueLines),
		nextID:       s.nextID,
	}
}

func (s *memStore) restore(snap snapshot) {
	s.stock = snap.stock
	s.movements = s.movements[:snap.movements]
	s.receipts = s.receipts[:snap.receipts]
	s.receiptLines = s.receiptLines[:snap.receiptLines]
	s.issues = s.issues[:snap.issues]
	s.issueLines = s.issueLines[:snap.issueLines]
	s.nextID = snap.nextID
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct {
	store *memStore
}

var _ almacen.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	receiptRepo repository.ReceiptRepository,
	issueRepo repository.IssueRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&memStockRepo{store: r.store},
		&memMovementRepo{store: r.store},
		&memReceiptRepo{store: r.store},
		&memIssueRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ── repos ─────────────────────────────────────────────────────────────────────

type memPartRepo struct{ store *memStore }

func (r *memPartRepo) Create(part *entity.Part) error {
	part.ID = r.store.id()
	r.store.parts[part.ID] = part
	return nil
}

func (r *memPartRepo) GetByID(id int64) (*entity.Part, error) {
	return r.store.parts[id], nil
}

func (r *memPartRepo) GetByClave(clave string) (*entity.Part, error) {
	for _, p := range r.store.parts {
		if p.Clave == clave {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) GetByDescripcion(descripcion string) (*entity.Part, error) {
	for _, p := range r.store.parts {
		if p.Descripcion == descripcion {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) List() ([]*entity.Part, error) {
	ids := make([]int64, 0, len(r.store.parts))
	for id := range r.store.parts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.Part, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.store.parts[id])
	}
	return list, nil
}

type memStockRepo struct{ store *memStore }

func (r *memStockRepo) Get(partID int64) (*entity.StockEntry, error) {
	return &entity.StockEntry{PartID: partID, Existencia: r.store.stock[partID]}, nil
}

func (r *memStockRepo) GetForUpdate(partID int64) (*entity.StockEntry, error) {
	return r.Get(partID)
}

func (r *memStockRepo) Upsert(stock *entity.StockEntry) error {
	r.store.stock[stock.PartID] = stock.Existencia
	return nil
}

func (r *memStockRepo) List() ([]*entity.StockEntry, error) {
	ids := make([]int64, 0, len(r.store.stock))
	for id := range r.store.stock {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.StockEntry, 0, len(ids))
	for _, id := range ids {
		list = append(list, &entity.StockEntry{PartID: id, Existencia: r.store.stock[id]})
	}
	return list, nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(movement *entity.Movement) error {
	movement.ID = r.store.id()
	r.store.movements = append(r.store.movements, movement)
	return nil
}

func (r *memMovementRepo) ListByPart(partID int64) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.store.movements {
		if m.PartID == partID {
			list = append(list, m)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Fecha.Equal(list[j].Fecha) {
			return list[i].ID < list[j].ID
		}
		return list[i].Fecha.Before(list[j].Fecha)
	})
	return list, nil
}

type memReceiptRepo struct{ store *memStore }

func (r *memReceiptRepo) CreateHeader(receipt *entity.Receipt) error {
	receipt.ID = r.store.id()
	r.store.receipts = append(r.store.receipts, receipt)
	return nil
}

func (r *memReceiptRepo) CreateLine(line *entity.ReceiptLine) error {
	line.ID = r.store.id()
	r.store.receiptLines = append(r.store.receiptLines, line)
	return nil
}

func (r *memReceiptRepo) ListByPurchaseOrder(purchaseOrderID int64) ([]*entity.Receipt, error) {
	var list []*entity.Receipt
	for _, rec := range r.store.receipts {
		if rec.PurchaseOrderID == purchaseOrderID {
			list = append(list, r.withLines(rec))
		}
	}
	return list, nil
}

func (r *memReceiptRepo) List() ([]*entity.Receipt, error) {
	list := make([]*entity.Receipt, 0, len(r.store.receipts))
	for _, rec := range r.store.receipts {
		list = append(list, r.withLines(rec))
	}
	return list, nil
}

func (r *memReceiptRepo) withLines(rec *entity.Receipt) *entity.Receipt {
	out := *rec
	out.Lines = nil
	for _, l := range r.store.receiptLines {
		if l.ReceiptID == rec.ID {
			out.Lines = append(out.Lines, *l)
		}
	}
	return &out
}

type memIssueRepo struct{ store *memStore }

func (r *memIssueRepo) CreateHeader(issue *entity.Issue) error {
	issue.ID = r.store.id()
	r.store.issues = append(r.store.issues, issue)
	return nil
}

func (r *memIssueRepo) CreateLine(line *entity.IssueLine) error {
	line.ID = r.store.id()
	r.store.issueLines = append(r.store.issueLines, line)
	return nil
}

func (r *memIssueRepo) ListByServiceOrder(serviceOrderID int64) ([]*entity.Issue, error) {
	var list []*entity.Issue
	for _, iss := range r.store.issues {
		if iss.ServiceOrderID == serviceOrderID {
			list = append(list, r.withLines(iss))
		}
	}
	return list, nil
}

func (r *memIssueRepo) List() ([]*entity.Issue, error) {
	list := make([]*entity.Issue, 0, len(r.store.issues))
	for _, iss := range r.store.issues {
		list = append(list, r.withLines(iss))
	}
	return list, nil
}

func (r *memIssueRepo) withLines(iss *entity.Issue) *entity.Issue {
	out := *iss
	out.Lines = nil
	for _, l := range r.store.issueLines {
		if l.IssueID == iss.ID {
			out.Lines = append(out.Lines, *l)
		}
	}
	return &out
}

type memPurchaseOrderRepo struct{ store *memStore }

func (r *memPurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	order.ID = r.store.id()
	for i := range order.Lines {
		order.Lines[i].ID = r.store.id()
		order.Lines[i].PurchaseOrderID = order.ID
	}
	r.store.purchaseOrders[order.ID] = order
	return nil
}

func (r *memPurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	return r.store.purchaseOrders[id], nil
}

func (r *memPurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	ids := make([]int64, 0, len(r.store.purchaseOrders))
	for id := range r.store.purchaseOrders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.PurchaseOrder, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.store.purchaseOrders[id])
	}
	return list, nil
}

func (r *memPurchaseOrderRepo) ListBySupplier(proveedor string) ([]*entity.PurchaseOrder, error) {
	all, _ := r.List()
	var list []*entity.PurchaseOrder
	for _, oc := range all {
		if oc.Proveedor == proveedor {
			list = append(list, oc)
		}
	}
	return list, nil
}

func (r *memPurchaseOrderRepo) ListAllLines() ([]*entity.PurchaseOrderLine, error) {
	all, _ := r.List()
	var lines []*entity.PurchaseOrderLine
	for _, oc := range all {
		for i := range oc.Lines {
			lines = append(lines, &oc.Lines[i])
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

func (r *memPurchaseOrderRepo) LatestLineByPart(partID int64) (*entity.PurchaseOrderLine, error) {
	lines, _ := r.ListAllLines()
	var latest *entity.PurchaseOrderLine
	for _, l := range lines {
		if l.PartID == partID {
			latest = l
		}
	}
	return latest, nil
}

type memServiceOrderRepo struct{ store *memStore }

func (r *memServiceOrderRepo) Create(order *entity.ServiceOrder) error {
	order.ID = r.store.id()
	r.store.serviceOrders[order.ID] = order
	return nil
}

func (r *memServiceOrderRepo) GetByID(id int64) (*entity.ServiceOrder, error) {
	return r.store.serviceOrders[id], nil
}

func (r *memServiceOrderRepo) List() ([]*entity.ServiceOrder, error) {
	ids := make([]int64, 0, len(r.store.serviceOrders))
	for id := range r.store.serviceOrders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.ServiceOrder, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.store.serviceOrders[id])
	}
	return list, nil
}

func (r *memServiceOrderRepo) CountOpen() (int64, error) {
	var count int64
	for _, os := range r.store.serviceOrders {
		if os.Estado != entity.ServiceOrderFinalizado {
			count++
		}
	}
	return count, nil
}
