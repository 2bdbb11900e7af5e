package reports_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/internal/application/reports"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// fixture arma un juego de datos en memoria para el motor de reportes.
// Los reportes son de solo lectura, así que basta con slices y maps fijos.
type fixture struct {
	parts          map[int64]*entity.Part
	stock          []*entity.StockEntry
	purchaseOrders map[int64]*entity.PurchaseOrder
	receipts       []*entity.Receipt
	issues         []*entity.Issue
	serviceOrders  map[int64]*entity.ServiceOrder
	vehicles       map[int64]*entity.Vehicle
}

func newFixture() *fixture {
	return &fixture{
		parts:          make(map[int64]*entity.Part),
		purchaseOrders: make(map[int64]*entity.PurchaseOrder),
		serviceOrders:  make(map[int64]*entity.ServiceOrder),
		vehicles:       make(map[int64]*entity.Vehicle),
	}
}

func (f *fixture) usecase() *reports.UseCase {
	return reports.NewUseCase(
		&fxPartRepo{f},
		&fxStockRepo{f},
		&fxPurchaseOrderRepo{f},
		&fxReceiptRepo{f},
		&fxIssueRepo{f},
		&fxServiceOrderRepo{f},
		&fxVehicleRepo{f},
	)
}

type fxPartRepo struct{ f *fixture }

func (r *fxPartRepo) Create(part *entity.Part) error { r.f.parts[part.ID] = part; return nil }
func (r *fxPartRepo) GetByID(id int64) (*entity.Part, error) {
	return r.f.parts[id], nil
}
func (r *fxPartRepo) GetByClave(string) (*entity.Part, error)       { return nil, nil }
func (r *fxPartRepo) GetByDescripcion(string) (*entity.Part, error) { return nil, nil }
func (r *fxPartRepo) List() ([]*entity.Part, error)                 { return nil, nil }

type fxStockRepo struct{ f *fixture }

func (r *fxStockRepo) Get(partID int64) (*entity.StockEntry, error) {
	for _, s := range r.f.stock {
		if s.PartID == partID {
			return s, nil
		}
	}
	return &entity.StockEntry{PartID: partID}, nil
}
func (r *fxStockRepo) GetForUpdate(partID int64) (*entity.StockEntry, error) { return r.Get(partID) }
func (r *fxStockRepo) Upsert(*entity.StockEntry) error                       { return nil }
func (r *fxStockRepo) List() ([]*entity.StockEntry, error)                   { return r.f.stock, nil }

type fxPurchaseOrderRepo struct{ f *fixture }

func (r *fxPurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	r.f.purchaseOrders[order.ID] = order
	return nil
}
func (r *fxPurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	return r.f.purchaseOrders[id], nil
}
func (r *fxPurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	ids := make([]int64, 0, len(r.f.purchaseOrders))
	for id := range r.f.purchaseOrders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*entity.PurchaseOrder, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.f.purchaseOrders[id])
	}
	return list, nil
}
func (r *fxPurchaseOrderRepo) ListBySupplier(proveedor string) ([]*entity.PurchaseOrder, error) {
	all, _ := r.List()
	var list []*entity.PurchaseOrder
	for _, oc := range all {
		if oc.Proveedor == proveedor {
			list = append(list, oc)
		}
	}
	return list, nil
}
func (r *fxPurchaseOrderRepo) ListAllLines() ([]*entity.PurchaseOrderLine, error) {
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
func (r *fxPurchaseOrderRepo) LatestLineByPart(partID int64) (*entity.PurchaseOrderLine, error) {
	lines, _ := r.ListAllLines()
	var latest *entity.PurchaseOrderLine
	for _, l := range lines {
		if l.PartID == partID {
			latest = l
		}
	}
	return latest, nil
}

type fxReceiptRepo struct{ f *fixture }

func (r *fxReceiptRepo) CreateHeader(rec *entity.Receipt) error {
	r.f.receipts = append(r.f.receipts, rec)
	return nil
}
func (r *fxReceiptRepo) CreateLine(*entity.ReceiptLine) error { return nil }
func (r *fxReceiptRepo) ListByPurchaseOrder(purchaseOrderID int64) ([]*entity.Receipt, error) {
	var list []*entity.Receipt
	for _, rec := range r.f.receipts {
		if rec.PurchaseOrderID == purchaseOrderID {
			list = append(list, rec)
		}
	}
	return list, nil
}
func (r *fxReceiptRepo) List() ([]*entity.Receipt, error) { return r.f.receipts, nil }

type fxIssueRepo struct{ f *fixture }

func (r *fxIssueRepo) CreateHeader(iss *entity.Issue) error {
	r.f.issues = append(r.f.issues, iss)
	return nil
}
func (r *fxIssueRepo) CreateLine(*entity.IssueLine) error { return nil }
func (r *fxIssueRepo) ListByServiceOrder(serviceOrderID int64) ([]*entity.Issue, error) {
	var list []*entity.Issue
	for _, iss := range r.f.issues {
		if iss.ServiceOrderID == serviceOrderID {
			list = append(list, iss)
		}
	}
	return list, nil
}
func (r *fxIssueRepo) List() ([]*entity.Issue, error) { return r.f.issues, nil }

type fxServiceOrderRepo struct{ f *fixture }

func (r *fxServiceOrderRepo) Create(order *entity.ServiceOrder) error {
	r.f.serviceOrders[order.ID] = order
	return nil
}
func (r *fxServiceOrderRepo) GetByID(id int64) (*entity.ServiceOrder, error) {
	return r.f.serviceOrders[id], nil
}
func (r *fxServiceOrderRepo) List() ([]*entity.ServiceOrder, error) { return nil, nil }
func (r *fxServiceOrderRepo) CountOpen() (int64, error) {
	var count int64
	for _, os := range r.f.serviceOrders {
		if os.Estado != entity.ServiceOrderFinalizado {
			count++
		}
	}
	return count, nil
}

type fxVehicleRepo struct{ f *fixture }

func (r *fxVehicleRepo) Create(v *entity.Vehicle) error { r.f.vehicles[v.ID] = v; return nil }
func (r *fxVehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	return r.f.vehicles[id], nil
}
func (r *fxVehicleRepo) List() ([]*entity.Vehicle, error) { return nil, nil }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── Differential ──────────────────────────────────────────────────────────────

func TestDifferential_RecepcionCompleta(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "REFACCIONARIA",
		Lines: []entity.PurchaseOrderLine{{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 10, PrecioUnitario: dec("100")}},
	}
	f.receipts = append(f.receipts, &entity.Receipt{
		ID: 1, PurchaseOrderID: 10,
		Lines: []entity.ReceiptLine{{PartID: 1, CantidadRecibida: 10, CantidadOC: 10}},
	})

	result, err := f.usecase().Differential(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(0), result[0].Diferencia)
	assert.Equal(t, int64(10), result[0].Recibido)
}

// Una OC puede surtirse en varias recepciones parciales: el diferencial
// acumula todo lo recibido antes de restar.
func TestDifferential_RecepcionesParciales(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "REFACCIONARIA",
		Lines: []entity.PurchaseOrderLine{{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 10, PrecioUnitario: dec("100")}},
	}
	f.receipts = append(f.receipts,
		&entity.Receipt{ID: 1, PurchaseOrderID: 10, Lines: []entity.ReceiptLine{{PartID: 1, CantidadRecibida: 5, CantidadOC: 10}}},
		&entity.Receipt{ID: 2, PurchaseOrderID: 10, Lines: []entity.ReceiptLine{{PartID: 1, CantidadRecibida: 3, CantidadOC: 10}}},
	)

	result, err := f.usecase().Differential(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(8), result[0].Recibido)
	assert.Equal(t, int64(2), result[0].Diferencia, "10 pedidos - 8 recibidos = 2 pendientes")
}

func TestDifferential_OCInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.usecase().Differential(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── PriceAnomalies ────────────────────────────────────────────────────────────

func TestPriceAnomalies_CompraMasCara(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "A",
		Lines: []entity.PurchaseOrderLine{{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("100")}},
	}
	f.purchaseOrders[11] = &entity.PurchaseOrder{
		ID: 11, Proveedor: "B",
		Lines: []entity.PurchaseOrderLine{{ID: 2, PurchaseOrderID: 11, PartID: 1, Cantidad: 1, PrecioUnitario: dec("150")}},
	}

	alertas, err := f.usecase().PriceAnomalies(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 1, "solo la partida por encima del mínimo debe alertar")

	a := alertas[0]
	assert.True(t, a.PrecioHistoricoMin.Equal(dec("100")))
	assert.True(t, a.PrecioActual.Equal(dec("150")))
	assert.True(t, a.Diferencia.Equal(dec("50")))
	assert.True(t, a.Porcentaje.Equal(dec("50")), "((150-100)/100)*100 = 50%%")
	assert.Equal(t, "ALERTA: compra más cara que el histórico", a.Mensaje)
}

// Una refacción comprada una sola vez nunca alerta: no hay histórico que superar.
func TestPriceAnomalies_CompraUnicaNoAlerta(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "A",
		Lines: []entity.PurchaseOrderLine{{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("500")}},
	}

	alertas, err := f.usecase().PriceAnomalies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alertas)
}

// Si el mínimo histórico es cero el porcentaje queda en cero en lugar de
// dividir entre cero.
func TestPriceAnomalies_MinimoCero(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "A",
		Lines: []entity.PurchaseOrderLine{
			{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("0")},
			{ID: 2, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("80")},
		},
	}

	alertas, err := f.usecase().PriceAnomalies(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.True(t, alertas[0].Porcentaje.Equal(decimal.Zero))
	assert.True(t, alertas[0].Diferencia.Equal(dec("80")))
}

// Los reportes son lecturas puras: ejecutarlos dos veces sobre el mismo
// estado produce exactamente el mismo resultado.
func TestPriceAnomalies_LecturaIdempotente(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "A",
		Lines: []entity.PurchaseOrderLine{
			{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("100")},
			{ID: 2, PurchaseOrderID: 10, PartID: 1, Cantidad: 1, PrecioUnitario: dec("130")},
		},
	}

	uc := f.usecase()
	primera, err := uc.PriceAnomalies(context.Background())
	require.NoError(t, err)
	segunda, err := uc.PriceAnomalies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, primera, segunda)
}

// ── CostByVehicle ─────────────────────────────────────────────────────────────

func TestCostByVehicle_UsaUltimaCompra(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.vehicles[1] = &entity.Vehicle{ID: 1, Placas: "ABC-123", Marca: "FORD", Modelo: "RANGER"}
	f.serviceOrders[5] = &entity.ServiceOrder{ID: 5, VehicleID: 1, Estado: entity.ServiceOrderEnProceso}
	// Dos compras: el costeo toma la partida de mayor id (precio 120), no la primera.
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "A",
		Lines: []entity.PurchaseOrderLine{{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 10, PrecioUnitario: dec("100")}},
	}
	f.purchaseOrders[11] = &entity.PurchaseOrder{
		ID: 11, Proveedor: "B",
		Lines: []entity.PurchaseOrderLine{{ID: 2, PurchaseOrderID: 11, PartID: 1, Cantidad: 10, PrecioUnitario: dec("120")}},
	}
	f.issues = append(f.issues, &entity.Issue{
		ID: 1, ServiceOrderID: 5,
		Lines: []entity.IssueLine{{PartID: 1, Cantidad: 3}},
	})

	result, err := f.usecase().CostByVehicle(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].VehiculoID)
	assert.True(t, result[0].TotalGastado.Equal(dec("360")), "3 piezas x 120 (última compra) = 360")
}

// Una refacción entregada pero nunca comprada cuesta cero en el reporte.
func TestCostByVehicle_SinCompraCuestaCero(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "DON-001", Descripcion: "REFACCION DONADA"}
	f.vehicles[1] = &entity.Vehicle{ID: 1, Placas: "ABC-123"}
	f.serviceOrders[5] = &entity.ServiceOrder{ID: 5, VehicleID: 1, Estado: entity.ServiceOrderEnProceso}
	f.issues = append(f.issues, &entity.Issue{
		ID: 1, ServiceOrderID: 5,
		Lines: []entity.IssueLine{{PartID: 1, Cantidad: 2}},
	})

	result, err := f.usecase().CostByVehicle(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].TotalGastado.Equal(decimal.Zero))
}

// ── UsageRanking ──────────────────────────────────────────────────────────────

func TestUsageRanking_OrdenDescendenteEstable(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "A", Descripcion: "REFACCION A"}
	f.parts[2] = &entity.Part{ID: 2, Clave: "B", Descripcion: "REFACCION B"}
	f.parts[3] = &entity.Part{ID: 3, Clave: "C", Descripcion: "REFACCION C"}
	f.serviceOrders[5] = &entity.ServiceOrder{ID: 5, VehicleID: 1, Estado: entity.ServiceOrderEnProceso}
	f.issues = append(f.issues,
		&entity.Issue{ID: 1, ServiceOrderID: 5, Lines: []entity.IssueLine{
			{PartID: 1, Cantidad: 2},
			{PartID: 2, Cantidad: 7},
		}},
		&entity.Issue{ID: 2, ServiceOrderID: 5, Lines: []entity.IssueLine{
			{PartID: 3, Cantidad: 2},
			{PartID: 1, Cantidad: 1},
		}},
	)

	result, err := f.usecase().UsageRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, int64(2), result[0].RefaccionID)
	assert.Equal(t, int64(7), result[0].TotalUsado)
	// Empate 3 vs 2: la refacción 1 apareció primero en las salidas y
	// conserva la posición (orden estable).
	assert.Equal(t, int64(1), result[1].RefaccionID)
	assert.Equal(t, int64(3), result[1].TotalUsado)
	assert.Equal(t, int64(3), result[2].RefaccionID)
	assert.Equal(t, int64(2), result[2].TotalUsado)
}

// ── LowStock / InventoryDetail / Dashboard ────────────────────────────────────

func TestLowStock_UmbralInclusivo(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "A", Descripcion: "REFACCION A"}
	f.parts[2] = &entity.Part{ID: 2, Clave: "B", Descripcion: "REFACCION B"}
	f.parts[3] = &entity.Part{ID: 3, Clave: "C", Descripcion: "REFACCION C"}
	f.stock = []*entity.StockEntry{
		{PartID: 1, Existencia: 5},
		{PartID: 2, Existencia: 6},
		{PartID: 3, Existencia: 0},
	}

	result, err := f.usecase().LowStock(context.Background(), reports.LowStockDefault)
	require.NoError(t, err)
	require.Len(t, result, 2, "existencia == umbral cuenta como bajo inventario")
	assert.Equal(t, int64(1), result[0].RefaccionID)
	assert.Equal(t, int64(3), result[1].RefaccionID)
}

func TestInventoryDetail_CombinaCatalogoYExistencias(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE", UnidadMedida: "pieza"}
	f.stock = []*entity.StockEntry{{PartID: 1, Existencia: 12, UpdatedAt: time.Now()}}

	result, err := f.usecase().InventoryDetail(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "FIL-001", result[0].Clave)
	assert.Equal(t, int64(12), result[0].Existencia)
}

func TestDashboard_Resumen(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "A", Descripcion: "REFACCION A"}
	f.stock = []*entity.StockEntry{
		{PartID: 1, Existencia: 3},
	}
	f.serviceOrders[5] = &entity.ServiceOrder{ID: 5, VehicleID: 1, Estado: entity.ServiceOrderEnProceso}
	f.serviceOrders[6] = &entity.ServiceOrder{ID: 6, VehicleID: 1, Estado: entity.ServiceOrderFinalizado}

	result, err := f.usecase().Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.OrdenesAbiertas)
	assert.Equal(t, int64(3), result.InventarioTotal)
	assert.Equal(t, 1, result.RefaccionesBajoInventario)
}

// ── PurchasesBySupplier / Consumption ─────────────────────────────────────────

func TestPurchasesBySupplier_TotalPorOC(t *testing.T) {
	f := newFixture()
	f.purchaseOrders[10] = &entity.PurchaseOrder{
		ID: 10, Proveedor: "REFACCIONARIA", Estado: entity.PurchaseOrderPendiente,
		Lines: []entity.PurchaseOrderLine{
			{ID: 1, PurchaseOrderID: 10, PartID: 1, Cantidad: 2, PrecioUnitario: dec("100")},
			{ID: 2, PurchaseOrderID: 10, PartID: 2, Cantidad: 1, PrecioUnitario: dec("50.50")},
		},
	}
	f.purchaseOrders[11] = &entity.PurchaseOrder{ID: 11, Proveedor: "OTRO"}

	result, err := f.usecase().PurchasesBySupplier(context.Background(), "REFACCIONARIA")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(10), result[0].OCID)
	assert.True(t, result[0].Total.Equal(dec("250.50")), "2x100 + 1x50.50")
}

func TestConsumption_PorOrdenDeServicio(t *testing.T) {
	f := newFixture()
	f.parts[1] = &entity.Part{ID: 1, Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE"}
	f.serviceOrders[5] = &entity.ServiceOrder{ID: 5, VehicleID: 1, Estado: entity.ServiceOrderEnProceso}
	f.issues = append(f.issues, &entity.Issue{
		ID: 1, ServiceOrderID: 5, EntregadoPor: "almacenista", RecibidoPor: "mecanico",
		FechaSalida: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		Lines:       []entity.IssueLine{{PartID: 1, Cantidad: 2}},
	})

	result, err := f.usecase().ConsumptionByServiceOrder(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].Cantidad)
	assert.Equal(t, "almacenista", result[0].EntregadoPor)

	_, err = f.usecase().ConsumptionByServiceOrder(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
