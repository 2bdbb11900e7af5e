package ingest_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/internal/application/ingest"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

type fakePartRepo struct {
	parts  []*entity.Part
	nextID int64
}

func (r *fakePartRepo) Create(part *entity.Part) error {
	r.nextID++
	part.ID = r.nextID
	r.parts = append(r.parts, part)
	return nil
}

func (r *fakePartRepo) GetByID(id int64) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) GetByClave(clave string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.Clave == clave {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) GetByDescripcion(descripcion string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.Descripcion == descripcion {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) List() ([]*entity.Part, error) { return r.parts, nil }

type fakePurchaseOrderRepo struct {
	orders     []*entity.PurchaseOrder
	nextID     int64
	nextLineID int64
}

func (r *fakePurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	r.nextID++
	order.ID = r.nextID
	for i := range order.Lines {
		r.nextLineID++
		order.Lines[i].ID = r.nextLineID
		order.Lines[i].PurchaseOrderID = order.ID
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakePurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	for _, oc := range r.orders {
		if oc.ID == id {
			return oc, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) { return r.orders, nil }

func (r *fakePurchaseOrderRepo) ListBySupplier(proveedor string) ([]*entity.PurchaseOrder, error) {
	var list []*entity.PurchaseOrder
	for _, oc := range r.orders {
		if oc.Proveedor == proveedor {
			list = append(list, oc)
		}
	}
	return list, nil
}

func (r *fakePurchaseOrderRepo) ListAllLines() ([]*entity.PurchaseOrderLine, error) {
	var lines []*entity.PurchaseOrderLine
	for _, oc := range r.orders {
		for i := range oc.Lines {
			lines = append(lines, &oc.Lines[i])
		}
	}
	return lines, nil
}

func (r *fakePurchaseOrderRepo) LatestLineByPart(partID int64) (*entity.PurchaseOrderLine, error) {
	lines, _ := r.ListAllLines()
	var latest *entity.PurchaseOrderLine
	for _, l := range lines {
		if l.PartID == partID {
			latest = l
		}
	}
	return latest, nil
}

func newImporterFixture() (*fakePartRepo, *fakePurchaseOrderRepo, *ingest.Importer) {
	partRepo := &fakePartRepo{}
	ocRepo := &fakePurchaseOrderRepo{}
	return partRepo, ocRepo, ingest.NewImporter(partRepo, ocRepo)
}

func TestImportDocument_AltaImplicitaDeRefaccion(t *testing.T) {
	partRepo, ocRepo, importer := newImporterFixture()

	doc := &ingest.Document{
		Proveedor: "REFACCIONARIA DEL NORTE",
		Detalles: []ingest.DocumentLine{
			{Descripcion: "AMORTIGUADOR DELANTERO REFORZADO", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("890.00")},
		},
	}
	order, err := importer.ImportDocument(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.PurchaseOrderPendiente, order.Estado)
	require.Len(t, order.Lines, 1)

	require.Len(t, partRepo.parts, 1)
	creada := partRepo.parts[0]
	assert.Equal(t, "AMORTIGUADOR DELANTE", creada.Clave, "clave por defecto: primeros 20 caracteres")
	assert.Equal(t, "pieza", creada.UnidadMedida)
	assert.Equal(t, creada.ID, order.Lines[0].PartID)
	require.Len(t, ocRepo.orders, 1)
}

func TestImportDocument_ReusaRefaccionExistente(t *testing.T) {
	partRepo, _, importer := newImporterFixture()
	existente := &entity.Part{Clave: "FIL-001", Descripcion: "FILTRO DE ACEITE MOTOR", UnidadMedida: "pieza"}
	require.NoError(t, partRepo.Create(existente))

	doc := &ingest.Document{
		Proveedor: "REFACCIONARIA DEL NORTE",
		Detalles: []ingest.DocumentLine{
			{Descripcion: "FILTRO DE ACEITE MOTOR", Cantidad: 3, PrecioUnitario: decimal.RequireFromString("150.50")},
		},
	}
	order, err := importer.ImportDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, existente.ID, order.Lines[0].PartID)
	assert.Len(t, partRepo.parts, 1, "no debe duplicarse la refacción")
}

func TestImportDocument_Invalido(t *testing.T) {
	_, ocRepo, importer := newImporterFixture()

	casos := map[string]*ingest.Document{
		"sin proveedor": {Detalles: []ingest.DocumentLine{{Descripcion: "A", Cantidad: 1}}},
		"sin partidas":  {Proveedor: "X"},
		"cantidad cero": {Proveedor: "X", Detalles: []ingest.DocumentLine{{Descripcion: "A", Cantidad: 0}}},
		"precio negativo": {Proveedor: "X", Detalles: []ingest.DocumentLine{
			{Descripcion: "A", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("-1")},
		}},
	}
	for nombre, doc := range casos {
		_, err := importer.ImportDocument(context.Background(), doc)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}
	assert.Empty(t, ocRepo.orders)
}

func TestImport_JSON(t *testing.T) {
	_, ocRepo, importer := newImporterFixture()

	contenido := `{
  "proveedor": "REFACCIONARIA DEL NORTE",
  "factura": "F-881",
  "detalles": [
    {"clave": "FIL-001", "descripcion": "FILTRO DE ACEITE MOTOR", "cantidad": 2, "precio_unitario": "150.50"},
    {"descripcion": "BUJIA PLATINO", "cantidad": 4, "precio_unitario": "1250.00"}
  ]
}`
	order, err := importer.Import(context.Background(), "json", contenido)
	require.NoError(t, err)
	assert.Equal(t, "F-881", order.Factura)
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].PrecioUnitario.Equal(decimal.RequireFromString("150.50")))
	require.Len(t, ocRepo.orders, 1)
}

func TestImport_TextoDeExtractor(t *testing.T) {
	partRepo, _, importer := newImporterFixture()

	order, err := importer.Import(context.Background(), "texto", textoOC)
	require.NoError(t, err)
	assert.Equal(t, "REFACCIONARIA DEL NORTE", order.Proveedor)
	require.Len(t, order.Lines, 2)
	assert.Len(t, partRepo.parts, 2, "ambas partidas son refacciones nuevas")
}

func TestImport_TipoDesconocido(t *testing.T) {
	_, _, importer := newImporterFixture()
	_, err := importer.Import(context.Background(), "csv", "a,b,c")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
