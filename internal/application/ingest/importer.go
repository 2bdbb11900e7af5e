package ingest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// Importer crea órdenes de compra a partir de documentos normalizados.
// Las refacciones desconocidas se dan de alta por coincidencia exacta de
// descripción; la clave por defecto son los primeros 20 caracteres.
type Importer struct {
	partRepo          repository.PartRepository
	purchaseOrderRepo repository.PurchaseOrderRepository
}

// NewImporter construye el importador.
func NewImporter(
	partRepo repository.PartRepository,
	purchaseOrderRepo repository.PurchaseOrderRepository,
) *Importer {
	return &Importer{partRepo: partRepo, purchaseOrderRepo: purchaseOrderRepo}
}

// Import importa un documento según su tipo: "json", "texto" o "xml".
func (im *Importer) Import(ctx context.Context, tipo, contenido string) (*entity.PurchaseOrder, error) {
	var (
		doc *Document
		err error
	)
	switch tipo {
	case "json":
		doc = &Document{}
		if err := json.Unmarshal([]byte(contenido), doc); err != nil {
			return nil, domain.ErrInvalidInput
		}
	case "texto":
		doc, err = ParseText(contenido)
	case "xml":
		doc, err = ParseXML(contenido)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	return im.ImportDocument(ctx, doc)
}

// ImportDocument resuelve cada partida contra el catálogo (alta implícita si
// no existe) y crea la OC en estado pendiente con las partidas fijas.
func (im *Importer) ImportDocument(_ context.Context, doc *Document) (*entity.PurchaseOrder, error) {
	if doc.Proveedor == "" || len(doc.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.PurchaseOrder{
		Proveedor: doc.Proveedor,
		Estado:    entity.PurchaseOrderPendiente,
		Factura:   doc.Factura,
		FechaOC:   time.Now(),
	}
	for _, det := range doc.Detalles {
		if det.Descripcion == "" || det.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if det.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		part, err := im.findOrCreatePart(det)
		if err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, entity.PurchaseOrderLine{
			PartID:         part.ID,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
		})
	}
	if err := im.purchaseOrderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// findOrCreatePart busca por descripción exacta (sin coincidencia difusa) y
// da de alta la refacción si no existe.
func (im *Importer) findOrCreatePart(det DocumentLine) (*entity.Part, error) {
	part, err := im.partRepo.GetByDescripcion(det.Descripcion)
	if err != nil {
		return nil, err
	}
	if part != nil {
		return part, nil
	}

	clave := det.Clave
	if clave == "" {
		// Primeros 20 caracteres de la descripción (por runas, no bytes).
		r := []rune(det.Descripcion)
		if len(r) > 20 {
			r = r[:20]
		}
		clave = string(r)
	}
	unidad := det.Unidad
	if unidad == "" {
		unidad = "pieza"
	}
	part = &entity.Part{Clave: clave, Descripcion: det.Descripcion, UnidadMedida: unidad}
	if err := im.partRepo.Create(part); err != nil {
		return nil, err
	}
	return part, nil
}
