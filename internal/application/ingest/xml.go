package ingest

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/taller-api/internal/domain"
)

// ParseXML convierte una OC en XML a un Document. Estructura esperada:
//
//	<orden_compra proveedor="..." factura="...">
//	  <partida clave="..." unidad="...">
//	    <descripcion>...</descripcion>
//	    <cantidad>2</cantidad>
//	    <precio_unitario>300.00</precio_unitario>
//	  </partida>
//	</orden_compra>
func ParseXML(contenido string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(contenido); err != nil {
		return nil, domain.ErrInvalidInput
	}
	root := tree.SelectElement("orden_compra")
	if root == nil {
		return nil, domain.ErrInvalidInput
	}

	doc := &Document{
		Proveedor: strings.TrimSpace(root.SelectAttrValue("proveedor", "DESCONOCIDO")),
		Factura:   root.SelectAttrValue("factura", ""),
	}
	for _, el := range root.SelectElements("partida") {
		desc := el.SelectElement("descripcion")
		cant := el.SelectElement("cantidad")
		precio := el.SelectElement("precio_unitario")
		if desc == nil || cant == nil || precio == nil {
			return nil, domain.ErrInvalidInput
		}
		cantidad, err := strconv.ParseInt(strings.TrimSpace(cant.Text()), 10, 64)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		precioUnitario, err := decimal.NewFromString(strings.TrimSpace(precio.Text()))
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		doc.Detalles = append(doc.Detalles, DocumentLine{
			Clave:          el.SelectAttrValue("clave", ""),
			Unidad:         el.SelectAttrValue("unidad", ""),
			Descripcion:    strings.TrimSpace(desc.Text()),
			Cantidad:       cantidad,
			PrecioUnitario: precioUnitario,
		})
	}
	if len(doc.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return doc, nil
}
