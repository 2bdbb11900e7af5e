package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/taller-api/internal/domain"
)

// Formato de las órdenes de compra municipales en texto plano (extraído de
// PDF por un productor externo). Los acentos llegan inconsistentes según el
// extractor, por eso se normaliza antes de aplicar las expresiones.
var (
	reProveedor = regexp.MustCompile(`PROVEEDOR\s*:\s*([A-Z0-9\s\.]+)`)
	reNumeroOC  = regexp.MustCompile(`NUMERO\s+(\d+)`)
	rePartida   = regexp.MustCompile(`(\d+)(?:\.\d+)?\s+([A-Z]+)\s+(\d+[\w\s\-]+)\s+\$\s*([\d,]+\.\d+)\s+\$\s*([\d,]+\.\d+)`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// ParseText convierte el texto de una OC municipal en un Document.
// Devuelve ErrInvalidInput si no se reconoce ninguna partida.
func ParseText(texto string) (*Document, error) {
	t := normalizeText(texto)

	doc := &Document{Proveedor: "DESCONOCIDO"}
	if m := reProveedor.FindStringSubmatch(t); m != nil {
		doc.Proveedor = strings.TrimSpace(m[1])
	}
	if m := reNumeroOC.FindStringSubmatch(t); m != nil {
		doc.NumeroOC = m[1]
	}

	for _, m := range rePartida.FindAllStringSubmatch(t, -1) {
		cantidad, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		precio, err := decimal.NewFromString(strings.ReplaceAll(m[4], ",", ""))
		if err != nil {
			continue
		}
		doc.Detalles = append(doc.Detalles, DocumentLine{
			Descripcion:    strings.TrimSpace(m[3]),
			Unidad:         m[2],
			Cantidad:       cantidad,
			PrecioUnitario: precio,
		})
	}
	if len(doc.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return doc, nil
}

// normalizeText colapsa espacios y elimina diacríticos (NFD + remoción de
// marcas) para que "ELABORACIÓN" y "ELABORACION" casen igual.
func normalizeText(texto string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ").Replace(texto)
	t = reSpaces.ReplaceAllString(t, " ")

	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(chain, t)
	if err != nil {
		return t
	}
	return plain
}
