package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/taller-api/internal/application/dto"
)

// InventoryPDFGenerator genera la versión imprimible del reporte de inventario.
// La implementación vive en infraestructura (Maroto).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, rows []dto.InventoryDetailDTO, generatedAt time.Time) ([]byte, error)
}
