// Package reports implementa el motor de conciliación y reportes: vistas
// derivadas de solo lectura sobre los documentos y el ledger. Ninguna
// operación de este paquete muta estado.
package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// LowStockDefault umbral por defecto del reporte de bajo inventario.
const LowStockDefault = 5

// UseCase agrupa los reportes de conciliación del taller.
type UseCase struct {
	partRepo          repository.PartRepository
	stockRepo         repository.StockRepository
	purchaseOrderRepo repository.PurchaseOrderRepository
	receiptRepo       repository.ReceiptRepository
	issueRepo         repository.IssueRepository
	serviceOrderRepo  repository.ServiceOrderRepository
	vehicleRepo       repository.VehicleRepository
}

// NewUseCase construye el motor de reportes.
func NewUseCase(
	partRepo repository.PartRepository,
	stockRepo repository.StockRepository,
	purchaseOrderRepo repository.PurchaseOrderRepository,
	receiptRepo repository.ReceiptRepository,
	issueRepo repository.IssueRepository,
	serviceOrderRepo repository.ServiceOrderRepository,
	vehicleRepo repository.VehicleRepository,
) *UseCase {
	return &UseCase{
		partRepo:          partRepo,
		stockRepo:         stockRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		receiptRepo:       receiptRepo,
		issueRepo:         issueRepo,
		serviceOrderRepo:  serviceOrderRepo,
		vehicleRepo:       vehicleRepo,
	}
}

// InventoryDetail devuelve las existencias con los datos de catálogo de cada refacción.
func (uc *UseCase) InventoryDetail(_ context.Context) ([]dto.InventoryDetailDTO, error) {
	entries, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryDetailDTO, 0, len(entries))
	for _, e := range entries {
		part, err := uc.partRepo.GetByID(e.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		result = append(result, dto.InventoryDetailDTO{
			RefaccionID:  e.PartID,
			Clave:        part.Clave,
			Descripcion:  part.Descripcion,
			UnidadMedida: part.UnidadMedida,
			Existencia:   e.Existencia,
		})
	}
	return result, nil
}

// Differential calcula, por partida de la OC, la diferencia entre lo pedido
// y lo recibido acumulado en todas sus recepciones. Una refacción puede
// recibirse en varias recepciones parciales.
func (uc *UseCase) Differential(_ context.Context, purchaseOrderID int64) ([]dto.DifferentialDTO, error) {
	oc, err := uc.purchaseOrderRepo.GetByID(purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if oc == nil {
		return nil, domain.ErrNotFound
	}
	receipts, err := uc.receiptRepo.ListByPurchaseOrder(purchaseOrderID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DifferentialDTO, 0, len(oc.Lines))
	for _, line := range oc.Lines {
		var recibido int64
		for _, rec := range receipts {
			for _, det := range rec.Lines {
				if det.PartID == line.PartID {
					recibido += det.CantidadRecibida
				}
			}
		}
		part, err := uc.partRepo.GetByID(line.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		result = append(result, dto.DifferentialDTO{
			RefaccionID: line.PartID,
			Clave:       part.Clave,
			Descripcion: part.Descripcion,
			CantidadOC:  line.Cantidad,
			Recibido:    recibido,
			Diferencia:  line.Cantidad - recibido,
		})
	}
	return result, nil
}

// PriceAnomalies recorre todas las partidas de compra en orden de inserción:
// primero calcula el precio mínimo histórico por refacción y después marca
// toda partida cuyo precio supere ese mínimo. Una refacción con una sola
// compra nunca aparece (no hay mínimo previo que superar). La salida conserva
// el orden de recorrido; quien necesite otro orden debe ordenar aparte.
func (uc *UseCase) PriceAnomalies(_ context.Context) ([]dto.PriceAnomalyDTO, error) {
	lines, err := uc.purchaseOrderRepo.ListAllLines()
	if err != nil {
		return nil, err
	}

	minByPart := make(map[int64]decimal.Decimal)
	for _, line := range lines {
		min, ok := minByPart[line.PartID]
		if !ok || line.PrecioUnitario.LessThan(min) {
			minByPart[line.PartID] = line.PrecioUnitario
		}
	}

	alertas := make([]dto.PriceAnomalyDTO, 0)
	for _, line := range lines {
		min := minByPart[line.PartID]
		if !line.PrecioUnitario.GreaterThan(min) {
			continue
		}
		part, err := uc.partRepo.GetByID(line.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		diferencia := line.PrecioUnitario.Sub(min)
		porcentaje := decimal.Zero
		if min.GreaterThan(decimal.Zero) {
			porcentaje = diferencia.Div(min).Mul(decimal.NewFromInt(100)).Round(2)
		}
		alertas = append(alertas, dto.PriceAnomalyDTO{
			RefaccionID:        line.PartID,
			Clave:              part.Clave,
			Descripcion:        part.Descripcion,
			PrecioHistoricoMin: min,
			PrecioActual:       line.PrecioUnitario,
			Diferencia:         diferencia,
			Porcentaje:         porcentaje,
			Mensaje:            "ALERTA: compra más cara que el histórico",
		})
	}
	return alertas, nil
}

// CostByVehicle acumula por vehículo el costo de las refacciones entregadas.
// El precio unitario es el de la partida de compra más reciente de la
// refacción (mayor id de partida), no el precio pagado en la recepción que
// surtió esas piezas; cero si la refacción nunca se ha comprado. Este
// criterio replica el comportamiento del sistema en producción.
func (uc *UseCase) CostByVehicle(_ context.Context) ([]dto.VehicleCostDTO, error) {
	issues, err := uc.issueRepo.List()
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]decimal.Decimal)
	order := make([]int64, 0)
	for _, issue := range issues {
		os, err := uc.serviceOrderRepo.GetByID(issue.ServiceOrderID)
		if err != nil {
			return nil, err
		}
		if os == nil {
			return nil, domain.ErrNotFound
		}
		for _, det := range issue.Lines {
			line, err := uc.purchaseOrderRepo.LatestLineByPart(det.PartID)
			if err != nil {
				return nil, err
			}
			precio := decimal.Zero
			if line != nil {
				precio = line.PrecioUnitario
			}
			costo := precio.Mul(decimal.NewFromInt(det.Cantidad))
			if _, ok := totals[os.VehicleID]; !ok {
				order = append(order, os.VehicleID)
			}
			totals[os.VehicleID] = totals[os.VehicleID].Add(costo)
		}
	}

	result := make([]dto.VehicleCostDTO, 0, len(order))
	for _, vehID := range order {
		veh, err := uc.vehicleRepo.GetByID(vehID)
		if err != nil {
			return nil, err
		}
		if veh == nil {
			return nil, domain.ErrNotFound
		}
		result = append(result, dto.VehicleCostDTO{
			VehiculoID:   vehID,
			Placas:       veh.Placas,
			Marca:        veh.Marca,
			Modelo:       veh.Modelo,
			TotalGastado: totals[vehID],
		})
	}
	return result, nil
}

// UsageRanking devuelve las refacciones ordenadas por total entregado
// descendente. Orden estable: los empates conservan el orden en que la
// refacción apareció por primera vez en las salidas.
func (uc *UseCase) UsageRanking(_ context.Context) ([]dto.UsageRankDTO, error) {
	issues, err := uc.issueRepo.List()
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]int64)
	order := make([]int64, 0)
	for _, issue := range issues {
		for _, det := range issue.Lines {
			if _, ok := totals[det.PartID]; !ok {
				order = append(order, det.PartID)
			}
			totals[det.PartID] += det.Cantidad
		}
	}

	result := make([]dto.UsageRankDTO, 0, len(order))
	for _, partID := range order {
		part, err := uc.partRepo.GetByID(partID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		result = append(result, dto.UsageRankDTO{
			RefaccionID: partID,
			Clave:       part.Clave,
			Descripcion: part.Descripcion,
			TotalUsado:  totals[partID],
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalUsado > result[j].TotalUsado
	})
	return result, nil
}

// LowStock devuelve las refacciones con existencia menor o igual al umbral.
func (uc *UseCase) LowStock(ctx context.Context, minimo int64) ([]dto.InventoryDetailDTO, error) {
	detail, err := uc.InventoryDetail(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryDetailDTO, 0)
	for _, item := range detail {
		if item.Existencia <= minimo {
			result = append(result, item)
		}
	}
	return result, nil
}

// ConsumptionByServiceOrder lista lo entregado a una orden de servicio.
func (uc *UseCase) ConsumptionByServiceOrder(_ context.Context, serviceOrderID int64) ([]dto.ConsumptionDTO, error) {
	os, err := uc.serviceOrderRepo.GetByID(serviceOrderID)
	if err != nil {
		return nil, err
	}
	if os == nil {
		return nil, domain.ErrNotFound
	}
	issues, err := uc.issueRepo.ListByServiceOrder(serviceOrderID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ConsumptionDTO, 0)
	for _, issue := range issues {
		for _, det := range issue.Lines {
			part, err := uc.partRepo.GetByID(det.PartID)
			if err != nil {
				return nil, err
			}
			if part == nil {
				return nil, domain.ErrNotFound
			}
			result = append(result, dto.ConsumptionDTO{
				RefaccionID:  det.PartID,
				Clave:        part.Clave,
				Descripcion:  part.Descripcion,
				Cantidad:     det.Cantidad,
				FechaSalida:  issue.FechaSalida,
				EntregadoPor: issue.EntregadoPor,
				RecibidoPor:  issue.RecibidoPor,
			})
		}
	}
	return result, nil
}

// PurchasesBySupplier resume las OC de un proveedor con su total.
func (uc *UseCase) PurchasesBySupplier(_ context.Context, proveedor string) ([]dto.SupplierPurchaseDTO, error) {
	orders, err := uc.purchaseOrderRepo.ListBySupplier(proveedor)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierPurchaseDTO, 0, len(orders))
	for _, oc := range orders {
		total := decimal.Zero
		for _, line := range oc.Lines {
			total = total.Add(line.PrecioUnitario.Mul(decimal.NewFromInt(line.Cantidad)))
		}
		result = append(result, dto.SupplierPurchaseDTO{
			OCID:   oc.ID,
			Fecha:  oc.FechaOC,
			Estado: oc.Estado,
			Total:  total,
		})
	}
	return result, nil
}

// Dashboard arma el resumen general del taller a partir de los demás reportes.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	abiertas, err := uc.serviceOrderRepo.CountOpen()
	if err != nil {
		return nil, err
	}
	entries, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	var total int64
	var bajo int
	for _, e := range entries {
		total += e.Existencia
		if e.Existencia <= LowStockDefault {
			bajo++
		}
	}
	ranking, err := uc.UsageRanking(ctx)
	if err != nil {
		return nil, err
	}
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	alertas, err := uc.PriceAnomalies(ctx)
	if err != nil {
		return nil, err
	}
	gasto, err := uc.CostByVehicle(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		OrdenesAbiertas:           abiertas,
		InventarioTotal:           total,
		RefaccionesBajoInventario: bajo,
		TopRefaccionesUsadas:      ranking,
		AlertasCompraCara:         alertas,
		GastoPorVehiculo:          gasto,
	}, nil
}
