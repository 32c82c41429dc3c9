package facturacion

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

// CrearFacturaUseCase crea una factura y descuenta el stock de cada producto
// en una sola transacción: o se persisten cabecera, todas las líneas y todos
// los descuentos de stock, o no queda nada escrito.
type CrearFacturaUseCase struct {
	txRunner    TxRunner
	localRepo   repository.LocalRepository
	facturaRepo repository.FacturaRepository
}

// NewCrearFacturaUseCase construye el caso de uso.
func NewCrearFacturaUseCase(
	txRunner TxRunner,
	localRepo repository.LocalRepository,
	facturaRepo repository.FacturaRepository,
) *CrearFacturaUseCase {
	return &CrearFacturaUseCase{
		txRunner:    txRunner,
		localRepo:   localRepo,
		facturaRepo: facturaRepo,
	}
}

// CrearFactura registra una venta contra un local.
//
// Validación previa (sin tocar el almacén): la lista de líneas no puede ser
// vacía, cada cantidad debe ser positiva y no mayor que el stock conocido.
// Luego, dentro de una transacción: inserta la cabecera con los totales
// (neto, bruto = neto × 1.16), luego cada línea, y actualiza el stock
// de cada producto a stock_conocido − cantidad. Si cualquier paso falla
// —incluido un stock que quedaría negativo— la transacción se revierte
// completa y el almacén queda como antes de la llamada.
func (uc *CrearFacturaUseCase) CrearFactura(ctx context.Context, localID int64, lineas []dto.LineaVentaRequest) (*dto.FacturaCreadaResponse, error) {
	if len(lineas) == 0 {
		return nil, fmt.Errorf("la lista de productos para facturar está vacía: %w", domain.ErrInvalidInput)
	}
	for _, l := range lineas {
		if l.ProductoID <= 0 || l.Cantidad <= 0 {
			return nil, fmt.Errorf("línea con producto %d y cantidad %d: %w", l.ProductoID, l.Cantidad, domain.ErrInvalidInput)
		}
		if l.PrecioVenta.IsNegative() {
			return nil, fmt.Errorf("precio negativo para el producto %d: %w", l.ProductoID, domain.ErrInvalidInput)
		}
		if l.Cantidad > l.StockActual {
			return nil, fmt.Errorf("producto %d: se piden %d con stock %d: %w",
				l.ProductoID, l.Cantidad, l.StockActual, domain.ErrInsufficientStock)
		}
	}

	local, err := uc.localRepo.GetByID(localID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, fmt.Errorf("local %d: %w", localID, domain.ErrNotFound)
	}

	// Totales: neto = Σ(precio × cantidad); bruto = neto + neto × 16%.
	subtotal := decimal.Zero
	for _, l := range lineas {
		subtotal = subtotal.Add(l.PrecioVenta.Mul(decimal.NewFromInt(l.Cantidad)))
	}
	impuesto := subtotal.Mul(entity.TasaIVA)
	totalBruto := subtotal.Add(impuesto)

	factura := &entity.Factura{
		LocalID:      localID,
		FechaFactura: time.Now().UTC(),
		TotalNeto:    subtotal,
		TotalBruto:   totalBruto,
	}

	err = uc.txRunner.RunFacturacion(ctx, func(
		facturaRepo repository.FacturaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := facturaRepo.Create(factura); err != nil {
			return err
		}
		for _, l := range lineas {
			linea := &entity.FacturaLinea{
				FacturaID:      factura.ID,
				ProductoID:     l.ProductoID,
				Cantidad:       l.Cantidad,
				PrecioUnitario: l.PrecioVenta,
			}
			if err := facturaRepo.CreateLinea(linea); err != nil {
				return err
			}
			// Seguro dentro de la transacción: la validación previa ya lo
			// impide, pero un stock negativo jamás debe confirmarse.
			nuevoStock := l.StockActual - l.Cantidad
			if nuevoStock < 0 {
				return fmt.Errorf("producto %d quedaría en %d: %w", l.ProductoID, nuevoStock, domain.ErrInsufficientStock)
			}
			if err := productoRepo.UpdateStock(l.ProductoID, nuevoStock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.FacturaCreadaResponse{
		FacturaID:  factura.ID,
		TotalBruto: totalBruto,
	}, nil
}

// GetFactura obtiene una factura con su detalle completo.
func (uc *CrearFacturaUseCase) GetFactura(ctx context.Context, id int64) (*dto.FacturaDetalleResponse, error) {
	f, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	lineas, err := uc.facturaRepo.GetLineas(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.FacturaDetalleResponse{
		FacturaResponse: toFacturaResponse(f, ""),
		Lineas:          make([]dto.FacturaLineaResponse, 0, len(lineas)),
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.FacturaLineaResponse{
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			NombreProducto: l.NombreProducto,
			PrecioActual:   l.PrecioActual,
		})
	}
	return resp, nil
}

// DatosParaPDF reúne las entidades necesarias para renderizar la factura.
func (uc *CrearFacturaUseCase) DatosParaPDF(ctx context.Context, id int64) (*entity.Factura, *entity.Local, []*entity.FacturaLineaDetalle, error) {
	f, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if f == nil {
		return nil, nil, nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	local, err := uc.localRepo.GetByID(f.LocalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if local == nil {
		return nil, nil, nil, fmt.Errorf("local %d de la factura %d: %w", f.LocalID, id, domain.ErrNotFound)
	}
	lineas, err := uc.facturaRepo.GetLineas(id)
	if err != nil {
		return nil, nil, nil, err
	}
	return f, local, lineas, nil
}

// FacturasPorLocal devuelve el historial de facturas de un local.
func (uc *CrearFacturaUseCase) FacturasPorLocal(ctx context.Context, localID int64) ([]dto.FacturaResponse, error) {
	facturas, err := uc.facturaRepo.ListByLocal(localID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, toFacturaResponse(f, ""))
	}
	return out, nil
}

// FacturasDelDia devuelve las facturas emitidas hoy, con el nombre del local.
func (uc *CrearFacturaUseCase) FacturasDelDia(ctx context.Context) ([]dto.FacturaResponse, error) {
	facturas, err := uc.facturaRepo.ListDelDia(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, toFacturaResponse(&f.Factura, f.NombreLocal))
	}
	return out, nil
}

func toFacturaResponse(f *entity.Factura, nombreLocal string) dto.FacturaResponse {
	return dto.FacturaResponse{
		ID:           f.ID,
		LocalID:      f.LocalID,
		FechaFactura: f.FechaFactura.Format(time.RFC3339),
		TotalNeto:    f.TotalNeto,
		TotalBruto:   f.TotalBruto,
		NombreLocal:  nombreLocal,
	}
}
