package inventario

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

// sugerenciasMax límite de resultados en búsquedas de autocompletado.
const sugerenciasMax = 10

// ProductoUseCase operaciones sobre el inventario local de productos.
type ProductoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{txRunner: txRunner, productoRepo: productoRepo}
}

// CrearOActualizar busca el producto por nombre exacto. Si existe, suma
// cantidad al stock y sobreescribe el precio; si no, lo crea con
// stock = cantidad. Corre dentro de una transacción para que la lectura y la
// escritura no puedan intercalarse con otra llamada.
func (uc *ProductoUseCase) CrearOActualizar(ctx context.Context, in dto.UpsertProductoRequest) (*dto.UpsertProductoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("nombre de producto vacío: %w", domain.ErrInvalidInput)
	}
	if in.Cantidad <= 0 {
		return nil, fmt.Errorf("cantidad %d: %w", in.Cantidad, domain.ErrInvalidInput)
	}
	if in.PrecioVenta.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}

	var out *dto.UpsertProductoResponse
	err := uc.txRunner.Run(ctx, func(productoRepo repository.ProductoRepository) error {
		existente, err := productoRepo.GetByNombre(nombre)
		if err != nil {
			return err
		}
		if existente != nil {
			nuevoStock := existente.StockActual + in.Cantidad
			if err := productoRepo.UpdateStockYPrecio(existente.ID, nuevoStock, in.PrecioVenta); err != nil {
				return err
			}
			out = &dto.UpsertProductoResponse{ID: existente.ID, Accion: dto.AccionActualizado, StockActual: nuevoStock}
			return nil
		}
		nuevo := &entity.Producto{Nombre: nombre, StockActual: in.Cantidad, PrecioVenta: in.PrecioVenta}
		if err := productoRepo.Create(nuevo); err != nil {
			return err
		}
		out = &dto.UpsertProductoResponse{ID: nuevo.ID, Accion: dto.AccionCreado, StockActual: nuevo.StockActual}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todos los productos del inventario.
func (uc *ProductoUseCase) List(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, err
	}
	return toProductoResponses(productos), nil
}

// Search devuelve sugerencias de productos por coincidencia parcial de nombre.
func (uc *ProductoUseCase) Search(ctx context.Context, termino string) ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.Search(termino, sugerenciasMax)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(productos), nil
}

// Catalogo devuelve el inventario como catálogo de toma de pedido, con la
// cantidad seleccionada en cero.
func (uc *ProductoUseCase) Catalogo(ctx context.Context) ([]dto.ProductoCatalogo, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoCatalogo, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoCatalogo{
			ID:          p.ID,
			Nombre:      p.Nombre,
			StockActual: p.StockActual,
			PrecioVenta: p.PrecioVenta,
		})
	}
	return out, nil
}

// Eliminar borra un producto del inventario. Falla con ErrProductoEnUso si
// alguna línea de factura lo referencia.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.productoRepo.Delete(id)
}

func toProductoResponses(productos []*entity.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			StockActual: p.StockActual,
			PrecioVenta: p.PrecioVenta,
		})
	}
	return out
}
