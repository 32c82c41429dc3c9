package inventario

import (
	"context"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
)

// SyncUseCase trae del backend central las asignaciones de inventario del
// vendedor y las aplica al almacén local vía el upsert de productos.
type SyncUseCase struct {
	remoto     InventarioRemoto
	productoUC *ProductoUseCase
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(remoto InventarioRemoto, productoUC *ProductoUseCase) *SyncUseCase {
	return &SyncUseCase{remoto: remoto, productoUC: productoUC}
}

// Sincronizar aplica cada asignación remota con CrearOActualizar: productos
// nuevos se crean, existentes acumulan la cantidad asignada. Devuelve el
// resultado por producto. Una asignación inválida corta la sincronización y
// propaga el error; las ya aplicadas quedan (cada upsert es atómico por sí
// mismo).
func (uc *SyncUseCase) Sincronizar(ctx context.Context) ([]dto.UpsertProductoResponse, error) {
	items, err := uc.remoto.GetInventario(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UpsertProductoResponse, 0, len(items))
	for _, item := range items {
		res, err := uc.productoUC.CrearOActualizar(ctx, dto.UpsertProductoRequest{
			Nombre:      item.Nombre,
			Cantidad:    item.Cantidad,
			PrecioVenta: item.PrecioVenta,
		})
		if err != nil {
			return out, err
		}
		out = append(out, *res)
	}
	return out, nil
}
