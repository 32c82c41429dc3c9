package inventario

import (
	"context"

	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/backend"
)

// TxRunner ejecuta el callback dentro de una transacción con el repositorio
// de productos atado a la tx. El upsert de inventario lo usa para que su
// leer-luego-escribir sea atómico dentro de una misma llamada.
type TxRunner interface {
	Run(ctx context.Context, fn func(productoRepo repository.ProductoRepository) error) error
}

// InventarioRemoto obtiene del backend central las asignaciones de inventario
// pendientes para este vendedor.
type InventarioRemoto interface {
	GetInventario(ctx context.Context) ([]backend.InventarioItem, error)
}
