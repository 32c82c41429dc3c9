package inventario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/sqlite"
)

func nuevoProductoUC(t *testing.T) *inventario.ProductoUseCase {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return inventario.NewProductoUseCase(sqlite.NewTxRunner(db), sqlite.NewProductoRepository(db))
}

func upsert(nombre string, cantidad int64, precio string) dto.UpsertProductoRequest {
	return dto.UpsertProductoRequest{
		Nombre:      nombre,
		Cantidad:    cantidad,
		PrecioVenta: decimal.RequireFromString(precio),
	}
}

// Primera llamada crea; la segunda acumula stock y sobreescribe el precio.
func TestCrearOActualizar_CreaYLuegoAcumula(t *testing.T) {
	uc := nuevoProductoUC(t)
	ctx := context.Background()

	creado, err := uc.CrearOActualizar(ctx, upsert("Harina PAN 1kg", 10, "2.00"))
	require.NoError(t, err)
	assert.Equal(t, dto.AccionCreado, creado.Accion)
	assert.Equal(t, int64(10), creado.StockActual)

	actualizado, err := uc.CrearOActualizar(ctx, upsert("Harina PAN 1kg", 5, "2.25"))
	require.NoError(t, err)
	assert.Equal(t, dto.AccionActualizado, actualizado.Accion)
	assert.Equal(t, creado.ID, actualizado.ID, "debe ser el mismo producto")
	assert.Equal(t, int64(15), actualizado.StockActual)

	productos, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.True(t, productos[0].PrecioVenta.Equal(decimal.RequireFromString("2.25")),
		"el precio debe ser el de la última entrega: %s", productos[0].PrecioVenta)
}

func TestCrearOActualizar_Validaciones(t *testing.T) {
	uc := nuevoProductoUC(t)
	ctx := context.Background()

	_, err := uc.CrearOActualizar(ctx, upsert("  ", 5, "1.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.CrearOActualizar(ctx, upsert("Harina PAN 1kg", 0, "1.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.CrearOActualizar(ctx, upsert("Harina PAN 1kg", 3, "-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

// El nombre se compara exacto: variantes crean productos distintos.
func TestCrearOActualizar_NombreExacto(t *testing.T) {
	uc := nuevoProductoUC(t)
	ctx := context.Background()

	_, err := uc.CrearOActualizar(ctx, upsert("Café 250g", 4, "3.50"))
	require.NoError(t, err)
	otro, err := uc.CrearOActualizar(ctx, upsert("café 250g", 2, "3.50"))
	require.NoError(t, err)
	assert.Equal(t, dto.AccionCreado, otro.Accion)
}

func TestSearch_LimitaSugerencias(t *testing.T) {
	uc := nuevoProductoUC(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := uc.CrearOActualizar(ctx, upsert("Producto "+string(rune('A'+i)), 1, "1.00"))
		require.NoError(t, err)
	}

	sugerencias, err := uc.Search(ctx, "Producto")
	require.NoError(t, err)
	assert.Len(t, sugerencias, 10, "el autocompletado se corta en 10")
}

func TestCatalogo_SeleccionEnCero(t *testing.T) {
	uc := nuevoProductoUC(t)
	ctx := context.Background()
	_, err := uc.CrearOActualizar(ctx, upsert("Harina PAN 1kg", 10, "2.00"))
	require.NoError(t, err)

	catalogo, err := uc.Catalogo(ctx)
	require.NoError(t, err)
	require.Len(t, catalogo, 1)
	assert.Zero(t, catalogo[0].CantidadSeleccionada)
	assert.Equal(t, int64(10), catalogo[0].StockActual)
}
