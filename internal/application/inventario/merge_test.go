package inventario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
)

func item(id int64, nombre string, stock int64, seleccion int64) dto.ProductoCatalogo {
	return dto.ProductoCatalogo{
		ID:                   id,
		Nombre:               nombre,
		StockActual:          stock,
		PrecioVenta:          decimal.New(2, 0),
		CantidadSeleccionada: seleccion,
	}
}

// Un refresco del catálogo no pierde las cantidades ya seleccionadas.
func TestMergeSelections_ConservaSeleccionPorID(t *testing.T) {
	previo := []dto.ProductoCatalogo{
		item(1, "Harina PAN 1kg", 10, 3),
		item(2, "Café 250g", 4, 1),
	}
	fresco := []dto.ProductoCatalogo{
		item(1, "Harina PAN 1kg", 8, 0), // stock cambió en el refresco
		item(2, "Café 250g", 4, 0),
	}

	out := inventario.MergeSelections(fresco, previo)
	require.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].CantidadSeleccionada)
	assert.Equal(t, int64(8), out[0].StockActual, "manda el stock fresco")
	assert.Equal(t, int64(1), out[1].CantidadSeleccionada)
}

// Productos que desaparecieron del catálogo se descartan con su selección;
// los nuevos entran en cero.
func TestMergeSelections_DescartaDesaparecidosYNuevosEnCero(t *testing.T) {
	previo := []dto.ProductoCatalogo{
		item(1, "Harina PAN 1kg", 10, 3),
		item(9, "Descontinuado", 2, 2),
	}
	fresco := []dto.ProductoCatalogo{
		item(1, "Harina PAN 1kg", 10, 0),
		item(5, "Azúcar 1kg", 6, 0),
	}

	out := inventario.MergeSelections(fresco, previo)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[0].CantidadSeleccionada)
	assert.Equal(t, int64(5), out[1].ID)
	assert.Zero(t, out[1].CantidadSeleccionada)
}

// La selección previa no se recorta contra el stock nuevo: esa validación es
// de la facturación, no del refresco.
func TestMergeSelections_NoRecortaContraStock(t *testing.T) {
	previo := []dto.ProductoCatalogo{item(1, "Harina PAN 1kg", 10, 9)}
	fresco := []dto.ProductoCatalogo{item(1, "Harina PAN 1kg", 2, 0)}

	out := inventario.MergeSelections(fresco, previo)
	require.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].CantidadSeleccionada)
	assert.Equal(t, int64(2), out[0].StockActual)
}

func TestMergeSelections_SinPrevio(t *testing.T) {
	fresco := []dto.ProductoCatalogo{item(1, "Harina PAN 1kg", 10, 0)}
	out := inventario.MergeSelections(fresco, nil)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].CantidadSeleccionada)
}
