package inventario

import "github.com/tu-usuario/ventas-campo/internal/application/dto"

// MergeSelections combina un catálogo recién refrescado con las cantidades
// que el vendedor ya había seleccionado, para que un refresco periódico no
// pierda el pedido en curso. Independiente de cualquier timer.
//
// Reglas:
//   - el catálogo fresco manda: stock y precio son los nuevos;
//   - la cantidad seleccionada previa se conserva por ID de producto;
//   - productos que desaparecieron del catálogo se descartan junto con su
//     selección;
//   - productos nuevos entran con cantidad seleccionada cero.
func MergeSelections(fresco []dto.ProductoCatalogo, previo []dto.ProductoCatalogo) []dto.ProductoCatalogo {
	seleccion := make(map[int64]int64, len(previo))
	for _, p := range previo {
		if p.CantidadSeleccionada > 0 {
			seleccion[p.ID] = p.CantidadSeleccionada
		}
	}
	out := make([]dto.ProductoCatalogo, 0, len(fresco))
	for _, p := range fresco {
		p.CantidadSeleccionada = seleccion[p.ID]
		out = append(out, p)
	}
	return out
}
