package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/backend"
)

// RutaHandler proxy hacia el backend central: rutas de visita, roster remoto,
// pre-ventas y sincronización de inventario asignado.
type RutaHandler struct {
	backend *backend.Client
	sync    *inventario.SyncUseCase
}

// NewRutaHandler construye el handler.
func NewRutaHandler(cli *backend.Client, sync *inventario.SyncUseCase) *RutaHandler {
	return &RutaHandler{backend: cli, sync: sync}
}

// BuscarLocalesRemotos godoc
// @Summary      Buscar locales en el backend central
// @Description  Un 404 del backend se devuelve como lista vacía.
// @Tags         rutas
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Clave de búsqueda"
// @Success      200  {array}  backend.LocalRemoto
// @Router       /api/remoto/locales [get]
func (h *RutaHandler) BuscarLocalesRemotos(c *fiber.Ctx) error {
	clave := c.Query("q")
	if clave == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "parámetro q requerido"})
	}
	out, err := h.backend.BuscarLocales(c.Context(), clave)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetRuta godoc
// @Summary      Ruta de visitas vigente del vendedor autenticado
// @Tags         rutas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  backend.Ruta
// @Router       /api/rutas [get]
func (h *RutaHandler) GetRuta(c *fiber.Ctx) error {
	ruta, err := h.backend.FetchRuta(c.Context(), GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ruta)
}

// GenerarRuta godoc
// @Summary      Regenerar la ruta del día
// @Description  Borra la ruta vigente si existe (que ya no exista no es error) y pide una nueva desde la posición actual.
// @Tags         rutas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerarRutaRequest  true  "Posición del vendedor"
// @Success      201   {object}  backend.Ruta
// @Router       /api/rutas [post]
func (h *RutaHandler) GenerarRuta(c *fiber.Ctx) error {
	var in dto.GenerarRutaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vendedorID := GetUserID(c)

	actual, err := h.backend.FetchRuta(c.Context(), vendedorID)
	if err == nil && actual != nil && actual.ID != 0 {
		if err := h.backend.DeleteRutaIfExists(c.Context(), actual.ID); err != nil {
			return responderError(c, err)
		}
	}
	ruta, err := h.backend.GenerarRuta(c.Context(), backend.GenerarRutaRequest{
		VendedorID: vendedorID,
		Lat:        in.Lat,
		Lon:        in.Lon,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ruta)
}

// DeleteRuta godoc
// @Summary      Eliminar una ruta concreta
// @Description  Si la ruta no existe en el backend responde 404.
// @Tags         rutas
// @Security     Bearer
// @Param        id  path  int  true  "ID de la ruta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rutas/{id} [delete]
func (h *RutaHandler) DeleteRuta(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.backend.DeleteRutaOrFail(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CrearPreVenta godoc
// @Summary      Remitir un pedido de pre-venta al backend central
// @Description  La referencia idempotente del pedido se genera aquí (UUID). El mensaje de error del backend se propaga al cliente.
// @Tags         rutas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPreVentaRequest  true  "Pedido"
// @Success      201   {object}  backend.PreVentaResponse
// @Router       /api/preventas [post]
func (h *RutaHandler) CrearPreVenta(c *fiber.Ctx) error {
	var in dto.CrearPreVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocalID <= 0 || len(in.Lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "local y al menos una línea son requeridos"})
	}
	lineas := make([]backend.PreVentaLinea, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		lineas = append(lineas, backend.PreVentaLinea{
			ProductoID:     l.ProductoID,
			CantidadPedido: l.CantidadPedido,
		})
	}
	out, err := h.backend.CrearPreVenta(c.Context(), backend.PreVentaRequest{
		Referencia: uuid.NewString(),
		LocalID:    in.LocalID,
		VendedorID: GetUserID(c),
		Lineas:     lineas,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SyncInventario godoc
// @Summary      Sincronizar inventario asignado
// @Description  Trae las asignaciones pendientes del backend central y las aplica al almacén local (upsert por nombre).
// @Tags         rutas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UpsertProductoResponse
// @Router       /api/inventario/sync [post]
func (h *RutaHandler) SyncInventario(c *fiber.Ctx) error {
	out, err := h.sync.Sincronizar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
