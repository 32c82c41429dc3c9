package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
)

// ProductoHandler maneja las peticiones HTTP para el inventario local.
type ProductoHandler struct {
	uc *inventario.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *inventario.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Upsert godoc
// @Summary      Crear producto o acumular stock
// @Description  Si el nombre ya existe suma la cantidad al stock y actualiza el precio; si no, crea el producto.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertProductoRequest  true  "Producto"
// @Success      200   {object}  dto.UpsertProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearOActualizar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar o sugerir productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Prefijo o fragmento del nombre (máx. 10 sugerencias)"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	var (
		out []dto.ProductoResponse
		err error
	)
	if q == "" {
		out, err = h.uc.List(c.Context())
	} else {
		out, err = h.uc.Search(c.Context(), q)
	}
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Falla con 409 si alguna línea de factura referencia el producto.
// @Tags         productos
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Catalogo godoc
// @Summary      Catálogo de toma de pedido
// @Description  Inventario completo con cantidad seleccionada en cero.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductoCatalogo
// @Router       /api/catalogo [get]
func (h *ProductoHandler) Catalogo(c *fiber.Ctx) error {
	out, err := h.uc.Catalogo(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// MergeCatalogo godoc
// @Summary      Refrescar catálogo conservando la selección
// @Description  Devuelve el catálogo actual con las cantidades ya seleccionadas por el vendedor aplicadas por ID; los productos que desaparecieron se descartan.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MergeCatalogoRequest  true  "Selección en curso"
// @Success      200   {array}  dto.ProductoCatalogo
// @Router       /api/catalogo/merge [post]
func (h *ProductoHandler) MergeCatalogo(c *fiber.Ctx) error {
	var in dto.MergeCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fresco, err := h.uc.Catalogo(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(inventario.MergeSelections(fresco, in.Seleccion))
}
