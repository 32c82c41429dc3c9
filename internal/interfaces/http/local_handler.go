package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-campo/internal/application/clientes"
	"github.com/tu-usuario/ventas-campo/internal/application/dto"
)

// LocalHandler maneja las peticiones HTTP para locales (protegido).
type LocalHandler struct {
	uc *clientes.LocalUseCase
}

// NewLocalHandler construye el handler.
func NewLocalHandler(uc *clientes.LocalUseCase) *LocalHandler {
	return &LocalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar local
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarLocalRequest  true  "Datos del local"
// @Success      201   {object}  dto.LocalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locales [post]
func (h *LocalHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarLocalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar o buscar locales
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto de búsqueda (nombre, CI/RIF o ubicación)"
// @Success      200  {array}  dto.LocalResponse
// @Router       /api/locales [get]
func (h *LocalHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	var (
		out []dto.LocalResponse
		err error
	)
	if q == "" {
		out, err = h.uc.List(c.Context())
	} else {
		out, err = h.uc.Buscar(c.Context(), q)
	}
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener local por ID
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del local"
// @Success      200  {object}  dto.LocalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [get]
func (h *LocalHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar local (cascada a sus facturas)
// @Tags         locales
// @Security     Bearer
// @Param        id  path  int  true  "ID del local"
// @Success      204
// @Router       /api/locales/{id} [delete]
func (h *LocalHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
