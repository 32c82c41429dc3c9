package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/facturacion"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/pdf"
)

// FacturaHandler maneja las peticiones HTTP de facturación.
type FacturaHandler struct {
	uc  *facturacion.CrearFacturaUseCase
	pdf *pdf.FacturaPDFGenerator
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *facturacion.CrearFacturaUseCase, pdfGen *pdf.FacturaPDFGenerator) *FacturaHandler {
	return &FacturaHandler{uc: uc, pdf: pdfGen}
}

// Create godoc
// @Summary      Facturar una venta
// @Description  Inserta cabecera, líneas y descuenta stock en una sola transacción. Bruto = neto × 1.16.
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearFacturaRequest  true  "Venta"
// @Success      201   {object}  dto.FacturaCreadaResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearFactura(c.Context(), in.LocalID, in.Lineas)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura con su detalle
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetFactura(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DelDia godoc
// @Summary      Facturas emitidas hoy
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FacturaResponse
// @Router       /api/facturas/hoy [get]
func (h *FacturaHandler) DelDia(c *fiber.Ctx) error {
	out, err := h.uc.FacturasDelDia(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PorLocal godoc
// @Summary      Historial de facturas de un local
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del local"
// @Success      200  {array}  dto.FacturaResponse
// @Router       /api/locales/{id}/facturas [get]
func (h *FacturaHandler) PorLocal(c *fiber.Ctx) error {
	localID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.FacturasPorLocal(c.Context(), localID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Factura en PDF
// @Tags         facturas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/pdf [get]
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	factura, local, lineas, err := h.uc.DatosParaPDF(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	doc, err := h.pdf.Generate(factura, local, lineas)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(doc)
}
