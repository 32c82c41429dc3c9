package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-campo/internal/application/auth"
	"github.com/tu-usuario/ventas-campo/internal/application/clientes"
	"github.com/tu-usuario/ventas-campo/internal/application/facturacion"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/backend"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LocalUC      *clientes.LocalUseCase
	ProductoUC   *inventario.ProductoUseCase
	SyncUC       *inventario.SyncUseCase
	CrearFactura *facturacion.CrearFacturaUseCase
	PDFGenerator *pdf.FacturaPDFGenerator
	Backend      *backend.Client
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locales (protegido)
	locales := protected.Group("/locales")
	localHandler := NewLocalHandler(deps.LocalUC)
	locales.Post("/", localHandler.Create)
	locales.Get("/", localHandler.List)
	locales.Get("/:id", localHandler.GetByID)
	locales.Delete("/:id", localHandler.Delete)

	// Productos y catálogo (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Upsert)
	productos.Get("/", productoHandler.List)
	productos.Delete("/:id", productoHandler.Delete)
	protected.Get("/catalogo", productoHandler.Catalogo)
	protected.Post("/catalogo/merge", productoHandler.MergeCatalogo)

	// Facturas (protegido)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.CrearFactura, deps.PDFGenerator)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/hoy", facturaHandler.DelDia)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Get("/:id/pdf", facturaHandler.PDF)
	locales.Get("/:id/facturas", facturaHandler.PorLocal)

	// Backend central: rutas de visita, pre-ventas y sincronización (protegido)
	rutaHandler := NewRutaHandler(deps.Backend, deps.SyncUC)
	protected.Get("/remoto/locales", rutaHandler.BuscarLocalesRemotos)
	rutas := protected.Group("/rutas")
	rutas.Get("/", rutaHandler.GetRuta)
	rutas.Post("/", rutaHandler.GenerarRuta)
	rutas.Delete("/:id", rutaHandler.DeleteRuta)
	protected.Post("/preventas", rutaHandler.CrearPreVenta)
	protected.Post("/inventario/sync", rutaHandler.SyncInventario)
}
