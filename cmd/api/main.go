package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/ventas-campo/internal/application/auth"
	"github.com/tu-usuario/ventas-campo/internal/application/clientes"
	"github.com/tu-usuario/ventas-campo/internal/application/facturacion"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/backend"
	infrapdf "github.com/tu-usuario/ventas-campo/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/ventas-campo/internal/interfaces/http"
	"github.com/tu-usuario/ventas-campo/pkg/config"
	"github.com/tu-usuario/ventas-campo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	// El almacén local es la base de la operación en campo: si no abre o el
	// esquema no se puede aplicar, no hay nada que servir.
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura del almacén SQLite")
	}
	defer db.Close()

	localRepo := sqlite.NewLocalRepository(db)
	productoRepo := sqlite.NewProductoRepository(db)
	facturaRepo := sqlite.NewFacturaRepository(db)
	usuarioRepo := sqlite.NewUsuarioRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	backendCli := backend.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)

	localUC := clientes.NewLocalUseCase(localRepo)
	productoUC := inventario.NewProductoUseCase(txRunner, productoRepo)
	syncUC := inventario.NewSyncUseCase(backendCli, productoUC)
	crearFacturaUC := facturacion.NewCrearFacturaUseCase(txRunner, localRepo, facturaRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pdfGenerator := infrapdf.NewFacturaPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas Campo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LocalUC:      localUC,
		ProductoUC:   productoUC,
		SyncUC:       syncUC,
		CrearFactura: crearFacturaUC,
		PDFGenerator: pdfGenerator,
		Backend:      backendCli,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
