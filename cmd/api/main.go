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
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/importacion"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/activos-api/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/activos-api/internal/infrastructure/qr"
	"github.com/jhoicas/activos-api/internal/infrastructure/sesion"
	httpRouter "github.com/jhoicas/activos-api/internal/interfaces/http"
	"github.com/jhoicas/activos-api/pkg/config"
	"github.com/jhoicas/activos-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	activoRepo := postgres.NewActivoRepository(pool)
	ubicacionRepo := postgres.NewUbicacionRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	mantenimientoRepo := postgres.NewMantenimientoRepository(pool)
	historialRepo := postgres.NewHistorialRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store := sesion.NewMemoryStore(time.Duration(cfg.Session.TTL()) * time.Minute)
	authUC := auth.NewAuthUseCase(usuarioRepo, store)

	qrGen := infraqr.NewGenerator(cfg.App.BaseURL)
	pdfGen := infrapdf.NewEtiquetaGenerator()

	activoUC := usecase.NewActivoUseCase(activoRepo, txRunner)
	ubicacionUC := usecase.NewUbicacionUseCase(ubicacionRepo)
	compraUC := usecase.NewCompraUseCase(compraRepo)
	mantenimientoUC := usecase.NewMantenimientoUseCase(mantenimientoRepo, activoRepo)
	historialUC := usecase.NewHistorialUseCase(historialRepo, activoRepo)
	auditoriaUC := usecase.NewAuditoriaUseCase(auditoriaRepo, activoRepo, ubicacionRepo, txRunner)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	etiquetaUC := usecase.NewEtiquetaUseCase(activoRepo, ubicacionRepo, qrGen, pdfGen)
	importarUC := importacion.NewUseCase(activoRepo)

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Static("/static", "./web/static")

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ActivoUC:        activoUC,
		UbicacionUC:     ubicacionUC,
		CompraUC:        compraUC,
		MantenimientoUC: mantenimientoUC,
		HistorialUC:     historialUC,
		AuditoriaUC:     auditoriaUC,
		DashboardUC:     dashboardUC,
		EtiquetaUC:      etiquetaUC,
		ImportarUC:      importarUC,
		Session:         cfg.Session,
		AppName:         cfg.App.Name,
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
