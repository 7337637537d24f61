package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/importacion"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ActivoUC        *usecase.ActivoUseCase
	UbicacionUC     *usecase.UbicacionUseCase
	CompraUC        *usecase.CompraUseCase
	MantenimientoUC *usecase.MantenimientoUseCase
	HistorialUC     *usecase.HistorialUseCase
	AuditoriaUC     *usecase.AuditoriaUseCase
	DashboardUC     *usecase.DashboardUseCase
	EtiquetaUC      *usecase.EtiquetaUseCase
	ImportarUC      *importacion.UseCase
	Session         config.SessionConfig
	AppName         string
}

// Router registra las rutas de la API y de las páginas.
func Router(app *fiber.App, deps RouterDeps) {
	// La sesión se resuelve una sola vez por petición, para API y páginas.
	app.Use(CargarSesion(SesionDeps{
		AuthUC:     deps.AuthUC,
		Secret:     deps.Session.Secret,
		CookieName: deps.Session.CookieName,
	}))

	api := app.Group("/api")

	// Auth (público; logout valida la sesión por su cuenta)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/status", authHandler.Status)

	// QR (público: es lo que escanea un teléfono sin sesión)
	etiquetaHandler := NewEtiquetaHandler(deps.EtiquetaUC)
	api.Get("/qr/:codigo", etiquetaHandler.QR)

	// Registro de activos (público, como el contrato original de products;
	// solo las mutaciones que atribuyen un usuario exigen sesión)
	activos := api.Group("/activos")
	activoHandler := NewActivoHandler(deps.ActivoUC)
	activos.Get("/", activoHandler.List)
	activos.Post("/", activoHandler.Create)
	activos.Get("/:codigo", activoHandler.GetByCodigo)
	activos.Put("/:codigo", RequiereSesionAPI(), activoHandler.Update)
	activos.Delete("/:codigo", activoHandler.Delete)
	activos.Get("/:codigo/etiqueta.pdf", etiquetaHandler.Etiqueta)

	// Historial y mantenimientos por activo
	historialHandler := NewHistorialHandler(deps.HistorialUC)
	activos.Get("/:codigo/historial", historialHandler.ListByActivo)
	mantenimientoHandler := NewMantenimientoHandler(deps.MantenimientoUC)
	activos.Get("/:codigo/mantenimientos", mantenimientoHandler.ListByActivo)
	activos.Post("/:codigo/mantenimientos", RequiereSesionAPI(), mantenimientoHandler.Registrar)

	// Contrato legacy /api/products (mismos activos, nombres de campo viejos)
	legacy := api.Group("/products")
	legacyHandler := NewLegacyHandler(deps.ActivoUC)
	legacy.Get("/", legacyHandler.List)
	legacy.Post("/", legacyHandler.Create)
	legacy.Delete("/:codigo", legacyHandler.Delete)

	// Satélites administrativos (requieren cookie de sesión vigente)
	protected := api.Group("/", RequiereSesionAPI())

	// Ubicaciones
	ubicaciones := protected.Group("/ubicaciones")
	ubicacionHandler := NewUbicacionHandler(deps.UbicacionUC)
	ubicaciones.Get("/", ubicacionHandler.List)
	ubicaciones.Post("/", ubicacionHandler.Create)
	ubicaciones.Get("/:id", ubicacionHandler.GetByID)
	ubicaciones.Put("/:id", ubicacionHandler.Update)
	ubicaciones.Delete("/:id", ubicacionHandler.Delete)

	// Compras
	compras := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Get("/", compraHandler.List)
	compras.Post("/", compraHandler.Create)
	compras.Get("/:id", compraHandler.GetByID)

	// Auditorías
	auditorias := protected.Group("/auditorias")
	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC)
	auditorias.Get("/", auditoriaHandler.List)
	auditorias.Post("/", auditoriaHandler.Iniciar)
	auditorias.Get("/:id", auditoriaHandler.Get)
	auditorias.Post("/:id/escanear", auditoriaHandler.Escanear)
	auditorias.Post("/:id/finalizar", auditoriaHandler.Finalizar)
	auditorias.Post("/:id/cancelar", auditoriaHandler.Cancelar)
	auditorias.Delete("/:id", auditoriaHandler.Delete)

	// Dashboard e importación masiva
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumen)
	importarHandler := NewImportarHandler(deps.ImportarUC)
	protected.Post("/importar", importarHandler.Importar)

	// Páginas HTML
	paginas := NewPaginasHandler(deps.ActivoUC, deps.HistorialUC, deps.MantenimientoUC, deps.DashboardUC, deps.AppName)
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard") })
	app.Get("/dashboard", RequiereSesionPagina(), paginas.Dashboard)
	app.Get("/auth/login", paginas.Login)
	app.Get("/auth/register", paginas.Register)
	// Detalle público: es la URL que codifica el QR de la etiqueta.
	app.Get("/activo/view/:codigo", paginas.DetalleActivo)
	app.Get("/product/:codigo", paginas.DetalleActivo) // alias legacy
}
