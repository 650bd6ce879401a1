package router

import (
	"time"

	"ventadiaria/internal/config"
	"ventadiaria/internal/handler"
	"ventadiaria/internal/middleware"
	"ventadiaria/internal/repository"
	"ventadiaria/internal/service"
	"ventadiaria/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	ventaRepo := repository.NewRegistroVentaRepository(db)
	finanzasRepo := repository.NewRegistroFinanzasRepository(db)
	contactoRepo := repository.NewContactoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	contactoSvc := service.NewContactoService(contactoRepo, rdb, time.Duration(cfg.ContactosCacheTTL)*time.Second)
	ventaSvc := service.NewVentaService(ventaRepo, contactoSvc, dispatcher, cfg.PDFStoragePath, cfg.NombreNegocio)
	finanzasSvc := service.NewFinanzasService(finanzasRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	ventasH := handler.NewVentasHandler(ventaSvc)
	finanzasH := handler.NewFinanzasHandler(finanzasSvc)
	contactosH := handler.NewContactosHandler(contactoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		ventas := v1.Group("/ventas/:fecha")
		{
			ventas.GET("", ventasH.ObtenerDia)
			ventas.PUT("", ventasH.GuardarCabecera)
			ventas.GET("/resumen", ventasH.Resumen)
			ventas.POST("/clientes", ventasH.AgregarCliente)
			ventas.GET("/clientes", ventasH.ListarClientes)
			ventas.PUT("/clientes/:id", ventasH.EditarCliente)
			ventas.DELETE("/clientes/:id", ventasH.EliminarCliente)
			ventas.PATCH("/clientes/:id/entrega", ventasH.ToggleEntrega)
			ventas.GET("/clientes/:id/whatsapp", ventasH.LinkWhatsApp)
			ventas.POST("/reporte", ventasH.GenerarReporte)
			ventas.POST("/reporte/email", ventasH.EnviarReporte)
		}

		// /totales is registered before the :fecha group so the static
		// segment wins the route match.
		v1.GET("/finanzas/totales", finanzasH.TotalesGlobales)
		finanzas := v1.Group("/finanzas/:fecha")
		{
			finanzas.GET("", finanzasH.ObtenerDia)
			finanzas.POST("/ingresos", finanzasH.AgregarIngreso)
			finanzas.POST("/gastos", finanzasH.AgregarGasto)
		}

		contactos := v1.Group("/contactos")
		{
			contactos.GET("", contactosH.Listar)
			contactos.POST("", contactosH.Guardar)
			contactos.POST("/importar", contactosH.Importar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
