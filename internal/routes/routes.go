package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/auth"
	"github.com/BruksfildServices01/gym-manager/internal/config"
	"github.com/BruksfildServices01/gym-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/gym-manager/internal/infra/repository"
	"github.com/BruksfildServices01/gym-manager/internal/middleware"
	"github.com/BruksfildServices01/gym-manager/internal/ratelimit"
	"github.com/BruksfildServices01/gym-manager/internal/services"
	"github.com/BruksfildServices01/gym-manager/internal/timezone"
	ucCliente "github.com/BruksfildServices01/gym-manager/internal/usecase/cliente"
	ucRegistro "github.com/BruksfildServices01/gym-manager/internal/usecase/registro"
	ucUsuario "github.com/BruksfildServices01/gym-manager/internal/usecase/usuario"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, limiter ratelimit.Limiter) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clienteRepo := infraRepo.NewClienteGormRepository(db)
	usuarioRepo := infraRepo.NewUsuarioGormRepository(db)
	registroRepo := infraRepo.NewRegistroGormRepository(db)
	gimnasioRepo := infraRepo.NewGimnasioGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	usuarioService := services.NewUsuarioService(usuarioRepo, cfg.BcryptCost)
	userDetails := services.NewUserDetailsService(usuarioService)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	clock := timezone.Clock(cfg.Timezone)

	// ======================================================
	// 🧠 USE CASES (CLIENTES)
	// ======================================================
	listClientesUC := ucCliente.NewListClientes(clienteRepo)
	getClienteUC := ucCliente.NewGetCliente(clienteRepo)

	createClienteUC := ucCliente.NewCreateCliente(
		clienteRepo,
		usuarioService,
		auditDispatcher,
		clock,
	)

	updateClienteUC := ucCliente.NewUpdateCliente(
		clienteRepo,
		auditDispatcher,
	)

	deleteClienteUC := ucCliente.NewDeleteCliente(
		clienteRepo,
		usuarioService,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES (USUARIOS / REGISTROS)
	// ======================================================
	createUsuarioUC := ucUsuario.NewCreateUsuario(usuarioService, auditDispatcher)
	deleteUsuarioUC := ucUsuario.NewDeleteUsuario(clienteRepo, usuarioService, auditDispatcher)

	entradaUC := ucRegistro.NewRegistrarEntrada(registroRepo, clock)
	salidaUC := ucRegistro.NewRegistrarSalida(registroRepo, clock)
	listRegistrosUC := ucRegistro.NewListRegistros(registroRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(usuarioService, tokens, limiter)

	clienteHandler := handlers.NewClienteHandler(
		listClientesUC,
		getClienteUC,
		createClienteUC,
		updateClienteUC,
		deleteClienteUC,
	)

	usuarioHandler := handlers.NewUsuarioHandler(createUsuarioUC, deleteUsuarioUC)
	gimnasioHandler := handlers.NewGimnasioHandler(gimnasioRepo)
	registroHandler := handlers.NewRegistroHandler(entradaUC, salidaUC, listRegistrosUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, userDetails))

		admin := middleware.RequireAdmin()

		// ------------------------------
		// CLIENTES
		// ------------------------------
		secured.GET("/cliente", admin, clienteHandler.List)
		secured.GET("/cliente/me", clienteHandler.GetMe)
		secured.GET("/cliente/:id", admin, clienteHandler.Get)
		secured.POST("/cliente", admin, clienteHandler.Create)
		secured.PUT("/cliente", clienteHandler.Update)
		secured.PUT("/cliente/:id", admin, clienteHandler.UpdateByID)
		secured.DELETE("/cliente/:id", admin, clienteHandler.Delete)

		// ------------------------------
		// USUARIOS
		// ------------------------------
		secured.POST("/usuario", admin, usuarioHandler.Create)
		secured.GET("/usuario/me", usuarioHandler.GetMe)
		secured.DELETE("/usuario/:id", admin, usuarioHandler.Delete)

		// ------------------------------
		// GIMNASIO / REGISTROS
		// ------------------------------
		secured.GET("/gimnasio/me", gimnasioHandler.GetMe)

		secured.POST("/registro/entrada", registroHandler.Entrada)
		secured.POST("/registro/salida", registroHandler.Salida)
		secured.GET("/registro/me", registroHandler.ListMe)

		secured.GET("/audit-logs", admin, auditLogsHandler.List)
	}
}
