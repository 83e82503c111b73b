package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MenuDoce/cardapio-api/internal/audit"
	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/config"
	"github.com/MenuDoce/cardapio-api/internal/handlers"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	infraRepo "github.com/MenuDoce/cardapio-api/internal/infra/repository"
	"github.com/MenuDoce/cardapio-api/internal/infra/storage"
	"github.com/MenuDoce/cardapio-api/internal/middleware"
	"github.com/MenuDoce/cardapio-api/internal/store"
	ucMenu "github.com/MenuDoce/cardapio-api/internal/usecase/menu"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DeviceMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	tenantRepo := infraRepo.NewTenantGormRepository(db)
	menuCache := cache.New(cfg)
	images := storage.NewS3Store(cfg)
	stores := store.NewManager(tenantRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — CARDÁPIO PÚBLICO
	// ======================================================
	resolveMenuUC := ucMenu.NewResolveMenu(tenantRepo, menuCache)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tenantRepo, menuCache)
	meHandler := handlers.NewMeHandler(db, stores)

	designHandler := handlers.NewDesignHandler(stores, auditDispatcher, menuCache)
	configuracoesHandler := handlers.NewConfiguracoesHandler(stores, auditDispatcher, menuCache)
	produtoHandler := handlers.NewProdutoHandler(stores, auditDispatcher, menuCache)
	uploadHandler := handlers.NewUploadHandler(stores, images, auditDispatcher, menuCache)
	dashboardHandler := handlers.NewDashboardHandler(stores)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(resolveMenuUC, tenantRepo)
	publicWebHandler := handlers.NewPublicWebHandler(resolveMenuUC)
	appWebHandler := handlers.NewAppWebHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/cardapio/:slug", publicWebHandler.ShowMenuPage)

	webApp := r.Group("/app")
	{
		webApp.GET("", appWebHandler.Dashboard)
		webApp.GET("/login", appWebHandler.LoginPage)
		webApp.GET("/produtos", appWebHandler.Products)
		webApp.GET("/design", appWebHandler.Design)
		webApp.GET("/configuracoes", appWebHandler.Settings)
		webApp.GET("/preview", appWebHandler.Preview)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/menu", publicHandler.Menu)
			publicAPI.GET("/:slug/products", publicHandler.ListProducts)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/password-reset", authHandler.PasswordReset)
		api.POST("/auth/password-reset/confirm", authHandler.PasswordResetConfirm)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/design-settings", designHandler.Get)
			secured.PATCH("/me/design-settings", designHandler.Update)

			secured.GET("/me/configuracoes", configuracoesHandler.Get)
			secured.PATCH("/me/configuracoes", configuracoesHandler.Update)

			secured.GET("/me/produtos", produtoHandler.List)
			secured.POST("/me/produtos", produtoHandler.Create)
			secured.PATCH("/me/produtos/:id", produtoHandler.Update)
			secured.DELETE("/me/produtos/:id", produtoHandler.Delete)

			secured.POST("/me/images", uploadHandler.Upload)

			secured.GET("/me/dashboard", dashboardHandler.Get)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	// ======================================================
	// ❓ 404
	// ======================================================
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			httperr.NotFound(c, "route_not_found", "Rota não encontrada.")
			return
		}
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
	})
}
