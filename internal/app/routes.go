package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/cookie-sid/job-application-tracker/internal/auth"
	"github.com/cookie-sid/job-application-tracker/internal/cache"
	"github.com/cookie-sid/job-application-tracker/internal/config"
	"github.com/cookie-sid/job-application-tracker/internal/handlers"
	"github.com/cookie-sid/job-application-tracker/internal/middleware"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
	"github.com/cookie-sid/job-application-tracker/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc, log)

	limiter := middleware.NewRateLimiter(cfg.Auth.RateLimitPerMin)
	registerAuthRoutes(api, authHandler, limiter)

	protected := api.Group("", auth.RequireAuth(tokens, userRepo))
	registerProfileRoutes(protected, authHandler)

	appRepo := repo.NewPGApplicationRepo(db)
	appCache := cache.NewApplicationCache(rdb, cfg.Redis.DefaultTTL.Duration())
	appSvc := service.NewApplicationService(appRepo, appCache)
	appHandler := handlers.NewApplicationHandler(appSvc, log)
	registerApplicationRoutes(protected, appHandler)

	contactSvc := service.NewContactService(repo.NewPGContactRepo(db))
	contactHandler := handlers.NewContactHandler(contactSvc, log)
	registerContactRoutes(protected, contactHandler)

	emailSvc := service.NewEmailService(repo.NewPGEmailRepo(db))
	emailHandler := handlers.NewEmailHandler(emailSvc, log)
	registerEmailRoutes(protected, emailHandler)

	dashHandler := handlers.NewDashboardHandler(service.NewDashboardService(appSvc, contactSvc, emailSvc), log)
	protected.GET("/dashboard/stats", dashHandler.Stats)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Job Application Tracker API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, limiter *middleware.RateLimiter) {
	grp := api.Group("/auth", limiter.Handler())
	grp.POST("/register", h.Register)
	grp.POST("/login", h.Login)
}

func registerProfileRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.GET("/auth/profile", h.GetProfile)
	api.PUT("/auth/profile", h.UpdateProfile)
	api.PUT("/auth/change-password", h.ChangePassword)
}

func registerApplicationRoutes(api *gin.RouterGroup, h *handlers.ApplicationHandler) {
	api.POST("/applications", h.Create)
	api.GET("/applications", h.List)
	api.GET("/applications/search", h.Search)
	api.GET("/applications/stats", h.Stats)
	api.GET("/applications/:id", h.GetByID)
	api.PATCH("/applications/:id", h.Update)
	api.DELETE("/applications/:id", h.Delete)
}

func registerContactRoutes(api *gin.RouterGroup, h *handlers.ContactHandler) {
	api.POST("/contacts", h.Create)
	api.GET("/contacts", h.List)
	api.GET("/contacts/:id", h.GetByID)
	api.PATCH("/contacts/:id", h.Update)
	api.DELETE("/contacts/:id", h.Delete)
}

func registerEmailRoutes(api *gin.RouterGroup, h *handlers.EmailHandler) {
	api.POST("/emails", h.Create)
	api.GET("/emails", h.List)
	api.GET("/emails/:id", h.GetByID)
	api.POST("/emails/:id/responded", h.MarkResponded)
	api.DELETE("/emails/:id", h.Delete)
}
