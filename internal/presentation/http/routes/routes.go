package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/internal/presentation/http/handler"
	"github.com/newgenpools/site-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Public    *handler.PublicHandler
	Contact   *handler.ContactHandler
	Media     *handler.MediaHandler
	Customer  *handler.CustomerHandler
	Sale      *handler.SaleHandler
	Product   *handler.ProductHandler
	Service   *handler.ServiceHandler
	Project   *handler.ProjectHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler

	IdempotencyRepo repository.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAgeSecs,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, store))

	limiter := middleware.NewIPRateLimiter(&cfg.RateLimit)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Image serving sits outside the versioned API so stored variant paths
	// stay stable.
	router.GET("/api/images/:id/:size", h.Media.Serve)

	// Public site API
	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", h.Public.Home)
		v1.GET("/settings", h.Public.Settings)
		v1.GET("/services", h.Public.Services)
		v1.GET("/services/:slug", h.Public.ServiceBySlug)
		v1.GET("/portfolio", h.Public.Portfolio)
		v1.GET("/portfolio/:slug", h.Public.ProjectBySlug)
		v1.GET("/products", h.Public.Products)
		v1.GET("/products/:slug", h.Public.ProductBySlug)
		v1.POST("/products/:slug/inquiry", limiter.Middleware(), h.Contact.Inquiry)
		v1.POST("/contact", limiter.Middleware(), h.Contact.Submit)
	}

	// Admin back office
	admin := router.Group("/admin")
	{
		admin.POST("/login", limiter.Middleware(), h.Auth.Login)

		protected := admin.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.POST("/logout", h.Auth.Logout)

			api := protected.Group("/api")
			{
				api.GET("/me", h.Auth.Me)
				api.GET("/dashboard", h.Dashboard.Stats)

				api.GET("/customers", h.Customer.List)
				api.GET("/customers/active", h.Customer.ListActive)
				api.POST("/customers", h.Customer.Create)
				api.GET("/customers/:id", h.Customer.Get)
				api.PUT("/customers/:id", h.Customer.Update)
				api.DELETE("/customers/:id", h.Customer.Delete)
				api.GET("/customers/:id/sales", h.Customer.Sales)

				api.GET("/sales", h.Sale.List)
				api.POST("/sales", middleware.Idempotency(h.IdempotencyRepo), h.Sale.Create)
				api.GET("/sales/:id", h.Sale.Get)
				api.PUT("/sales/:id", h.Sale.Update)
				api.POST("/sales/:id/cancel", h.Sale.Cancel)

				api.GET("/products", h.Product.List)
				api.GET("/products/search", h.Product.Search)
				api.POST("/products", h.Product.Create)
				api.GET("/products/:id", h.Product.Get)
				api.PUT("/products/:id", h.Product.Update)
				api.DELETE("/products/:id", h.Product.Delete)

				api.GET("/services", h.Service.List)
				api.POST("/services", h.Service.Create)
				api.GET("/services/:id", h.Service.Get)
				api.PUT("/services/:id", h.Service.Update)
				api.DELETE("/services/:id", h.Service.Delete)

				api.GET("/projects", h.Project.List)
				api.POST("/projects", h.Project.Create)
				api.GET("/projects/:id", h.Project.Get)
				api.PUT("/projects/:id", h.Project.Update)
				api.DELETE("/projects/:id", h.Project.Delete)

				api.GET("/media", h.Media.List)
				api.POST("/media", h.Media.Upload)
				api.POST("/media/batch", h.Media.UploadMany)
				api.PUT("/media/:id", h.Media.UpdateMeta)
				api.DELETE("/media/:id", h.Media.Delete)

				api.GET("/messages", h.Contact.List)
				api.GET("/messages/:id", h.Contact.Get)
				api.POST("/messages/:id/read", h.Contact.MarkRead)
				api.DELETE("/messages/:id", h.Contact.Delete)

				api.GET("/settings", h.Settings.Get)
				api.PUT("/settings", h.Settings.Update)
			}
		}
	}

	return router
}
