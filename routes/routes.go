package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"galeria-backend/config"
	"galeria-backend/controllers"
	"galeria-backend/models"
	"galeria-backend/services"
	"galeria-backend/utils"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded gallery images are served straight from disk
	r.Static(cfg.Uploads.PublicPrefix, cfg.Uploads.Dir)

	authController := controllers.AuthController{Cfg: cfg}
	saleController := controllers.SaleController{Sales: services.NewSaleService(config.DB)}
	uploadController := controllers.UploadController{Cfg: cfg}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWT.Secret))
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWT.Secret))
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/birthdays", controllers.GetBirthdayClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Artwork routes
		artworks := api.Group("/artworks")
		{
			artworks.POST("", controllers.CreateArtwork)
			artworks.GET("", controllers.GetArtworks)
			artworks.GET("/:id", controllers.GetArtwork)
			artworks.PUT("/:id", controllers.UpdateArtwork)
			artworks.DELETE("/:id", controllers.DeleteArtwork)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Sale routes; sales are immutable so there is no PUT or DELETE
		sales := api.Group("/sales")
		{
			sales.POST("", saleController.CreateSale)
			sales.GET("", saleController.GetSales)
			sales.GET("/:id", saleController.GetSale)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Image uploads
		api.POST("/uploads", uploadController.UploadImage)

		// User profiles, manager only
		api.GET("/users", utils.RequireRole(models.RoleManager), controllers.GetUsers)
	}

	return r
}
