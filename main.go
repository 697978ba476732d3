package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"galeria-backend/config"
	"galeria-backend/models"
	"galeria-backend/routes"
	"galeria-backend/services"
)

func main() {
	cfg := config.MustLoad()

	config.ConnectDB(cfg.DB.URL)

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Artwork{},
		&models.Product{},
		&models.Sale{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sales := services.NewSaleService(config.DB)
	greetings := services.NewGreetingService(config.DB, cfg.Twilio)
	scheduler := services.StartScheduler(sales, greetings)
	defer scheduler.Stop()

	r := routes.SetupRouter(cfg)
	printRoutes(r)

	if err := r.Run(cfg.Server.Address()); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
