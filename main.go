package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Kashishghuliani/xeno-fde/config"
	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/routes"
	"github.com/Kashishghuliani/xeno-fde/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Customer{},
		&models.Order{},
		&models.Product{},
	)
}

func main() {
	repos := repository.New(config.DB)
	syncService := services.NewSyncService(repos, services.DefaultFetcherFactory)

	scheduler := services.NewSyncScheduler(repos.Tenants, syncService)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start sync scheduler: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(repos, syncService)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
