package routes

import (
	"os"
	"strings"

	"github.com/Kashishghuliani/xeno-fde/config"
	"github.com/Kashishghuliani/xeno-fde/controllers"
	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/services"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(repos *repository.Repositories, syncService *services.SyncService) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("FRONTEND_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Tenant-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(repos.Users, repos.Tenants)
	dashboardController := controllers.NewDashboardController(repos.Dashboard)
	syncController := controllers.NewSyncController(syncService)
	tenantController := controllers.NewTenantController(repos.Tenants)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), utils.TenantMiddleware())
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/metrics", dashboardController.GetMetrics)
			dashboard.GET("/orders-by-date", dashboardController.GetOrdersByDate)
			dashboard.GET("/customers-by-date", dashboardController.GetCustomersByDate)
			dashboard.GET("/top-customers", dashboardController.GetTopCustomers)
			dashboard.GET("/top-products", dashboardController.GetTopProducts)
			dashboard.GET("/recent-orders", dashboardController.GetRecentOrders)
		}

		api.POST("/sync/shopify", syncController.TriggerShopifySync)

		tenants := api.Group("/tenants")
		{
			tenants.GET("", tenantController.List)
			tenants.GET("/:id", tenantController.Get)
			tenants.PUT("/me/shopify", tenantController.UpdateShopifyCredentials)
		}
	}

	return r
}
