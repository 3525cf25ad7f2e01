// @title Jubian Admin Gateway
// @version 1.0
// @description Console gateway for the Jubian commerce API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/controllers/console/category_controller"
	"github.com/siremms300/jubian-admin-gateway/controllers/console/category_draft_controller"
	"github.com/siremms300/jubian-admin-gateway/controllers/console/order_controller"
	"github.com/siremms300/jubian-admin-gateway/controllers/console/product_controller"
	"github.com/siremms300/jubian-admin-gateway/controllers/console/product_draft_controller"
	"github.com/siremms300/jubian-admin-gateway/middleware"
	"github.com/siremms300/jubian-admin-gateway/routes/console_routes"
	"github.com/siremms300/jubian-admin-gateway/services"
	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter counters)
	config.ConnectRedis()

	// ✅ Initialize service token for upstream calls
	secret := config.UpstreamSecret()
	if secret == "" {
		log.Fatal("❌ UPSTREAM_API_SECRET environment variable not set")
	}
	if err := services.InitUpstreamTokenService(secret); err != nil {
		log.Fatalf("Failed to initialize upstream token service: %v", err)
	}
	log.Println("✅ Upstream token service initialized")

	client := upstream.NewClient(config.UpstreamBaseURL(), services.GetUpstreamTokenService())
	drafts := wizard.NewStore(wizard.DefaultTTL)

	category_controller.Init(client)
	product_controller.Init(client)
	order_controller.Init(client)
	product_draft_controller.Init(client, drafts)
	category_draft_controller.Init(client, drafts)

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Console routes (at /api/v1/console prefix)
	consoleGroup := api.Group("/console")
	consoleGroup.Use(middleware.RateLimiter(100, time.Minute))
	console_routes.SetupCategoryRoutes(consoleGroup)
	console_routes.SetupCategoryDraftRoutes(consoleGroup)
	console_routes.SetupProductRoutes(consoleGroup)
	console_routes.SetupProductDraftRoutes(consoleGroup)
	console_routes.SetupOrderRoutes(consoleGroup)
	log.Println("✅ Console routes registered")

	port := config.Port()
	fmt.Printf("🚀 Gateway is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
