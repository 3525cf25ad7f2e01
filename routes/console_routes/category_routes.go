package console_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/controllers/console/category_controller"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	category.GET("", category_controller.GetCategories)
	category.GET("/hierarchy", category_controller.GetCategoryHierarchy)

	// ════════════════════════════════════════════════════════════
	// Writes (proxied to the commerce API)
	// ════════════════════════════════════════════════════════════
	category.POST("", category_controller.CreateCategory)
	category.PUT("/:id", category_controller.UpdateCategory)
	category.DELETE("/:id", category_controller.DeleteCategory)
}
