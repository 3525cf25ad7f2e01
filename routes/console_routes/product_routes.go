package console_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/controllers/console/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)

	// ════════════════════════════════════════════════════════════
	// Writes (proxied to the commerce API)
	// ════════════════════════════════════════════════════════════
	product.PUT("/:id", product_controller.UpdateProduct)
	product.DELETE("/:id", product_controller.DeleteProduct)
	product.DELETE("/:id/images/:mediaId", product_controller.DeleteProductImage)
	product.DELETE("/:id/banners/:mediaId", product_controller.DeleteProductBanner)
}
