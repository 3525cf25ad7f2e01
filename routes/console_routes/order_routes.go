package console_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/controllers/console/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)

	// ════════════════════════════════════════════════════════════
	// Writes (proxied to the commerce API)
	// ════════════════════════════════════════════════════════════
	order.PUT("/:id/status", order_controller.UpdateOrderStatus)
	order.DELETE("/:id", order_controller.DeleteOrder)
}
