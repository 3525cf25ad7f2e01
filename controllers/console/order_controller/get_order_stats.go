package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// GetOrderStats godoc
// @Summary Get aggregate order counters
// @Description Returns the upstream admin stats: total orders plus per-status breakdown
// @Tags Console - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := client.Orders.Stats(ctx)
	if err != nil {
		log.Printf("[console.order.stats] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched", stats))
}
