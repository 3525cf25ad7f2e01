package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// GetOrders godoc
// @Summary Get the admin order list
// @Description Forwards the search, status and type filters to the upstream admin endpoint
// @Tags Console - Orders
// @Produce json
// @Param search query string false "Search term"
// @Param status query string false "Order status filter"
// @Param type query string false "Order type filter"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := client.Orders.AdminList(ctx, c.Query("search"), c.Query("status"), c.Query("type"))
	if err != nil {
		log.Printf("[console.order.list] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched", orders))
}
