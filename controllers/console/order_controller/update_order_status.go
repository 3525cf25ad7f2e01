package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Transition an order. admin_notes is optional for all statuses, but required when status is cancelled (cancellation reason).
// @Tags Console - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/orders/{id}/status [put]
func UpdateOrderStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order ID is required"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Status = strings.TrimSpace(strings.ToLower(req.Status))
	if req.Status == models.OrderStatusCancelled {
		if req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "admin_notes is required when cancelling an order"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := client.Orders.UpdateStatus(ctx, id, req)
	if err != nil {
		log.Printf("[console.order.update_status] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", order))
}
