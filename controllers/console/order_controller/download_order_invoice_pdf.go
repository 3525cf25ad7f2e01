package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download an order invoice PDF
// @Description Fetches the order upstream and renders an invoice PDF for download
// @Tags Console - Orders
// @Produce octet-stream
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/console/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order ID is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := client.Orders.Get(ctx, id)
	if err != nil {
		log.Printf("[console.order.invoice] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	pdfBuffer, err := generateOrderInvoicePDF(order)
	if err != nil {
		log.Printf("[console.order.invoice] failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[console.order.invoice] invoice PDF downloaded for order %s", id)
}
