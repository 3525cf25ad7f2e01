package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// GetProducts godoc
// @Summary Get paged, filtered products
// @Description Filtering, sorting and pagination are delegated to the upstream API; every query parameter besides page and limit is forwarded as a filter
// @Tags Console - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "page" || key == "limit" || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, meta, err := client.Products.List(ctx, upstream.ProductListParams{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		log.Printf("[console.product.list] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched", products, meta))
}
