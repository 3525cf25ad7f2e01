package category_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// GetCategories godoc
// @Summary Get paginated categories with subcategories
// @Description Retrieve root categories and their nested subcategories with pagination
// @Tags Console - Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/categories [get]
func GetCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	roots, err := client.Categories.List(ctx)
	if err != nil {
		log.Printf("[console.category.list] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	// Page the root list in memory; subcategories ride along with their parent
	total := len(roots)
	start := offset
	end := offset + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched", roots[start:end], meta))
}
