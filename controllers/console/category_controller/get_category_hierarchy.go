package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	hierarchy_cache "github.com/siremms300/jubian-admin-gateway/cache"
	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// GetCategoryHierarchy godoc
// @Summary Get the full nested category tree
// @Description Returns the complete hierarchy used by the cascading selectors
// @Tags Console - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/categories/hierarchy [get]
func GetCategoryHierarchy(c *gin.Context) {
	roots, ok := hierarchy_cache.Get()
	if !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var err error
		roots, err = client.Categories.Hierarchy(ctx)
		if err != nil {
			log.Printf("[console.category.hierarchy] upstream error: %v", err)
			c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
			return
		}
		hierarchy_cache.Set(roots)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category hierarchy fetched", roots))
}
