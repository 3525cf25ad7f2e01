package category_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	hierarchy_cache "github.com/siremms300/jubian-admin-gateway/cache"
	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Tags Console - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category ID is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := client.Categories.Delete(ctx, id); err != nil {
		log.Printf("[console.category.delete] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	hierarchy_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
