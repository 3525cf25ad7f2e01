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

// UpdateCategory godoc
// @Summary Update a category
// @Description Update a category from multipart form fields plus an optional replacement image
// @Tags Console - Categories
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category ID is required"))
		return
	}

	form := readCategoryForm(c)
	image, ok := readStagedImage(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := client.Categories.Update(ctx, id, form, image)
	if err != nil {
		log.Printf("[console.category.update] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	hierarchy_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
