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

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category from multipart form fields plus an optional image
// @Tags Console - Categories
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Param image formData file false "Thumbnail image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/categories [post]
func CreateCategory(c *gin.Context) {
	form := readCategoryForm(c)
	if strings.TrimSpace(form.Name) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category name is required"))
		return
	}

	image, ok := readStagedImage(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := client.Categories.Create(ctx, form, image)
	if err != nil {
		log.Printf("[console.category.create] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	hierarchy_cache.Invalidate()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
