package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// DeleteProductImage godoc
// @Summary Delete one stored product image
// @Tags Console - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param mediaId path string true "Image ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/products/{id}/images/{mediaId} [delete]
func DeleteProductImage(c *gin.Context) {
	deleteProductMedia(c, "images")
}

// DeleteProductBanner godoc
// @Summary Delete one stored product banner
// @Tags Console - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param mediaId path string true "Banner ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/products/{id}/banners/{mediaId} [delete]
func DeleteProductBanner(c *gin.Context) {
	deleteProductMedia(c, "banners")
}

func deleteProductMedia(c *gin.Context, kind string) {
	id := strings.TrimSpace(c.Param("id"))
	mediaID := strings.TrimSpace(c.Param("mediaId"))
	if id == "" || mediaID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID and media ID are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := client.Products.DeleteMedia(ctx, id, kind, mediaID); err != nil {
		log.Printf("[console.product.delete_media] kind=%s upstream error: %v", kind, err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product media deleted successfully", nil))
}
