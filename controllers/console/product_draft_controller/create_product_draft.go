package product_draft_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// CreateProductDraft godoc
// @Summary Start a product wizard session
// @Description Opens a three-step draft over a snapshot of the category hierarchy
// @Tags Console - Product Drafts
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts [post]
func CreateProductDraft(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	tree, err := loadTree(ctx)
	if err != nil {
		log.Printf("[console.product_draft.create] hierarchy fetch failed: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	draft := store.CreateDraft(tree)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Draft created", draft.View()))
}
