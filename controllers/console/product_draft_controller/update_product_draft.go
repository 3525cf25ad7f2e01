package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// UpdateProductDraft godoc
// @Summary Merge fields into a product draft
// @Description Fields absent from the payload are left untouched. Numeric fields are form strings here; they are parsed and typed only at submission.
// @Tags Console - Product Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param payload body models.UpdateProductFormRequest true "Fields to merge"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id} [patch]
func UpdateProductDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	var req models.UpdateProductFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	draft.MergeForm(req)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft updated", draft.View()))
}
