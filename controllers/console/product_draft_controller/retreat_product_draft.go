package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// RetreatProductDraft godoc
// @Summary Step the wizard back
// @Description Disabled at the first step
// @Tags Console - Product Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/back [post]
func RetreatProductDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	if err := draft.Back(); err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Step retreated", draft.View()))
}
