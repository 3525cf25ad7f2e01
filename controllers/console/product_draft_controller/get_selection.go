package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// GetSelection godoc
// @Summary Get the cascading selector state
// @Description Returns the three selections plus candidate lists and disabled-state flags for the dependent levels
// @Tags Console - Product Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/selection [get]
func GetSelection(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection fetched", draft.SelectionOnly()))
}
