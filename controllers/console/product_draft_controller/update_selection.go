package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// SelectionRequest carries the selection levels to apply, in ancestor order.
// Absent levels are untouched; an empty string clears a level (and, through
// the cascade, everything below it).
type SelectionRequest struct {
	Category      *string `json:"category"`
	SubCategory   *string `json:"sub_category"`
	ThirdCategory *string `json:"third_category"`
}

// UpdateSelection godoc
// @Summary Apply cascading category selections
// @Description Changing a level always clears its descendant selections, even when they would remain valid under the new ancestor
// @Tags Console - Product Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param payload body SelectionRequest true "Levels to apply"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/selection [patch]
func UpdateSelection(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if err := draft.Select(req.Category, req.SubCategory, req.ThirdCategory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection updated", draft.SelectionOnly()))
}
