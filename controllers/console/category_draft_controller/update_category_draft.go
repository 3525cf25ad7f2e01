package category_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// UpdateCategoryDraft godoc
// @Summary Merge fields into a category draft
// @Description Fields absent from the payload are left untouched
// @Tags Console - Category Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param payload body models.UpdateCategoryFormRequest true "Fields to merge"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts/{id} [patch]
func UpdateCategoryDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	var req models.UpdateCategoryFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	draft.MergeForm(req)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft updated", draft.View()))
}
