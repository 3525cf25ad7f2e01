package category_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// GetCategoryDraft godoc
// @Summary Get a category draft
// @Tags Console - Category Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts/{id} [get]
func GetCategoryDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft fetched", draft.View()))
}
