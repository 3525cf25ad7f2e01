package category_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// RemoveCategoryImage godoc
// @Summary Remove the staged category image
// @Description Clears both the staged file and its preview
// @Tags Console - Category Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts/{id}/image [delete]
func RemoveCategoryImage(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	draft.RemoveImage()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image removed", draft.View()))
}
