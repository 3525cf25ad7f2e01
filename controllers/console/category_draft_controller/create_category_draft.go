package category_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// CreateCategoryDraft godoc
// @Summary Start a category form session
// @Tags Console - Category Drafts
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts [post]
func CreateCategoryDraft(c *gin.Context) {
	draft := store.CreateCategoryDraft()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Draft created", draft.View()))
}
