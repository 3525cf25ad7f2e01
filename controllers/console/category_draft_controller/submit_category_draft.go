package category_draft_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	hierarchy_cache "github.com/siremms300/jubian-admin-gateway/cache"
	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

// SubmitCategoryDraft godoc
// @Summary Submit a category draft
// @Description Creates the category upstream, or updates it when the draft carries a category_id. On success the draft resets; on failure it is left untouched for correction.
// @Tags Console - Category Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts/{id}/submit [post]
func SubmitCategoryDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	form, image, err := draft.PrepareSubmission()
	if err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, verr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to prepare submission"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category *models.Category
	if form.CategoryID != "" {
		category, err = client.Categories.Update(ctx, form.CategoryID, form, image)
	} else {
		category, err = client.Categories.Create(ctx, form, image)
	}
	if err != nil {
		// Draft stays as-is so the operator can correct and resubmit
		log.Printf("[console.category_draft.submit] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	draft.Reset()
	hierarchy_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category saved successfully", category))
}
