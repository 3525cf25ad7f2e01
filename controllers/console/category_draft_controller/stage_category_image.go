package category_draft_controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

// StageCategoryImage godoc
// @Summary Stage the category image
// @Description Validates and previews a single image. A new file replaces any previously staged one; non-images are rejected and nothing is staged.
// @Tags Console - Category Drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/category-drafts/{id}/image [post]
func StageCategoryImage(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "An image file is required"))
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return
	}

	if _, err := draft.StageImage(header.Filename, header.Header.Get("Content-Type"), data); err != nil {
		if errors.Is(err, wizard.ErrNotImage) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to stage image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image staged", draft.View()))
}
