package product_draft_controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

// StageProductMedia godoc
// @Summary Stage files onto the images or banners sequence
// @Description Each file is appended behind previously staged ones, never replacing them. No type or size check happens here; the upstream API validates on submission.
// @Tags Console - Product Drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param kind path string true "images or banners"
// @Param files formData file true "Files to stage"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/media/{kind} [post]
func StageProductMedia(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	kind, err := wizard.ParseMediaKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one file is required"))
		return
	}

	staged := make([]wizard.StagedFileView, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
			return
		}

		file, err := draft.StageMedia(kind, header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		staged = append(staged, wizard.StagedFileView{
			LocalID:     file.LocalID.String(),
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Size:        file.Size,
			PreviewURL:  file.PreviewURL,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Files staged", staged))
}
