package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// GetMediaPreview godoc
// @Summary Serve the bytes of a staged file for preview
// @Description Streams a staged file back with its declared content type so the console can render thumbnails before submission.
// @Tags Console - Product Drafts
// @Produce octet-stream
// @Param id path string true "Draft ID"
// @Param fileId path string true "Staged file ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/previews/{fileId} [get]
func GetMediaPreview(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	localID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid file ID"))
		return
	}

	file, ok := draft.Preview(localID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Staged file not found"))
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, file.Bytes)
}
