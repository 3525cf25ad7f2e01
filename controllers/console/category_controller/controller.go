package category_controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

var client *upstream.Client

func Init(c *upstream.Client) {
	client = c
}

// readCategoryForm binds the multipart scalar fields of a category create or
// update request.
func readCategoryForm(c *gin.Context) models.CategoryForm {
	return models.CategoryForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Status:      c.DefaultPostForm("status", models.CategoryStatusInactive),
		Color:       c.PostForm("color"),
		ParentID:    c.PostForm("parentId"),
	}
}

// readStagedImage pulls the optional "image" file out of a multipart form
// and applies the single-image rule: only image content is accepted. The
// bool result reports whether the request may proceed.
func readStagedImage(c *gin.Context) (*models.StagedFile, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		// no file attached
		return nil, true
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return nil, false
	}

	contentType, err := wizard.DetectImageType(header.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return nil, false
	}

	return &models.StagedFile{
		LocalID:     uuid.Must(uuid.NewV7()),
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Bytes:       data,
	}, true
}
