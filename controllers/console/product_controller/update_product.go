package product_controller

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Forwards a multipart update: a productData JSON blob plus any newly staged images[] and banners[]
// @Tags Console - Products
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID is required"))
		return
	}

	blob := c.PostForm("productData")
	if blob == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "productData is required"))
		return
	}

	var data models.ProductData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid productData: "+err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	images, ok := readFiles(c, form.File["images[]"])
	if !ok {
		return
	}
	banners, ok := readFiles(c, form.File["banners[]"])
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := client.Products.Update(ctx, id, data, images, banners)
	if err != nil {
		log.Printf("[console.product.update] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

func readFiles(c *gin.Context, headers []*multipart.FileHeader) ([]models.StagedFile, bool) {
	files := make([]models.StagedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
			return nil, false
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
			return nil, false
		}
		files = append(files, models.StagedFile{
			LocalID:     uuid.Must(uuid.NewV7()),
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Bytes:       data,
		})
	}
	return files, true
}
