package product_draft_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

// RemoveProductMedia godoc
// @Summary Remove a single staged file by position
// @Description Removes one staged file from the images or banners sequence. The remaining files keep their relative order.
// @Tags Console - Product Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param kind path string true "images or banners"
// @Param index path int true "Zero-based position"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/media/{kind}/{index} [delete]
func RemoveProductMedia(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	kind, err := wizard.ParseMediaKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid file index"))
		return
	}

	if err := draft.RemoveMedia(kind, index); err != nil {
		if errors.Is(err, wizard.ErrBadIndex) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "File removed", draft.View()))
}
