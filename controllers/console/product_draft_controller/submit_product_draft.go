package product_draft_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/config"
	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

// SubmitProductDraft godoc
// @Summary Submit a product draft
// @Description Validates the accumulated form, then creates the product upstream in a single multipart request carrying the typed product data plus every staged image and banner. Validation failures never reach the network. On success the draft resets to the first step; on failure it is left untouched for correction.
// @Tags Console - Product Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/submit [post]
func SubmitProductDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	data, images, banners, err := draft.PrepareSubmission()
	if err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, verr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := client.Products.Create(ctx, data, images, banners)
	if err != nil {
		// Draft stays as-is so the operator can correct and resubmit
		log.Printf("[console.product_draft.submit] upstream error: %v", err)
		c.JSON(upstream.StatusFor(err), models.ErrorResponse(c, err.Error()))
		return
	}

	draft.Reset()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product created successfully", product))
}
