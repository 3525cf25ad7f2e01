package product_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// AdvanceProductDraft godoc
// @Summary Advance the wizard one step
// @Description Steps are linear with no skipping; advancing is never gated on validation, which happens only at submission
// @Tags Console - Product Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/console/product-drafts/{id}/next [post]
func AdvanceProductDraft(c *gin.Context) {
	draft, ok := lookupDraft(c)
	if !ok {
		return
	}

	if err := draft.Next(); err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Step advanced", draft.View()))
}
