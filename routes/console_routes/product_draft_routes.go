package console_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/controllers/console/product_draft_controller"
)

func SetupProductDraftRoutes(rg *gin.RouterGroup) {
	draft := rg.Group("/product-drafts")

	// ════════════════════════════════════════════════════════════
	// Draft Lifecycle
	// ════════════════════════════════════════════════════════════
	draft.POST("", product_draft_controller.CreateProductDraft)
	draft.GET("/:id", product_draft_controller.GetProductDraft)
	draft.PATCH("/:id", product_draft_controller.UpdateProductDraft)
	draft.POST("/:id/submit", product_draft_controller.SubmitProductDraft)

	// ════════════════════════════════════════════════════════════
	// Step Navigation
	// ════════════════════════════════════════════════════════════
	draft.POST("/:id/next", product_draft_controller.AdvanceProductDraft)
	draft.POST("/:id/back", product_draft_controller.RetreatProductDraft)

	// ════════════════════════════════════════════════════════════
	// Cascading Category Selection
	// ════════════════════════════════════════════════════════════
	draft.GET("/:id/selection", product_draft_controller.GetSelection)
	draft.PATCH("/:id/selection", product_draft_controller.UpdateSelection)

	// ════════════════════════════════════════════════════════════
	// Staged Media
	// ════════════════════════════════════════════════════════════
	draft.POST("/:id/media/:kind", product_draft_controller.StageProductMedia)
	draft.DELETE("/:id/media/:kind/:index", product_draft_controller.RemoveProductMedia)
	draft.GET("/:id/previews/:fileId", product_draft_controller.GetMediaPreview)
}
