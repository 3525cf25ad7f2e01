package console_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/controllers/console/category_draft_controller"
)

func SetupCategoryDraftRoutes(rg *gin.RouterGroup) {
	draft := rg.Group("/category-drafts")

	// ════════════════════════════════════════════════════════════
	// Draft Lifecycle
	// ════════════════════════════════════════════════════════════
	draft.POST("", category_draft_controller.CreateCategoryDraft)
	draft.GET("/:id", category_draft_controller.GetCategoryDraft)
	draft.PATCH("/:id", category_draft_controller.UpdateCategoryDraft)
	draft.POST("/:id/submit", category_draft_controller.SubmitCategoryDraft)

	// ════════════════════════════════════════════════════════════
	// Staged Image (single slot, replace on re-stage)
	// ════════════════════════════════════════════════════════════
	draft.POST("/:id/image", category_draft_controller.StageCategoryImage)
	draft.DELETE("/:id/image", category_draft_controller.RemoveCategoryImage)
}
