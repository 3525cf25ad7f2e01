package category_draft_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/models"
	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

var (
	client *upstream.Client
	store  *wizard.Store
)

func Init(c *upstream.Client, s *wizard.Store) {
	client = c
	store = s
}

// lookupDraft resolves the :id path param into a live category draft,
// responding on failure.
func lookupDraft(c *gin.Context) (*wizard.CategoryDraft, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid draft ID"))
		return nil, false
	}
	draft, ok := store.CategoryDraft(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Draft not found or expired"))
		return nil, false
	}
	return draft, true
}
