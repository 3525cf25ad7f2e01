package product_draft_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hierarchy_cache "github.com/siremms300/jubian-admin-gateway/cache"
	"github.com/siremms300/jubian-admin-gateway/catalog"
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

// loadTree indexes the current category hierarchy, via the gateway cache.
func loadTree(ctx context.Context) (*catalog.Tree, error) {
	roots, ok := hierarchy_cache.Get()
	if !ok {
		var err error
		roots, err = client.Categories.Hierarchy(ctx)
		if err != nil {
			return nil, err
		}
		hierarchy_cache.Set(roots)
	}
	return catalog.NewTree(roots), nil
}

// lookupDraft resolves the :id path param into a live wizard draft,
// responding on failure.
func lookupDraft(c *gin.Context) (*wizard.Draft, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid draft ID"))
		return nil, false
	}
	draft, ok := store.Draft(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Draft not found or expired"))
		return nil, false
	}
	return draft, true
}
