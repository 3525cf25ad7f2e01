package hierarchy_cache

import (
	"sync"
	"time"

	"github.com/siremms300/jubian-admin-gateway/models"
)

const TTL = 2 * time.Minute

// ── Upstream hierarchy cache ─────────────────────────────────────────────────
// Stores the full nested category tree fetched from the upstream API.
// The dashboard itself never caches; this only coalesces gateway requests
// between category mutations.

type treeEntry struct {
	roots     []models.Category
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func Get() ([]models.Category, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.roots, true
	}
	return nil, false
}

func Set(roots []models.Category) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{roots: roots, fetchedAt: time.Now()}
}

// ── Invalidate (call on any category create/update/delete) ───────────────────

func Invalidate() {
	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()
}
