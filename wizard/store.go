package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/catalog"
)

// DefaultTTL is how long an untouched draft survives before its staged files
// are released.
const DefaultTTL = 2 * time.Hour

// Store holds live drafts in memory, keyed by id, expiring entries that have
// not been touched within the TTL. Drafts are transient by contract: losing
// them costs the operator a form refill, never data.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	products map[uuid.UUID]*Draft
	cats     map[uuid.UUID]*CategoryDraft
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		products: make(map[uuid.UUID]*Draft),
		cats:     make(map[uuid.UUID]*CategoryDraft),
	}
}

// CreateDraft starts a product wizard session over a snapshot of the
// category tree.
func (s *Store) CreateDraft(tree *catalog.Tree) *Draft {
	d := newDraft(tree)
	s.mu.Lock()
	s.sweepLocked()
	s.products[d.id] = d
	s.mu.Unlock()
	return d
}

// Draft fetches a live product draft. Fetching an expired one deletes it on
// the spot so its staged file bytes are released without waiting for the
// next sweep.
func (s *Store) Draft(id uuid.UUID) (*Draft, bool) {
	s.mu.RLock()
	d, ok := s.products[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(d.lastTouched()) {
		s.DeleteDraft(id)
		return nil, false
	}
	return d, true
}

// DeleteDraft discards a product draft and everything staged on it.
func (s *Store) DeleteDraft(id uuid.UUID) {
	s.mu.Lock()
	delete(s.products, id)
	s.mu.Unlock()
}

// CreateCategoryDraft starts a category form session.
func (s *Store) CreateCategoryDraft() *CategoryDraft {
	d := newCategoryDraft()
	s.mu.Lock()
	s.sweepLocked()
	s.cats[d.id] = d
	s.mu.Unlock()
	return d
}

// CategoryDraft fetches a live category draft, deleting it when expired as
// Draft does.
func (s *Store) CategoryDraft(id uuid.UUID) (*CategoryDraft, bool) {
	s.mu.RLock()
	d, ok := s.cats[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(d.lastTouched()) {
		s.DeleteCategoryDraft(id)
		return nil, false
	}
	return d, true
}

// DeleteCategoryDraft discards a category draft.
func (s *Store) DeleteCategoryDraft(id uuid.UUID) {
	s.mu.Lock()
	delete(s.cats, id)
	s.mu.Unlock()
}

func (s *Store) expired(updatedAt time.Time) bool {
	return time.Since(updatedAt) > s.ttl
}

// sweepLocked drops expired drafts. Called on create so the maps never grow
// unbounded between fetches.
func (s *Store) sweepLocked() {
	for id, d := range s.products {
		if s.expired(d.lastTouched()) {
			delete(s.products, id)
		}
	}
	for id, d := range s.cats {
		if s.expired(d.lastTouched()) {
			delete(s.cats, id)
		}
	}
}
