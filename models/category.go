package models

import "time"

// Category is a node of the upstream category hierarchy. Upstream ids are
// opaque strings; the gateway never generates or interprets them.
//
// Subcategories is only populated on tree-shaped responses (list / hierarchy).
// An absent field and an empty one mean the same thing: no children.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Color         string     `json:"color,omitempty"`
	ParentID      *string    `json:"parentId,omitempty"`
	Images        []MediaRef `json:"images,omitempty"`
	Subcategories []Category `json:"subcategories,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MediaRef is a server-stored media item. The first entry of a category's
// Images doubles as its display thumbnail.
type MediaRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

const (
	CategoryStatusActive   = "Active"
	CategoryStatusInactive = "Inactive"
)

// CategoryForm holds the editable category fields of a draft. CategoryID is
// set when the draft edits an existing category; empty means create.
type CategoryForm struct {
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Color       string `json:"color"`
	ParentID    string `json:"parent_id"`
}

// UpdateCategoryFormRequest merges provided fields into a category draft.
type UpdateCategoryFormRequest struct {
	CategoryID  *string `json:"category_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parent_id"`
}
