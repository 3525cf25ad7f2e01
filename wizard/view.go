package wizard

import (
	"github.com/siremms300/jubian-admin-gateway/catalog"
	"github.com/siremms300/jubian-admin-gateway/models"
)

// NodeView is one selectable category in a candidate list.
type NodeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SelectionView is the cascading selector's state as the console renders it:
// the three selections plus the candidate lists and disabled-state flags for
// the dependent levels.
type SelectionView struct {
	Category        string     `json:"category"`
	SubCategory     string     `json:"sub_category"`
	ThirdCategory   string     `json:"third_category"`
	CategoryOptions []NodeView `json:"category_options"`
	SubOptions      []NodeView `json:"sub_options"`
	ThirdOptions    []NodeView `json:"third_options"`
	SubEnabled      bool       `json:"sub_enabled"`
	ThirdEnabled    bool       `json:"third_enabled"`
}

// StagedFileView is staged-media metadata without the raw bytes.
type StagedFileView struct {
	LocalID     string `json:"local_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	PreviewURL  string `json:"preview_url"`
}

// DraftView is the full wizard state returned to the console.
type DraftView struct {
	ID        string             `json:"id"`
	Step      int                `json:"step"`
	StepName  string             `json:"step_name"`
	Form      models.ProductForm `json:"form"`
	Selection SelectionView      `json:"selection"`
	Images    []StagedFileView   `json:"images"`
	Banners   []StagedFileView   `json:"banners"`
}

// View snapshots the draft for rendering.
func (d *Draft) View() DraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	return DraftView{
		ID:        d.id.String(),
		Step:      int(d.step),
		StepName:  d.step.String(),
		Form:      d.form,
		Selection: selectionView(d.selector),
		Images:    fileViews(d.images),
		Banners:   fileViews(d.banners),
	}
}

// SelectionOnly snapshots just the cascading selector state.
func (d *Draft) SelectionOnly() SelectionView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return selectionView(d.selector)
}

func selectionView(s *catalog.Selector) SelectionView {
	category, subCategory, thirdCategory := s.Selection()
	return SelectionView{
		Category:        category,
		SubCategory:     subCategory,
		ThirdCategory:   thirdCategory,
		CategoryOptions: nodeViews(s.Candidates(catalog.LevelCategory)),
		SubOptions:      nodeViews(s.Candidates(catalog.LevelSubCategory)),
		ThirdOptions:    nodeViews(s.Candidates(catalog.LevelThird)),
		SubEnabled:      s.Enabled(catalog.LevelSubCategory),
		ThirdEnabled:    s.Enabled(catalog.LevelThird),
	}
}

func nodeViews(nodes []*catalog.Node) []NodeView {
	views := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, NodeView{ID: n.ID, Name: n.Name})
	}
	return views
}

func fileViews(files []models.StagedFile) []StagedFileView {
	views := make([]StagedFileView, 0, len(files))
	for _, f := range files {
		views = append(views, StagedFileView{
			LocalID:     f.LocalID.String(),
			Filename:    f.Filename,
			ContentType: f.ContentType,
			Size:        f.Size,
			PreviewURL:  f.PreviewURL,
		})
	}
	return views
}
