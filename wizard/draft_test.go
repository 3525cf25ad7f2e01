package wizard

import (
	"errors"
	"strings"
	"testing"

	"github.com/siremms300/jubian-admin-gateway/catalog"
	"github.com/siremms300/jubian-admin-gateway/models"
)

func testTree() *catalog.Tree {
	return catalog.NewTree([]models.Category{
		{
			ID:   "A",
			Name: "Apparel",
			Subcategories: []models.Category{
				{
					ID:   "A1",
					Name: "Men",
					Subcategories: []models.Category{
						{ID: "A1a", Name: "Shirts"},
					},
				},
			},
		},
		{ID: "B", Name: "Electronics"},
	})
}

func str(s string) *string { return &s }

// fillValid merges the minimum form a submission needs and walks the draft to
// the media step.
func fillValid(t *testing.T, d *Draft) {
	t.Helper()
	d.MergeForm(models.UpdateProductFormRequest{
		Name:        str("Linen Shirt"),
		Description: str("Breathable summer shirt"),
		Brand:       str("Jubian"),
		Price:       str("49.99"),
	})
	if err := d.Select(str("A"), nil, nil); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := d.Next(); err != nil {
		t.Fatalf("Next to pricing: %v", err)
	}
	if err := d.Next(); err != nil {
		t.Fatalf("Next to media: %v", err)
	}
}

func TestStepNavigationBounds(t *testing.T) {
	d := newDraft(testTree())

	if err := d.Back(); !errors.Is(err, ErrFirstStep) {
		t.Errorf("Back at first step err = %v, want ErrFirstStep", err)
	}
	if err := d.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := d.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := d.Next(); !errors.Is(err, ErrLastStep) {
		t.Errorf("Next at last step err = %v, want ErrLastStep", err)
	}
	if err := d.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if view := d.View(); view.Step != int(StepPricing) {
		t.Errorf("Step = %d, want %d", view.Step, int(StepPricing))
	}
}

func TestMergeFormLeavesAbsentFieldsUntouched(t *testing.T) {
	d := newDraft(testTree())

	d.MergeForm(models.UpdateProductFormRequest{Name: str("First"), Price: str("10")})
	d.MergeForm(models.UpdateProductFormRequest{Description: str("Second pass")})

	view := d.View()
	if view.Form.Name != "First" || view.Form.Price != "10" {
		t.Errorf("earlier fields lost: %+v", view.Form)
	}
	if view.Form.Description != "Second pass" {
		t.Errorf("Description = %q, want Second pass", view.Form.Description)
	}
}

func TestSelectRejectedBatchLeavesSelectionUntouched(t *testing.T) {
	d := newDraft(testTree())
	if err := d.Select(str("A"), str("A1"), nil); err != nil {
		t.Fatalf("Select: %v", err)
	}

	// A1 is not a candidate under B, so the whole batch must be rejected,
	// including the otherwise valid category change.
	if err := d.Select(str("B"), str("A1"), nil); err == nil {
		t.Fatal("mixed batch accepted, want error")
	}

	sel := d.SelectionOnly()
	if sel.Category != "A" || sel.SubCategory != "A1" {
		t.Errorf("selection after rejected batch = (%q, %q), want (A, A1)", sel.Category, sel.SubCategory)
	}
}

func TestStageMediaAppendsAcrossVisits(t *testing.T) {
	d := newDraft(testTree())

	d.StageMedia(MediaImages, "a.jpg", "image/jpeg", []byte("aa"))
	d.StageMedia(MediaImages, "b.jpg", "image/jpeg", []byte("bb"))
	// A later visit appends behind, never replaces.
	d.StageMedia(MediaImages, "c.jpg", "image/jpeg", []byte("cc"))
	d.StageMedia(MediaBanners, "w.png", "image/png", []byte("ww"))

	view := d.View()
	if len(view.Images) != 3 || len(view.Banners) != 1 {
		t.Fatalf("staged %d images %d banners, want 3 and 1", len(view.Images), len(view.Banners))
	}
	got := []string{view.Images[0].Filename, view.Images[1].Filename, view.Images[2].Filename}
	if got[0] != "a.jpg" || got[1] != "b.jpg" || got[2] != "c.jpg" {
		t.Errorf("image order = %v", got)
	}
}

func TestStageMediaRejectsUnknownKind(t *testing.T) {
	d := newDraft(testTree())

	if _, err := d.StageMedia(MediaKind("videos"), "v.mp4", "video/mp4", []byte("vv")); err == nil {
		t.Fatal("unknown kind accepted, want error")
	}
	view := d.View()
	if len(view.Images) != 0 || len(view.Banners) != 0 {
		t.Errorf("misfiled media: %d images %d banners, want none", len(view.Images), len(view.Banners))
	}
}

func TestRemoveMediaPreservesOrder(t *testing.T) {
	d := newDraft(testTree())
	d.StageMedia(MediaImages, "a.jpg", "image/jpeg", []byte("aa"))
	d.StageMedia(MediaImages, "b.jpg", "image/jpeg", []byte("bb"))
	d.StageMedia(MediaImages, "c.jpg", "image/jpeg", []byte("cc"))

	if err := d.RemoveMedia(MediaImages, 1); err != nil {
		t.Fatalf("RemoveMedia: %v", err)
	}
	view := d.View()
	if len(view.Images) != 2 {
		t.Fatalf("len(images) = %d, want 2", len(view.Images))
	}
	if view.Images[0].Filename != "a.jpg" || view.Images[1].Filename != "c.jpg" {
		t.Errorf("order after remove = [%s %s], want [a.jpg c.jpg]",
			view.Images[0].Filename, view.Images[1].Filename)
	}

	if err := d.RemoveMedia(MediaImages, 5); !errors.Is(err, ErrBadIndex) {
		t.Errorf("RemoveMedia(5) err = %v, want ErrBadIndex", err)
	}
	if err := d.RemoveMedia(MediaImages, -1); !errors.Is(err, ErrBadIndex) {
		t.Errorf("RemoveMedia(-1) err = %v, want ErrBadIndex", err)
	}
}

func TestPreviewFindsStagedFile(t *testing.T) {
	d := newDraft(testTree())
	staged, err := d.StageMedia(MediaBanners, "w.png", "image/png", []byte("wide"))
	if err != nil {
		t.Fatalf("StageMedia: %v", err)
	}

	got, ok := d.Preview(staged.LocalID)
	if !ok {
		t.Fatal("Preview miss for staged file")
	}
	if string(got.Bytes) != "wide" || got.ContentType != "image/png" {
		t.Errorf("Preview = %q %q", got.Bytes, got.ContentType)
	}
	if !strings.Contains(staged.PreviewURL, staged.LocalID.String()) {
		t.Errorf("PreviewURL %q does not reference the file id", staged.PreviewURL)
	}
}

func TestPrepareSubmissionRequiresMediaStep(t *testing.T) {
	d := newDraft(testTree())
	if _, _, _, err := d.PrepareSubmission(); !errors.Is(err, ErrNotMediaStep) {
		t.Errorf("err = %v, want ErrNotMediaStep", err)
	}
}

func TestPrepareSubmissionReportsAllMissingFields(t *testing.T) {
	d := newDraft(testTree())
	d.Next()
	d.Next()

	_, _, _, err := d.PrepareSubmission()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := []string{"name", "description", "category", "price", "brand"}
	if len(verr.Missing) != len(want) {
		t.Fatalf("Missing = %v, want %v", verr.Missing, want)
	}
	for i, field := range want {
		if verr.Missing[i] != field {
			t.Errorf("Missing[%d] = %q, want %q", i, verr.Missing[i], field)
		}
	}
	if !strings.HasPrefix(verr.Error(), "Missing required fields: ") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestPrepareSubmissionTypesNumerics(t *testing.T) {
	d := newDraft(testTree())
	fillValid(t, d)
	d.MergeForm(models.UpdateProductFormRequest{
		OldPrice: str("59.99"),
		MOQ:      str("12"),
		Stock:    str("100"),
	})
	if err := d.Select(nil, str("A1"), str("A1a")); err != nil {
		t.Fatalf("Select: %v", err)
	}

	data, _, _, err := d.PrepareSubmission()
	if err != nil {
		t.Fatalf("PrepareSubmission: %v", err)
	}
	if data.Price != 49.99 {
		t.Errorf("Price = %v, want 49.99", data.Price)
	}
	if data.OldPrice == nil || *data.OldPrice != 59.99 {
		t.Errorf("OldPrice = %v, want 59.99", data.OldPrice)
	}
	if data.MOQ == nil || *data.MOQ != 12 {
		t.Errorf("MOQ = %v, want 12", data.MOQ)
	}
	if data.Stock != 100 {
		t.Errorf("Stock = %d, want 100", data.Stock)
	}
	if data.Category != "A" || data.SubCategory != "A1" || data.ThirdCategory != "A1a" {
		t.Errorf("categories = (%q, %q, %q)", data.Category, data.SubCategory, data.ThirdCategory)
	}
	// Blank optionals are omitted, not zero-valued.
	if data.RetailPrice != nil || data.Discount != nil || data.Rating != nil {
		t.Errorf("blank optionals set: %+v", data)
	}
}

func TestPrepareSubmissionBlankStockDefaultsToZero(t *testing.T) {
	d := newDraft(testTree())
	fillValid(t, d)

	data, _, _, err := d.PrepareSubmission()
	if err != nil {
		t.Fatalf("PrepareSubmission: %v", err)
	}
	if data.Stock != 0 {
		t.Errorf("Stock = %d, want 0", data.Stock)
	}
}

func TestPrepareSubmissionRejectsBadNumbers(t *testing.T) {
	d := newDraft(testTree())
	fillValid(t, d)
	d.MergeForm(models.UpdateProductFormRequest{Discount: str("ten percent")})

	_, _, _, err := d.PrepareSubmission()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if !strings.Contains(verr.Error(), "discount") {
		t.Errorf("Error() = %q, want mention of discount", verr.Error())
	}
}

func TestResetReturnsDraftToInitialState(t *testing.T) {
	d := newDraft(testTree())
	fillValid(t, d)
	d.StageMedia(MediaImages, "a.jpg", "image/jpeg", []byte("aa"))

	d.Reset()

	view := d.View()
	if view.Step != int(StepBasicInfo) {
		t.Errorf("Step = %d, want first step", view.Step)
	}
	if view.Form.Name != "" || view.Form.Price != "" {
		t.Errorf("form not cleared: %+v", view.Form)
	}
	if view.Selection.Category != "" || view.Selection.SubCategory != "" {
		t.Errorf("selection not cleared: %+v", view.Selection)
	}
	if len(view.Images) != 0 || len(view.Banners) != 0 {
		t.Errorf("staged media survived reset")
	}
}
