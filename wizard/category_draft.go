package wizard

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// ErrNotImage rejects category staging of anything that is not an image.
// Product media staging deliberately has no such check; there the upstream
// API is the validator.
var ErrNotImage = errors.New("Only image files are allowed")

// CategoryDraft is one category form session. Unlike the product wizard it
// stages at most one image: a new selection replaces the previous one
// outright.
type CategoryDraft struct {
	mu sync.Mutex

	id        uuid.UUID
	form      models.CategoryForm
	image     *models.StagedFile
	createdAt time.Time
	updatedAt time.Time
}

func newCategoryDraft() *CategoryDraft {
	now := time.Now()
	return &CategoryDraft{
		id:        uuid.Must(uuid.NewV7()),
		createdAt: now,
		updatedAt: now,
	}
}

func (d *CategoryDraft) ID() uuid.UUID {
	return d.id
}

// MergeForm applies the provided fields, leaving absent ones untouched.
func (d *CategoryDraft) MergeForm(req models.UpdateCategoryFormRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&d.form.CategoryID, req.CategoryID)
	assign(&d.form.Name, req.Name)
	assign(&d.form.Description, req.Description)
	assign(&d.form.Status, req.Status)
	assign(&d.form.Color, req.Color)
	assign(&d.form.ParentID, req.ParentID)
	d.updatedAt = time.Now()
}

// DetectImageType resolves the effective content type of an upload and
// rejects non-images. The declared type wins when it names an image;
// otherwise the bytes are sniffed.
func DetectImageType(declared string, data []byte) (string, error) {
	detected := declared
	if !strings.HasPrefix(detected, "image/") {
		detected = http.DetectContentType(data)
	}
	if !strings.HasPrefix(detected, "image/") {
		return "", ErrNotImage
	}
	return detected, nil
}

// StageImage validates and stages a single image, replacing any previously
// staged file. Non-images are rejected and nothing is staged.
func (d *CategoryDraft) StageImage(filename, contentType string, data []byte) (models.StagedFile, error) {
	detected, err := DetectImageType(contentType, data)
	if err != nil {
		return models.StagedFile{}, err
	}

	staged := models.StagedFile{
		LocalID:     uuid.Must(uuid.NewV7()),
		Filename:    filename,
		ContentType: detected,
		Size:        int64(len(data)),
		Bytes:       data,
		PreviewURL:  "data:" + detected + ";base64," + base64.StdEncoding.EncodeToString(data),
	}

	d.mu.Lock()
	d.image = &staged
	d.updatedAt = time.Now()
	d.mu.Unlock()
	return staged, nil
}

// RemoveImage clears both the staged file and its preview.
func (d *CategoryDraft) RemoveImage() {
	d.mu.Lock()
	d.image = nil
	d.updatedAt = time.Now()
	d.mu.Unlock()
}

func (d *CategoryDraft) lastTouched() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updatedAt
}

// PrepareSubmission validates the form and returns it with a copy of the
// staged image, if any.
func (d *CategoryDraft) PrepareSubmission() (models.CategoryForm, *models.StagedFile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(d.form.Name) == "" {
		return models.CategoryForm{}, nil, &ValidationError{Missing: []string{"name"}}
	}

	form := d.form
	var image *models.StagedFile
	if d.image != nil {
		clone := *d.image
		image = &clone
	}
	return form, image, nil
}

// Reset clears the form and staged image after a successful submission.
func (d *CategoryDraft) Reset() {
	d.mu.Lock()
	d.form = models.CategoryForm{}
	d.image = nil
	d.updatedAt = time.Now()
	d.mu.Unlock()
}

// CategoryDraftView is the category form state returned to the console.
type CategoryDraftView struct {
	ID    string              `json:"id"`
	Form  models.CategoryForm `json:"form"`
	Image *StagedFileView     `json:"image,omitempty"`
}

func (d *CategoryDraft) View() CategoryDraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	view := CategoryDraftView{ID: d.id.String(), Form: d.form}
	if d.image != nil {
		view.Image = &StagedFileView{
			LocalID:     d.image.LocalID.String(),
			Filename:    d.image.Filename,
			ContentType: d.image.ContentType,
			Size:        d.image.Size,
			PreviewURL:  d.image.PreviewURL,
		}
	}
	return view
}
