package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siremms300/jubian-admin-gateway/catalog"
	"github.com/siremms300/jubian-admin-gateway/models"
)

// Step is one of the three ordered wizard screens.
type Step int

const (
	StepBasicInfo Step = iota
	StepPricing
	StepMedia
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepPricing:
		return "pricing"
	case StepMedia:
		return "media"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// MediaKind names one of the two staged media sequences.
type MediaKind string

const (
	MediaImages  MediaKind = "images"
	MediaBanners MediaKind = "banners"
)

func ParseMediaKind(raw string) (MediaKind, error) {
	switch MediaKind(raw) {
	case MediaImages:
		return MediaImages, nil
	case MediaBanners:
		return MediaBanners, nil
	}
	return "", fmt.Errorf("unknown media kind %q", raw)
}

var (
	ErrFirstStep = errors.New("already at the first step")
	ErrLastStep  = errors.New("already at the last step")
	// ErrNotMediaStep guards Submit: it is only available on the media step.
	ErrNotMediaStep = errors.New("submit is only available on the media step")
	ErrBadIndex     = errors.New("no staged file at that index")
)

// ValidationError is the local, pre-network failure of a submission attempt.
// While any required field is missing, no upstream call is made.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "Missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}

// Draft is one product wizard session: the form fields across the three
// steps, the cascading category selection, and the media staged for upload.
// All methods are safe for concurrent use.
type Draft struct {
	mu sync.Mutex

	id        uuid.UUID
	step      Step
	form      models.ProductForm
	selector  *catalog.Selector
	images    []models.StagedFile
	banners   []models.StagedFile
	createdAt time.Time
	updatedAt time.Time
}

func newDraft(tree *catalog.Tree) *Draft {
	now := time.Now()
	return &Draft{
		id:        uuid.Must(uuid.NewV7()),
		step:      StepBasicInfo,
		selector:  catalog.NewSelector(tree),
		createdAt: now,
		updatedAt: now,
	}
}

func (d *Draft) ID() uuid.UUID {
	return d.id
}

// Next advances one step. There is no validation gate here; the form is
// only checked at submission.
func (d *Draft) Next() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step >= StepMedia {
		return ErrLastStep
	}
	d.step++
	d.touch()
	return nil
}

// Back retreats one step.
func (d *Draft) Back() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step <= StepBasicInfo {
		return ErrFirstStep
	}
	d.step--
	d.touch()
	return nil
}

// MergeForm applies the provided fields onto the draft form, leaving absent
// fields untouched.
func (d *Draft) MergeForm(req models.UpdateProductFormRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&d.form.Name, req.Name)
	assign(&d.form.Description, req.Description)
	assign(&d.form.Brand, req.Brand)
	assign(&d.form.Price, req.Price)
	assign(&d.form.OldPrice, req.OldPrice)
	assign(&d.form.RetailPrice, req.RetailPrice)
	assign(&d.form.WholesalePrice, req.WholesalePrice)
	assign(&d.form.MOQ, req.MOQ)
	assign(&d.form.Stock, req.Stock)
	assign(&d.form.Discount, req.Discount)
	assign(&d.form.Rating, req.Rating)
	assign(&d.form.PricingTier, req.PricingTier)
	assign(&d.form.Status, req.Status)
	if req.WholesaleEnabled != nil {
		d.form.WholesaleEnabled = *req.WholesaleEnabled
	}
	if req.Featured != nil {
		d.form.Featured = *req.Featured
	}
	d.touch()
}

// Select applies the provided selection levels in ancestor order, letting the
// selector's clearing rule invalidate descendants. The batch is atomic: it is
// applied to a scratch selector first, so a rejected level leaves the draft's
// selection exactly as it was.
func (d *Draft) Select(category, subCategory, thirdCategory *string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	scratch := *d.selector
	if category != nil {
		if err := scratch.SelectCategory(*category); err != nil {
			return err
		}
	}
	if subCategory != nil {
		if err := scratch.SelectSubCategory(*subCategory); err != nil {
			return err
		}
	}
	if thirdCategory != nil {
		if err := scratch.SelectThirdCategory(*thirdCategory); err != nil {
			return err
		}
	}
	*d.selector = scratch
	d.touch()
	return nil
}

// StageMedia appends one file to the images or banners sequence. Staging
// never replaces earlier entries; files are accepted as-is, the upstream API
// is the one that validates them. A kind outside the two known sequences is
// rejected with nothing staged.
func (d *Draft) StageMedia(kind MediaKind, filename, contentType string, data []byte) (models.StagedFile, error) {
	if _, err := ParseMediaKind(string(kind)); err != nil {
		return models.StagedFile{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	staged := models.StagedFile{
		LocalID:     uuid.Must(uuid.NewV7()),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Bytes:       data,
	}
	staged.PreviewURL = fmt.Sprintf("/api/v1/console/product-drafts/%s/previews/%s", d.id, staged.LocalID)

	if kind == MediaBanners {
		d.banners = append(d.banners, staged)
	} else {
		d.images = append(d.images, staged)
	}
	d.touch()
	return staged, nil
}

// RemoveMedia drops exactly the entry at index, preserving the order of the
// rest. The entry's staged bytes and preview go with it; there is no undo.
func (d *Draft) RemoveMedia(kind MediaKind, index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	seq := &d.images
	if kind == MediaBanners {
		seq = &d.banners
	}
	if index < 0 || index >= len(*seq) {
		return ErrBadIndex
	}
	*seq = append((*seq)[:index], (*seq)[index+1:]...)
	d.touch()
	return nil
}

// Preview returns the staged file with the given local id, searching both
// sequences.
func (d *Draft) Preview(localID uuid.UUID) (models.StagedFile, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, f := range d.images {
		if f.LocalID == localID {
			return f, true
		}
	}
	for _, f := range d.banners {
		if f.LocalID == localID {
			return f, true
		}
	}
	return models.StagedFile{}, false
}

// PrepareSubmission validates the draft and builds the typed payload plus
// copies of the staged media. It never touches the network; on any
// validation failure the caller must not either.
func (d *Draft) PrepareSubmission() (models.ProductData, []models.StagedFile, []models.StagedFile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step != StepMedia {
		return models.ProductData{}, nil, nil, ErrNotMediaStep
	}

	category, subCategory, thirdCategory := d.selector.Selection()

	var missing []string
	if strings.TrimSpace(d.form.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.form.Description) == "" {
		missing = append(missing, "description")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(d.form.Price) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(d.form.Brand) == "" {
		missing = append(missing, "brand")
	}
	if len(missing) > 0 {
		return models.ProductData{}, nil, nil, &ValidationError{Missing: missing}
	}

	data := models.ProductData{
		Name:             d.form.Name,
		Description:      d.form.Description,
		Brand:            d.form.Brand,
		Category:         category,
		SubCategory:      subCategory,
		ThirdCategory:    thirdCategory,
		PricingTier:      d.form.PricingTier,
		WholesaleEnabled: d.form.WholesaleEnabled,
		Featured:         d.form.Featured,
		Status:           d.form.Status,
	}

	var err error
	if data.Price, err = parseFloat("price", d.form.Price); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.OldPrice, err = parseOptionalFloat("old_price", d.form.OldPrice); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.RetailPrice, err = parseOptionalFloat("retail_price", d.form.RetailPrice); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.WholesalePrice, err = parseOptionalFloat("wholesale_price", d.form.WholesalePrice); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.Discount, err = parseOptionalFloat("discount", d.form.Discount); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.Rating, err = parseOptionalFloat("rating", d.form.Rating); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	if data.MOQ, err = parseOptionalInt("moq", d.form.MOQ); err != nil {
		return models.ProductData{}, nil, nil, err
	}
	// stock defaults to 0 when blank
	if strings.TrimSpace(d.form.Stock) != "" {
		stock, err := parseOptionalInt("stock", d.form.Stock)
		if err != nil {
			return models.ProductData{}, nil, nil, err
		}
		data.Stock = *stock
	}

	images := make([]models.StagedFile, len(d.images))
	copy(images, d.images)
	banners := make([]models.StagedFile, len(d.banners))
	copy(banners, d.banners)

	return data, images, banners, nil
}

// Reset returns the draft to its initial empty state on the first step,
// releasing every staged file and preview. Called only after a successful
// submission; a failed one leaves the draft untouched for correction.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.step = StepBasicInfo
	d.form = models.ProductForm{}
	d.selector.SelectCategory("")
	d.images = nil
	d.banners = nil
	d.touch()
}

func (d *Draft) touch() {
	d.updatedAt = time.Now()
}

func (d *Draft) lastTouched() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updatedAt
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Reason: "Invalid number for " + field}
	}
	return v, nil
}

func parseOptionalFloat(field, raw string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := parseFloat(field, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, &ValidationError{Reason: "Invalid number for " + field}
	}
	return &v, nil
}
