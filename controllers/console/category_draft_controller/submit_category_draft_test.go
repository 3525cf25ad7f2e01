package category_draft_controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/siremms300/jubian-admin-gateway/upstream"
	"github.com/siremms300/jubian-admin-gateway/wizard"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type testUpstream struct {
	srv       *httptest.Server
	saveCalls int64
	saveFn    http.HandlerFunc
}

func newTestUpstream(t *testing.T, saveFn http.HandlerFunc) *testUpstream {
	t.Helper()
	u := &testUpstream{saveFn: saveFn}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/categories") {
			atomic.AddInt64(&u.saveCalls, 1)
			u.saveFn(w, r)
			return
		}
		t.Errorf("unexpected upstream request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func newTestRouter(t *testing.T, u *testUpstream) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init(upstream.NewClient(u.srv.URL, nil), wizard.NewStore(wizard.DefaultTTL))

	router := gin.New()
	g := router.Group("/api/v1/console/category-drafts")
	g.POST("", CreateCategoryDraft)
	g.GET("/:id", GetCategoryDraft)
	g.PATCH("/:id", UpdateCategoryDraft)
	g.POST("/:id/image", StageCategoryImage)
	g.DELETE("/:id/image", RemoveCategoryImage)
	g.POST("/:id/submit", SubmitCategoryDraft)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	if payload != nil {
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createDraft(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/console/category-drafts", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create draft: %d %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Data wizard.CategoryDraftView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return res.Data.ID
}

func fetchDraft(t *testing.T, router *gin.Engine, id string) wizard.CategoryDraftView {
	t.Helper()
	rec := doJSON(t, router, http.MethodGet, "/api/v1/console/category-drafts/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get draft: %d %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Data wizard.CategoryDraftView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode draft: %v", err)
	}
	return res.Data
}

func stageImage(t *testing.T, router *gin.Engine, id, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write(data)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/console/category-drafts/"+id+"/image", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitWithoutNameMakesNoUpstreamCall(t *testing.T) {
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"c1"}}`))
	})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/console/category-drafts/"+id+"/submit", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Missing required fields: name") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if n := atomic.LoadInt64(&u.saveCalls); n != 0 {
		t.Errorf("upstream calls = %d, want 0", n)
	}
}

func TestSubmitCreatesAndResets(t *testing.T) {
	var gotMethod, gotPath string
	var gotName string
	var gotImageNames []string
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotName = r.FormValue("name")
		for _, h := range r.MultipartForm.File["image"] {
			gotImageNames = append(gotImageNames, h.Filename)
		}
		w.Write([]byte(`{"success":true,"data":{"id":"c1","name":"Apparel"}}`))
	})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	doJSON(t, router, http.MethodPatch, "/api/v1/console/category-drafts/"+id, map[string]any{
		"name":  "Apparel",
		"color": "#336699",
	})
	if rec := stageImage(t, router, id, "thumb.png", "image/png", pngHeader); rec.Code != http.StatusOK {
		t.Fatalf("stage image: %d %s", rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/console/category-drafts/"+id+"/submit", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	if gotMethod != http.MethodPost || gotPath != "/api/categories" {
		t.Errorf("upstream request = %s %s, want POST /api/categories", gotMethod, gotPath)
	}
	if gotName != "Apparel" {
		t.Errorf("name field = %q", gotName)
	}
	if len(gotImageNames) != 1 || gotImageNames[0] != "thumb.png" {
		t.Errorf("image parts = %v", gotImageNames)
	}

	view := fetchDraft(t, router, id)
	if view.Form.Name != "" || view.Image != nil {
		t.Errorf("draft not reset: %+v", view)
	}
}

func TestSubmitWithCategoryIDUpdates(t *testing.T) {
	var gotMethod, gotPath string
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"success":true,"data":{"id":"cat-7"}}`))
	})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	doJSON(t, router, http.MethodPatch, "/api/v1/console/category-drafts/"+id, map[string]any{
		"category_id": "cat-7",
		"name":        "Apparel",
	})
	rec := doJSON(t, router, http.MethodPost, "/api/v1/console/category-drafts/"+id+"/submit", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	if gotMethod != http.MethodPut || gotPath != "/api/categories/cat-7" {
		t.Errorf("upstream request = %s %s, want PUT /api/categories/cat-7", gotMethod, gotPath)
	}
}

func TestSubmitFailureLeavesDraftUntouched(t *testing.T) {
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Category name already exists"}`))
	})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	doJSON(t, router, http.MethodPatch, "/api/v1/console/category-drafts/"+id, map[string]any{"name": "Apparel"})
	stageImage(t, router, id, "thumb.png", "image/png", pngHeader)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/console/category-drafts/"+id+"/submit", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Category name already exists") {
		t.Errorf("upstream message not surfaced: %s", rec.Body.String())
	}

	view := fetchDraft(t, router, id)
	if view.Form.Name != "Apparel" || view.Image == nil {
		t.Errorf("draft mutated on failure: %+v", view)
	}
}

func TestStageImageRejectsNonImage(t *testing.T) {
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	rec := stageImage(t, router, id, "notes.txt", "text/plain", []byte("just text"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("stage: %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only image files are allowed") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if view := fetchDraft(t, router, id); view.Image != nil {
		t.Error("rejected file was staged")
	}
}

func TestStageImageReplacesPreviousAndRemoveClears(t *testing.T) {
	u := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	router := newTestRouter(t, u)
	id := createDraft(t, router)

	stageImage(t, router, id, "one.png", "image/png", pngHeader)
	stageImage(t, router, id, "two.png", "image/png", pngHeader)

	view := fetchDraft(t, router, id)
	if view.Image == nil || view.Image.Filename != "two.png" {
		t.Fatalf("staged = %+v, want two.png", view.Image)
	}
	if !strings.HasPrefix(view.Image.PreviewURL, "data:image/png;base64,") {
		t.Errorf("PreviewURL = %q, want data URL", view.Image.PreviewURL)
	}

	if rec := doJSON(t, router, http.MethodDelete, "/api/v1/console/category-drafts/"+id+"/image", nil); rec.Code != http.StatusOK {
		t.Fatalf("remove: %d", rec.Code)
	}
	if view := fetchDraft(t, router, id); view.Image != nil {
		t.Error("image survived removal")
	}
}
