package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens string

func (t staticTokens) Token() (string, error) { return string(t), nil }

func TestDoUnwrapsEnvelope(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"A","name":"Apparel"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok-123"))
	categories, err := client.Categories.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "A" {
		t.Errorf("categories = %+v", categories)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestDoSurfacesUpstreamMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Category name already exists"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Categories.List(context.Background())
	if err == nil {
		t.Fatal("want error")
	}
	if err.Error() != "Category name already exists" {
		t.Errorf("err = %q, want upstream message verbatim", err.Error())
	}
	var uerr *Error
	if !errors.As(err, &uerr) || uerr.Status != http.StatusConflict {
		t.Errorf("status = %+v, want 409", err)
	}
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"failure without message": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false}`))
		},
		"non-JSON body": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>nope</html>"))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			client := NewClient(srv.URL, nil)
			_, err := client.Categories.List(context.Background())
			if err == nil {
				t.Fatal("want error")
			}
			if err.Error() != "Failed to fetch categories" {
				t.Errorf("err = %q, want generic fallback", err.Error())
			}
		})
	}
}

func TestDoRejectsSuccessFalseOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Validation failed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if _, err := client.Categories.List(context.Background()); err == nil || err.Error() != "Validation failed" {
		t.Errorf("err = %v, want Validation failed", err)
	}
}

func TestStatusFor(t *testing.T) {
	if got := StatusFor(&Error{Status: http.StatusNotFound}); got != http.StatusNotFound {
		t.Errorf("4xx passthrough = %d", got)
	}
	if got := StatusFor(&Error{Status: http.StatusInternalServerError}); got != http.StatusBadGateway {
		t.Errorf("5xx = %d, want 502", got)
	}
	if got := StatusFor(&Error{}); got != http.StatusBadGateway {
		t.Errorf("transport failure = %d, want 502", got)
	}
	if got := StatusFor(errors.New("plain")); got != http.StatusBadGateway {
		t.Errorf("non-upstream error = %d, want 502", got)
	}
}

func TestDoHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, nil)
	if _, err := client.Categories.List(ctx); err == nil {
		t.Fatal("want error from cancelled context")
	}
}
