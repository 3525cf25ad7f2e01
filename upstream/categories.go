package upstream

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// CategoriesService wraps the upstream category endpoints.
type CategoriesService struct {
	client *Client
}

// List fetches root categories with their nested subcategories.
func (s *CategoriesService) List(ctx context.Context) ([]models.Category, error) {
	const op = "categories.list"
	const fallback = "Failed to fetch categories"

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/categories", nil, nil, "", fallback)
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := decode(env, op, fallback, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Hierarchy fetches the full nested category tree.
func (s *CategoriesService) Hierarchy(ctx context.Context) ([]models.Category, error) {
	const op = "categories.hierarchy"
	const fallback = "Failed to fetch category hierarchy"

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/categories/hierarchy", nil, nil, "", fallback)
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := decode(env, op, fallback, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Create posts a multipart category with an optional staged image.
func (s *CategoriesService) Create(ctx context.Context, form models.CategoryForm, image *models.StagedFile) (*models.Category, error) {
	const op = "categories.create"
	const fallback = "Failed to create category"

	body, contentType, err := buildCategoryMultipart(op, fallback, form, image)
	if err != nil {
		return nil, err
	}

	env, err := s.client.do(ctx, op, http.MethodPost, "/api/categories", nil, body, contentType, fallback)
	if err != nil {
		return nil, err
	}
	var cat models.Category
	if err := decode(env, op, fallback, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update puts a multipart category with an optional replacement image.
func (s *CategoriesService) Update(ctx context.Context, id string, form models.CategoryForm, image *models.StagedFile) (*models.Category, error) {
	const op = "categories.update"
	const fallback = "Failed to update category"

	body, contentType, err := buildCategoryMultipart(op, fallback, form, image)
	if err != nil {
		return nil, err
	}

	env, err := s.client.do(ctx, op, http.MethodPut, "/api/categories/"+id, nil, body, contentType, fallback)
	if err != nil {
		return nil, err
	}
	var cat models.Category
	if err := decode(env, op, fallback, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	const op = "categories.delete"
	const fallback = "Failed to delete category"

	_, err := s.client.do(ctx, op, http.MethodDelete, "/api/categories/"+id, nil, nil, "", fallback)
	return err
}

func buildCategoryMultipart(op, fallback string, form models.CategoryForm, image *models.StagedFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"status":      form.Status,
		"color":       form.Color,
		"parentId":    form.ParentID,
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(key, value); err != nil {
			return nil, "", &Error{Op: op, Message: fallback}
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", &Error{Op: op, Message: fallback}
		}
		if _, err := part.Write(image.Bytes); err != nil {
			return nil, "", &Error{Op: op, Message: fallback}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}
	return body, w.FormDataContentType(), nil
}
