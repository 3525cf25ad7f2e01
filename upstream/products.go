package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// ProductsService wraps the upstream product endpoints.
type ProductsService struct {
	client *Client
}

// ProductListParams carries the paging and filter query parameters. The
// server does all filtering, sorting and paging; the console forwards the
// parameters untouched.
type ProductListParams struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// List fetches one page of products.
func (s *ProductsService) List(ctx context.Context, params ProductListParams) ([]models.Product, *models.Pagination, error) {
	const op = "products.list"
	const fallback = "Failed to fetch products"

	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	for key, value := range params.Filters {
		if value != "" {
			query.Set(key, value)
		}
	}

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/products", query, nil, "", fallback)
	if err != nil {
		return nil, nil, err
	}
	var products []models.Product
	if err := decode(env, op, fallback, &products); err != nil {
		return nil, nil, err
	}
	return products, env.Pagination, nil
}

// Create posts one multipart request containing the productData JSON blob
// plus every staged image and banner as its own file part.
func (s *ProductsService) Create(ctx context.Context, data models.ProductData, images, banners []models.StagedFile) (*models.Product, error) {
	const op = "products.create"
	const fallback = "Failed to create product"

	body, contentType, err := buildProductMultipart(op, fallback, data, images, banners)
	if err != nil {
		return nil, err
	}

	env, err := s.client.do(ctx, op, http.MethodPost, "/api/products", nil, body, contentType, fallback)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := decode(env, op, fallback, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update puts the same multipart shape as Create. Files already stored
// upstream are untouched; new staged files are appended.
func (s *ProductsService) Update(ctx context.Context, id string, data models.ProductData, images, banners []models.StagedFile) (*models.Product, error) {
	const op = "products.update"
	const fallback = "Failed to update product"

	body, contentType, err := buildProductMultipart(op, fallback, data, images, banners)
	if err != nil {
		return nil, err
	}

	env, err := s.client.do(ctx, op, http.MethodPut, "/api/products/"+id, nil, body, contentType, fallback)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := decode(env, op, fallback, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	const op = "products.delete"
	const fallback = "Failed to delete product"

	_, err := s.client.do(ctx, op, http.MethodDelete, "/api/products/"+id, nil, nil, "", fallback)
	return err
}

// DeleteMedia removes a single stored image or banner from a product.
// kind is "images" or "banners".
func (s *ProductsService) DeleteMedia(ctx context.Context, id, kind, mediaID string) error {
	const op = "products.delete_media"
	const fallback = "Failed to delete product media"

	path := "/api/products/" + id + "/" + kind + "/" + mediaID
	_, err := s.client.do(ctx, op, http.MethodDelete, path, nil, nil, "", fallback)
	return err
}

func buildProductMultipart(op, fallback string, data models.ProductData, images, banners []models.StagedFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	blob, err := json.Marshal(data)
	if err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}
	if err := w.WriteField("productData", string(blob)); err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}

	appendFiles := func(field string, files []models.StagedFile) error {
		for _, f := range files {
			part, err := w.CreateFormFile(field, f.Filename)
			if err != nil {
				return err
			}
			if _, err := part.Write(f.Bytes); err != nil {
				return err
			}
		}
		return nil
	}
	if err := appendFiles("images[]", images); err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}
	if err := appendFiles("banners[]", banners); err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}

	if err := w.Close(); err != nil {
		return nil, "", &Error{Op: op, Message: fallback}
	}
	return body, w.FormDataContentType(), nil
}
