package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// TokenSource supplies the bearer token attached to every upstream request.
type TokenSource interface {
	Token() (string, error)
}

// Client is the shared HTTP adapter behind the Categories, Products and
// Orders wrappers. It speaks the upstream envelope
// {success, data, message?, pagination?} and normalizes every failure into
// *Error. No retries, no backoff: a failed call surfaces immediately.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	Categories *CategoriesService
	Products   *ProductsService
	Orders     *OrdersService
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
	}
	c.Categories = &CategoriesService{client: c}
	c.Products = &ProductsService{client: c}
	c.Orders = &OrdersService{client: c}
	return c
}

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// do issues one request and decodes the envelope. fallback is the generic
// message used when the upstream response carries none.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType, fallback string) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Op: op, Message: fallback}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, &Error{Op: op, Message: fallback}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Message: fallback}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{Op: op, Status: res.StatusCode, Message: fallback}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &Error{Op: op, Status: res.StatusCode, Message: fallback}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &Error{Op: op, Status: res.StatusCode, Message: msg}
	}

	return &env, nil
}

// doJSON is do with a JSON-encoded body.
func (c *Client) doJSON(ctx context.Context, op, method, path string, payload any, fallback string) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Message: fallback}
		}
		body = bytes.NewReader(buf)
	}
	return c.do(ctx, op, method, path, nil, body, "application/json", fallback)
}

// decode unmarshals the envelope's data into out when out is non-nil.
func decode(env *envelope, op, fallback string, out any) error {
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Op: op, Message: fallback}
	}
	return nil
}
