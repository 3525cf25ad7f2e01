package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/siremms300/jubian-admin-gateway/models"
)

// OrdersService wraps the upstream admin order endpoints.
type OrdersService struct {
	client *Client
}

// AdminList fetches the admin order list. All three filters are optional and
// forwarded as-is.
func (s *OrdersService) AdminList(ctx context.Context, search, status, orderType string) ([]models.Order, error) {
	const op = "orders.admin_list"
	const fallback = "Failed to fetch orders"

	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if status != "" {
		query.Set("status", status)
	}
	if orderType != "" {
		query.Set("type", orderType)
	}

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/orders/admin/all", query, nil, "", fallback)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := decode(env, op, fallback, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get fetches a single order by id.
func (s *OrdersService) Get(ctx context.Context, id string) (*models.Order, error) {
	const op = "orders.get"
	const fallback = "Failed to fetch order"

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/orders/admin/orders/"+id, nil, nil, "", fallback)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := decode(env, op, fallback, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus transitions an order to the given status.
func (s *OrdersService) UpdateStatus(ctx context.Context, id string, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	const op = "orders.update_status"
	const fallback = "Failed to update order status"

	env, err := s.client.doJSON(ctx, op, http.MethodPut, "/api/orders/admin/orders/"+id+"/status", req, fallback)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := decode(env, op, fallback, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrdersService) Delete(ctx context.Context, id string) error {
	const op = "orders.delete"
	const fallback = "Failed to delete order"

	_, err := s.client.do(ctx, op, http.MethodDelete, "/api/orders/admin/orders/"+id, nil, nil, "", fallback)
	return err
}

// Stats fetches the aggregate admin counters.
func (s *OrdersService) Stats(ctx context.Context) (*models.OrderStats, error) {
	const op = "orders.stats"
	const fallback = "Failed to fetch order stats"

	env, err := s.client.do(ctx, op, http.MethodGet, "/api/orders/admin/stats", nil, nil, "", fallback)
	if err != nil {
		return nil, err
	}
	var stats models.OrderStats
	if err := decode(env, op, fallback, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
