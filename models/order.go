package models

import "time"

// Order represents an upstream order as seen by the admin console.
type Order struct {
	OrderID         string      `json:"orderId"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	TotalSavings    float64     `json:"totalSavings"`
	Total           float64     `json:"total"`
	OrderStatus     string      `json:"order_status"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	DeliveryAddress *Address    `json:"delivery_address,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductID   string  `json:"productRef"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	PricingTier string  `json:"pricingTier,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// UpdateOrderStatusRequest is the console payload for a status transition.
// admin_notes is optional for all statuses, required when cancelling.
type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	AdminNotes *string `json:"admin_notes"`
}

// OrderStats mirrors the upstream admin stats counters.
type OrderStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Processing   int     `json:"processing"`
	Shipped      int     `json:"shipped"`
	Delivered    int     `json:"delivered"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"total_revenue"`
}
