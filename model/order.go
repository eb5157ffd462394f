package model

import (
	"time"
)

// OrderRequest is the storefront submission form. Product identity is
// the only thing trusted from the client; the unit price is resolved
// server-side.
type OrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type OrderResponse struct {
	OrderID    string  `json:"order_id"`
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
	// ConfirmDwellSeconds tells the storefront how long to hold the
	// confirmation view before resetting the form.
	ConfirmDwellSeconds int `json:"confirm_dwell_seconds"`
}

// OrderEntity mirrors one row of the hosted orders table.
type OrderEntity struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductRef is the trimmed product view joined onto each listed order.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderView is an order enriched for the admin dashboard. Product is
// nil when the order has no product reference or the lookup failed.
type OrderView struct {
	OrderEntity
	Product *ProductRef `json:"product,omitempty"`
}

// OrderDetail additionally resolves the owning customer.
type OrderDetail struct {
	OrderView
	Customer *CustomerEntity `json:"customer,omitempty"`
}

// OrderListFilter narrows the admin listing after retrieval. Status
// must be a valid status or empty; Search matches order id, customer
// id and product name case-insensitively.
type OrderListFilter struct {
	Status string
	Search string
}

// OrderListResult distinguishes a confirmed-empty table from a
// degraded read: Source names the retrieval strategy that produced the
// rows, Ordered reports whether the newest-first guarantee held.
type OrderListResult struct {
	Orders  []OrderView `json:"orders"`
	Source  string      `json:"source"`
	Ordered bool        `json:"ordered"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
