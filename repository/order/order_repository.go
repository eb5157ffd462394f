package order

import (
	"context"
	"encoding/json"

	"github.com/andrifals/gasstore/model"
	"github.com/andrifals/gasstore/repository/backend"
)

type REST struct {
	backend *backend.Client
}

// OrderRepository exposes the orders table. List retrieval is split
// into the three strategies the fallback chain is built from: a fixed
// projection ordered newest-first, an unconstrained select, and a raw
// protocol request.
type OrderRepository interface {
	Insert(ctx context.Context, order *model.OrderEntity) error
	Count(ctx context.Context) (int64, error)
	ListProjected(ctx context.Context) ([]model.OrderEntity, error)
	ListAll(ctx context.Context) ([]model.OrderEntity, error)
	ListRaw(ctx context.Context) ([]model.OrderEntity, error)
	GetByID(ctx context.Context, id string) (*model.OrderEntity, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

func NewOrderRepository(client *backend.Client) OrderRepository {
	return &REST{backend: client}
}

const (
	ordersTable = "orders"

	// Only ListProjected guarantees ordering; the fallback reads
	// inherit whatever order the backend returns.
	orderProjection = "id,customer_id,product_id,quantity,total_price,payment_method,status,created_at"
	orderNewest     = "created_at.desc"

	rawOrdersPath = "/rest/v1/orders?select=*&limit=100"
)

func (r *REST) Insert(ctx context.Context, order *model.OrderEntity) error {
	return r.backend.Insert(ctx, ordersTable, order, nil)
}

func (r *REST) Count(ctx context.Context) (int64, error) {
	return r.backend.Count(ctx, ordersTable)
}

func (r *REST) ListProjected(ctx context.Context) ([]model.OrderEntity, error) {
	var orders []model.OrderEntity
	err := r.backend.Select(ctx, ordersTable, backend.Query{
		Select: orderProjection,
		Order:  orderNewest,
	}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *REST) ListAll(ctx context.Context) ([]model.OrderEntity, error) {
	var orders []model.OrderEntity
	if err := r.backend.Select(ctx, ordersTable, backend.Query{}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *REST) ListRaw(ctx context.Context) ([]model.OrderEntity, error) {
	body, err := r.backend.Raw(ctx, rawOrdersPath)
	if err != nil {
		return nil, err
	}
	var orders []model.OrderEntity
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *REST) GetByID(ctx context.Context, id string) (*model.OrderEntity, error) {
	var orders []model.OrderEntity
	err := r.backend.Select(ctx, ordersTable, backend.Query{
		Select: orderProjection,
		Eq:     map[string]string{"id": id},
		Limit:  1,
	}, &orders)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (r *REST) UpdateStatus(ctx context.Context, id, status string) error {
	patch := map[string]string{"status": status}
	return r.backend.Update(ctx, ordersTable, map[string]string{"id": id}, patch)
}
