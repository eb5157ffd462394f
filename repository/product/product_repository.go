package product

import (
	"context"

	"github.com/andrifals/gasstore/model"
	"github.com/andrifals/gasstore/repository/backend"
)

type REST struct {
	backend *backend.Client
}

// ProductRepository reads the products table. The table is read-only
// for this service.
type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductEntity, error)
	GetByID(ctx context.Context, id string) (*model.ProductEntity, error)
}

func NewProductRepository(client *backend.Client) ProductRepository {
	return &REST{backend: client}
}

const (
	productsTable     = "products"
	productProjection = "id,name,price,image,category"
	productRef        = "id,name"
)

func (r *REST) List(ctx context.Context) ([]model.ProductEntity, error) {
	var products []model.ProductEntity
	err := r.backend.Select(ctx, productsTable, backend.Query{
		Select: productProjection,
		Order:  "name.asc",
	}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *REST) GetByID(ctx context.Context, id string) (*model.ProductEntity, error) {
	var products []model.ProductEntity
	err := r.backend.Select(ctx, productsTable, backend.Query{
		Select: productProjection,
		Eq:     map[string]string{"id": id},
		Limit:  1,
	}, &products)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}
