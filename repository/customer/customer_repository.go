package customer

import (
	"context"

	"github.com/andrifals/gasstore/model"
	"github.com/andrifals/gasstore/repository/backend"
)

type REST struct {
	backend *backend.Client
}

type CustomerRepository interface {
	Insert(ctx context.Context, customer *model.CustomerEntity) (*model.CustomerEntity, error)
	GetByID(ctx context.Context, id string) (*model.CustomerEntity, error)
}

func NewCustomerRepository(client *backend.Client) CustomerRepository {
	return &REST{backend: client}
}

const customersTable = "customers"

// Insert writes one customer row and returns the stored
// representation. Every submission creates a fresh row; there is no
// dedup against existing customers.
func (r *REST) Insert(ctx context.Context, customer *model.CustomerEntity) (*model.CustomerEntity, error) {
	var inserted []model.CustomerEntity
	if err := r.backend.Insert(ctx, customersTable, customer, &inserted); err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return customer, nil
	}
	return &inserted[0], nil
}

func (r *REST) GetByID(ctx context.Context, id string) (*model.CustomerEntity, error) {
	var customers []model.CustomerEntity
	err := r.backend.Select(ctx, customersTable, backend.Query{
		Eq:    map[string]string{"id": id},
		Limit: 1,
	}, &customers)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, nil
	}
	return &customers[0], nil
}
