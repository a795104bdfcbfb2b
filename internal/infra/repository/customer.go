package repository

import (
	"context"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/customer_mock.go -package=repositorymock

type CustomerWriteQueries interface {
	UpsertCustomer(ctx context.Context, db dbq.DBTX, arg dbq.UpsertCustomerParams) (dbq.UpsertCustomerRow, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{queries: queries}
}

// Upsert relies on the unique email index, so two concurrent bookings for the
// same new customer still end up with one record.
func (r *CustomerRepository) Upsert(ctx context.Context, tx dbq.DBTX, c *customer.Customer) (*customer.Customer, bool, error) {
	row, err := r.queries.UpsertCustomer(ctx, tx, converter.CustomerToInfra(c))
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to upsert customer", err)
	}
	stored, err := converter.CustomerFromInfra(row.Customers)
	if err != nil {
		return nil, false, err
	}
	return stored, row.Inserted, nil
}
