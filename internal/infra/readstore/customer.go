package readstore

import (
	"context"

	"gear-rental/internal/infra"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	FindCustomerByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Customers, error)
	ListCustomers(ctx context.Context, db dbq.DBTX, arg dbq.ListCustomersParams) ([]dbq.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      dbq.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db dbq.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return toCustomerView(row), nil
}

func (r *CustomerReadStore) List(ctx context.Context, filter queries.CustomerFilter) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db, dbq.ListCustomersParams{
		Search: filter.Search,
		Limit:  int32(filter.Limit),
		Offset: int32(filter.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}

	views := make([]*queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCustomerView(row))
	}
	return views, nil
}

func toCustomerView(row dbq.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		AddressLine1: row.AddressLine1,
		AddressLine2: row.AddressLine2,
		City:         row.City,
		Region:       row.Region,
		PostalCode:   row.PostalCode,
		Country:      row.Country,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
