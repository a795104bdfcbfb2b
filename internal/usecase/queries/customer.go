package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer_mock.go -package=queriesmock

type CustomerQueries interface {
	List(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error) {
	filter.Limit = ValidateLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, translateReadErr(err, "list customers", nil)
	}
	return views, nil
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "find customer", ErrCustomerNotFound)
	}
	return view, nil
}
