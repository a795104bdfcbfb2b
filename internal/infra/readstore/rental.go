package readstore

import (
	"context"
	"time"

	"gear-rental/internal/infra"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalReadQueries interface {
	FindRentalByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Rentals, error)
	ListRentals(ctx context.Context, db dbq.DBTX, arg dbq.ListRentalsParams) ([]dbq.Rentals, error)
	ListRentalsInRange(ctx context.Context, db dbq.DBTX, from, to pgtype.Timestamptz) ([]dbq.Rentals, error)
	ListRentalEquipment(ctx context.Context, db dbq.DBTX, rentalIDs []uuid.UUID) ([]dbq.ListRentalEquipmentRow, error)
	ListCustomersByIDs(ctx context.Context, db dbq.DBTX, ids []uuid.UUID) ([]dbq.Customers, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      dbq.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db dbq.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.FindRentalByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}

	views := []*queries.RentalView{toRentalView(row)}
	if err := r.decorate(ctx, views); err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *RentalReadStore) List(ctx context.Context, filter queries.RentalFilter) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentals(ctx, r.db, dbq.ListRentalsParams{
		Statuses:   filter.Statuses,
		CustomerID: pgconv.UUIDPtrToPgtype(filter.CustomerID),
		Limit:      int32(filter.Limit),
		Offset:     int32(filter.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	return r.toDecoratedViews(ctx, rows)
}

// InRange returns rentals whose window intersects [from, to).
func (r *RentalReadStore) InRange(ctx context.Context, from, to time.Time) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentalsInRange(ctx, r.db, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals in range", err)
	}
	return r.toDecoratedViews(ctx, rows)
}

func (r *RentalReadStore) toDecoratedViews(ctx context.Context, rows []dbq.Rentals) ([]*queries.RentalView, error) {
	views := make([]*queries.RentalView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRentalView(row))
	}
	if err := r.decorate(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// decorate attaches equipment names and customer contact data in two batched queries.
func (r *RentalReadStore) decorate(ctx context.Context, views []*queries.RentalView) error {
	if len(views) == 0 {
		return nil
	}

	rentalIDs := make([]uuid.UUID, 0, len(views))
	customerIDs := make([]uuid.UUID, 0, len(views))
	byRental := make(map[uuid.UUID]*queries.RentalView, len(views))
	seenCustomer := make(map[uuid.UUID]struct{}, len(views))
	for _, v := range views {
		rentalIDs = append(rentalIDs, v.ID)
		byRental[v.ID] = v
		if _, ok := seenCustomer[v.CustomerID]; !ok {
			seenCustomer[v.CustomerID] = struct{}{}
			customerIDs = append(customerIDs, v.CustomerID)
		}
	}

	items, err := r.queries.ListRentalEquipment(ctx, r.db, rentalIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to list rental equipment", err)
	}
	for _, it := range items {
		if v, ok := byRental[it.RentalID]; ok {
			v.Equipment = append(v.Equipment, queries.RentalEquipmentView{
				ID:   it.EquipmentID,
				Name: it.EquipmentName,
				Type: it.EquipmentType,
			})
		}
	}

	customers, err := r.queries.ListCustomersByIDs(ctx, r.db, customerIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to list rental customers", err)
	}
	byCustomer := make(map[uuid.UUID]dbq.Customers, len(customers))
	for _, c := range customers {
		byCustomer[c.ID] = c
	}
	for _, v := range views {
		if c, ok := byCustomer[v.CustomerID]; ok {
			v.CustomerName = c.Name
			v.CustomerEmail = c.Email
		}
	}
	return nil
}

func toRentalView(row dbq.Rentals) *queries.RentalView {
	return &queries.RentalView{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Start:      pgconv.TimeFromPgtype(row.StartAt),
		End:        pgconv.TimeFromPgtype(row.EndAt),
		Status:     row.Status,
		TotalCents: row.TotalCents,
		VoidCents:  pgconv.Int64PtrFromPgtype(row.VoidCents),
		Notes:      row.Notes,
		Equipment:  []queries.RentalEquipmentView{},
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
