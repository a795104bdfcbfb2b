package queries

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/readmodel"
	"gear-rental/internal/usecase/status"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rental.go -destination=../../../tests/mock/queries/rental_mock.go -package=queriesmock

type RentalQueries interface {
	List(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	Calendar(ctx context.Context, from, to time.Time) ([]readmodel.CalendarEntry, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	List(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
	InRange(ctx context.Context, from, to time.Time) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
	engine    status.Engine
}

func NewRentalQueries(readStore RentalReadStore, engine status.Engine) RentalQueries {
	return &rentalQueriesImpl{
		readStore: readStore,
		engine:    engine,
	}
}

// List writes derived statuses back before reading, so a status filter sees
// current values. A corrupt row is returned with IntegrityError set.
func (q *rentalQueriesImpl) List(ctx context.Context, filter RentalFilter) ([]*RentalView, error) {
	for _, s := range filter.Statuses {
		if _, err := rental.NewStatus(s); err != nil {
			return nil, errs.Wrap(err, s)
		}
	}
	filter.Limit = ValidateLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if _, err := q.engine.Reconcile(ctx); err != nil {
		return nil, err
	}

	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, translateReadErr(err, "list rentals", nil)
	}
	deriveAll(views, q.engine.Now())
	return views, nil
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "find rental", ErrRentalNotFound)
	}
	if err := deriveRentalView(view, q.engine.Now()); err != nil {
		return nil, err
	}
	return view, nil
}

// Calendar returns rentals intersecting [from, to), cancelled ones included.
func (q *rentalQueriesImpl) Calendar(ctx context.Context, from, to time.Time) ([]readmodel.CalendarEntry, error) {
	if !from.Before(to) {
		return nil, errs.NewInvalidWindowError(from, to)
	}

	views, err := q.readStore.InRange(ctx, from, to)
	if err != nil {
		return nil, translateReadErr(err, "list calendar", nil)
	}

	deriveAll(views, q.engine.Now())
	entries := make([]readmodel.CalendarEntry, 0, len(views))
	for _, v := range views {
		entries = append(entries, toCalendarEntry(v))
	}
	return entries, nil
}

// deriveAll derives every view of a listing. A view that fails the integrity
// check keeps its stored status and carries the failure in IntegrityError,
// so one bad row never hides the others.
func deriveAll(views []*RentalView, now time.Time) {
	for _, v := range views {
		_ = deriveRentalView(v, now) // recorded on v.IntegrityError
	}
}

// deriveRentalView replaces the stored status with the one derived at now.
func deriveRentalView(v *RentalView, now time.Time) error {
	r, err := rental.ReconstructRental(v.ID, v.CustomerID, v.Start, v.End, v.Status,
		v.TotalCents, v.VoidCents, v.Notes, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		slog.Warn("rental failed integrity check",
			"rental_id", v.ID.String(),
			"error", err.Error())
		v.IntegrityError = err.Error()
		return err
	}
	v.Status = r.DerivedStatus(now).String()
	return nil
}

func toCalendarEntry(v *RentalView) readmodel.CalendarEntry {
	entry := readmodel.CalendarEntry{
		RentalID:       v.ID,
		Title:          v.CustomerName,
		Start:          v.Start,
		End:            v.End,
		Status:         v.Status,
		CustomerID:     v.CustomerID,
		EquipmentIDs:   make([]uuid.UUID, 0, len(v.Equipment)),
		EquipmentNames: make([]string, 0, len(v.Equipment)),
		IntegrityError: v.IntegrityError,
	}
	for _, e := range v.Equipment {
		entry.EquipmentIDs = append(entry.EquipmentIDs, e.ID)
		entry.EquipmentNames = append(entry.EquipmentNames, e.Name)
	}
	if entry.Title == "" {
		entry.Title = v.CustomerEmail
	}
	return entry
}
