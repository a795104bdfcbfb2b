package queries

import (
	"context"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/availability"
	"gear-rental/internal/usecase/status"

	"github.com/google/uuid"
)

//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/queries/equipment_mock.go -package=queriesmock

type EquipmentQueries interface {
	List(ctx context.Context, filter EquipmentFilter) ([]*EquipmentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	CheckAvailability(ctx context.Context, id uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type EquipmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	List(ctx context.Context, filter EquipmentFilter) ([]*EquipmentView, error)
	// OpenBookings returns the non-terminal bookings of each item, keyed by equipment id.
	OpenBookings(ctx context.Context, equipmentIDs []uuid.UUID) (map[uuid.UUID][]equipment.Booking, error)
}

type equipmentQueriesImpl struct {
	readStore EquipmentReadStore
	engine    status.Engine
}

func NewEquipmentQueries(readStore EquipmentReadStore, engine status.Engine) EquipmentQueries {
	return &equipmentQueriesImpl{
		readStore: readStore,
		engine:    engine,
	}
}

// List reconciles rentals first so that a booking starting today already
// counts as Active when equipment status is derived.
func (q *equipmentQueriesImpl) List(ctx context.Context, filter EquipmentFilter) ([]*EquipmentView, error) {
	if _, err := q.engine.Reconcile(ctx); err != nil {
		return nil, err
	}

	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, translateReadErr(err, "list equipment", nil)
	}
	if err := q.derive(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *equipmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error) {
	if _, err := q.engine.Reconcile(ctx); err != nil {
		return nil, err
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "find equipment", ErrEquipmentNotFound)
	}
	if err := q.derive(ctx, []*EquipmentView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *equipmentQueriesImpl) CheckAvailability(ctx context.Context, id uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	window, err := rental.NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "find equipment", ErrEquipmentNotFound)
	}

	result := &AvailabilityView{
		EquipmentID: id,
		Start:       start,
		End:         end,
		Available:   true,
		QuoteCents:  quoteFromTiers(view.RateTiers, window.Days()),
	}

	err = availability.CheckWindow(ctx, bookingSource{q.readStore}, id, window)
	var conflict *errs.ConflictError
	switch {
	case err == nil:
	case errs.As(err, &conflict):
		result.Available = false
		result.ConflictingRentalIDs = conflict.ConflictingRentalIDs
	default:
		return nil, err
	}
	return result, nil
}

func (q *equipmentQueriesImpl) derive(ctx context.Context, views []*EquipmentView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	bookings, err := q.readStore.OpenBookings(ctx, ids)
	if err != nil {
		return translateReadErr(err, "list equipment bookings", nil)
	}
	for _, v := range views {
		v.Status = q.engine.EquipmentStatus(equipment.Status(v.ManualStatus), bookings[v.ID]).String()
	}
	return nil
}

// bookingSource adapts the read store to the resolver.
type bookingSource struct {
	readStore EquipmentReadStore
}

func (b bookingSource) BookingsForEquipment(ctx context.Context, id uuid.UUID) ([]equipment.Booking, error) {
	byID, err := b.readStore.OpenBookings(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}

func quoteFromTiers(views []RateTierView, days int) int64 {
	tiers := make([]equipment.RateTier, 0, len(views))
	for _, v := range views {
		tier, err := equipment.NewRateTier(v.Label, v.Days, v.PriceCents)
		if err != nil {
			return 0
		}
		tiers = append(tiers, tier)
	}
	card, err := equipment.NewRateCard(tiers)
	if err != nil {
		return 0
	}
	return card.Quote(days).Cents()
}
