package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentReadQueries interface {
	FindEquipmentByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.Equipment, error)
	ListEquipment(ctx context.Context, db dbq.DBTX, arg dbq.ListEquipmentParams) ([]dbq.Equipment, error)
	ListEquipmentBookings(ctx context.Context, db dbq.DBTX, equipmentIDs []uuid.UUID, excludedStatuses []string) ([]dbq.ListEquipmentBookingsRow, error)
}

type EquipmentReadStore struct {
	queries EquipmentReadQueries
	db      dbq.DBTX
}

func NewEquipmentReadStore(queries EquipmentReadQueries, db dbq.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	row, err := r.queries.FindEquipmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return toEquipmentView(row), nil
}

func (r *EquipmentReadStore) List(ctx context.Context, filter queries.EquipmentFilter) ([]*queries.EquipmentView, error) {
	rows, err := r.queries.ListEquipment(ctx, r.db, dbq.ListEquipmentParams{
		IncludeInactive: filter.IncludeInactive,
		Type:            filter.Type,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}

	views := make([]*queries.EquipmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toEquipmentView(row))
	}
	return views, nil
}

// OpenBookings groups, per equipment item, the rentals whose stored status is not terminal.
func (r *EquipmentReadStore) OpenBookings(ctx context.Context, equipmentIDs []uuid.UUID) (map[uuid.UUID][]equipment.Booking, error) {
	out := make(map[uuid.UUID][]equipment.Booking, len(equipmentIDs))
	if len(equipmentIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.ListEquipmentBookings(ctx, r.db, equipmentIDs, terminalStatuses())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment bookings", err)
	}
	for _, row := range rows {
		out[row.EquipmentID] = append(out[row.EquipmentID], converter.BookingFromInfra(row))
	}
	return out, nil
}

func toEquipmentView(row dbq.Equipment) *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:           row.ID,
		Name:         row.Name,
		Type:         row.Type,
		Quantity:     int(row.Quantity),
		Status:       row.Status,
		ManualStatus: row.Status,
		Active:       row.Active,
		RateTiers:    toRateTierViews(row.ID, row.RateTiers),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toRateTierViews(id uuid.UUID, data []byte) []queries.RateTierView {
	if len(data) == 0 {
		return []queries.RateTierView{}
	}
	var raw []converter.RateTierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("unreadable rate tiers", "equipment_id", id, "error", err.Error())
		return []queries.RateTierView{}
	}
	views := make([]queries.RateTierView, len(raw))
	for i, t := range raw {
		views[i] = queries.RateTierView{Label: t.Label, Days: t.Days, PriceCents: t.PriceCents}
	}
	return views
}

func terminalStatuses() []string {
	terminal := rental.TerminalStatuses()
	out := make([]string, len(terminal))
	for i, s := range terminal {
		out[i] = s.String()
	}
	return out
}
