package converter

import (
	"gear-rental/internal/domain/money"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RentalToInfra(r *rental.Rental) dbq.CreateRentalParams {
	w := r.Window()
	return dbq.CreateRentalParams{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		StartAt:    pgconv.TimeToPgtype(w.Start()),
		EndAt:      pgconv.TimeToPgtype(w.End()),
		Status:     r.Status().String(),
		TotalCents: r.TotalPrice().Cents(),
		VoidCents:  pgconv.Int64PtrToPgtype(moneyPtrCents(r.VoidAmount())),
		Notes:      r.Notes(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// RentalRecordFromInfra keeps NULL timestamps as zero times so validation can
// report them per record.
func RentalRecordFromInfra(row dbq.Rentals) rental.Record {
	return rental.Record{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Start:      pgconv.TimeFromPgtype(row.StartAt),
		End:        pgconv.TimeFromPgtype(row.EndAt),
		Status:     row.Status,
		TotalCents: row.TotalCents,
		VoidCents:  pgconv.Int64PtrFromPgtype(row.VoidCents),
		Notes:      row.Notes,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func RentalFromInfra(row dbq.Rentals) (*rental.Rental, error) {
	return RentalRecordFromInfra(row).Rental()
}

func CancellationToInfra(c *rental.Cancellation) dbq.CreateRentalCancellationParams {
	var by *uuid.UUID
	if id := c.CancelledBy(); id != uuid.Nil {
		by = &id
	}
	return dbq.CreateRentalCancellationParams{
		ID:          c.ID(),
		RentalID:    c.RentalID(),
		VoidCents:   c.VoidAmount().Cents(),
		Reason:      c.Reason(),
		CancelledBy: pgconv.UUIDPtrToPgtype(by),
		CreatedAt:   pgconv.TimeToPgtype(c.CancelledAt()),
	}
}

func CancellationFromInfra(row dbq.RentalCancellations) (*rental.Cancellation, error) {
	void, err := money.New(row.VoidCents)
	if err != nil {
		return nil, err
	}
	var by uuid.UUID
	if p := pgconv.UUIDPtrFromPgtype(row.CancelledBy); p != nil {
		by = *p
	}
	return rental.ReconstructCancellation(row.ID, row.RentalID, by, void, row.Reason, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func moneyPtrCents(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}
