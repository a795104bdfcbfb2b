//go:build unit || e2e

package builder

import (
	"time"

	"gear-rental/internal/domain/money"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	TotalCents int64
	VoidCents  *int64
	Notes      string
}

// NewRentalBuilder defaults to a two-day Reserved booking starting the day after FixedNow.
func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Start:      FixedNow.Add(24 * time.Hour),
		End:        FixedNow.Add(72 * time.Hour),
		Status:     "Reserved",
		TotalCents: 10000,
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// BuildDomain reconstructs the rental as stored, so Status is taken verbatim.
func (r *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	return r.BuildRecord().Rental()
}

// BuildNew runs the creation path, deriving the initial status from FixedNow.
func (r *RentalBuilder) BuildNew() (*rental.Rental, error) {
	w, err := rental.NewWindow(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	total, err := money.New(r.TotalCents)
	if err != nil {
		return nil, err
	}
	return rental.NewRental(r.CustomerID, w, total, r.Notes, FixedNow)
}

func (r *RentalBuilder) BuildRecord() rental.Record {
	return rental.Record{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Start:      r.Start,
		End:        r.End,
		Status:     r.Status,
		TotalCents: r.TotalCents,
		VoidCents:  r.VoidCents,
		Notes:      r.Notes,
		CreatedAt:  FixedNow,
		UpdatedAt:  FixedNow,
	}
}

func (r *RentalBuilder) BuildInfra() dbq.Rentals {
	row := dbq.Rentals{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Status:     r.Status,
		TotalCents: r.TotalCents,
		Notes:      r.Notes,
		CreatedAt:  pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
	if !r.Start.IsZero() {
		row.StartAt = pgtype.Timestamptz{Time: r.Start, Valid: true}
	}
	if !r.End.IsZero() {
		row.EndAt = pgtype.Timestamptz{Time: r.End, Valid: true}
	}
	if r.VoidCents != nil {
		row.VoidCents = pgtype.Int8{Int64: *r.VoidCents, Valid: true}
	}
	return row
}

// Fluent builder methods
func (r *RentalBuilder) WithWindow(start, end time.Time) *RentalBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *RentalBuilder) WithStatus(status string) *RentalBuilder {
	r.Status = status
	return r
}

func (r *RentalBuilder) WithCustomerID(id uuid.UUID) *RentalBuilder {
	r.CustomerID = id
	return r
}

func (r *RentalBuilder) WithTotal(cents int64) *RentalBuilder {
	r.TotalCents = cents
	return r
}
