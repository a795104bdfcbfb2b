package rental

import (
	"time"

	"github.com/google/uuid"
)

// Record is a rental row as stored, before validation. Batch readers keep
// records so that one corrupt row does not hide the others.
type Record struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	TotalCents int64
	VoidCents  *int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r Record) Rental() (*Rental, error) {
	return ReconstructRental(r.ID, r.CustomerID, r.Start, r.End, r.Status, r.TotalCents, r.VoidCents, r.Notes, r.CreatedAt, r.UpdatedAt)
}
