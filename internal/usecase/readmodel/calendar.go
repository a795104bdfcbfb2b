// Package readmodel holds projections shaped for a single screen rather than
// for a single table.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEntry is one rental bar on the booking calendar.
type CalendarEntry struct {
	RentalID       uuid.UUID   `json:"rental_id"`
	Title          string      `json:"title"`
	Start          time.Time   `json:"start"`
	End            time.Time   `json:"end"`
	Status         string      `json:"status"`
	CustomerID     uuid.UUID   `json:"customer_id"`
	EquipmentIDs   []uuid.UUID `json:"equipment_ids"`
	EquipmentNames []string    `json:"equipment_names"`
	IntegrityError string      `json:"integrity_error,omitempty"`
}

// CalendarDay groups the entries that touch one local calendar day.
type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}
