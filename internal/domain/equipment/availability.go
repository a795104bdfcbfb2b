package equipment

import (
	"time"

	"gear-rental/internal/domain/rental"

	"github.com/google/uuid"
)

// Booking is one rental window holding a piece of equipment.
type Booking struct {
	RentalID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   rental.Status
}

// Window returns the booking's window, or ErrInvalidWindow for a zero or
// inverted stored range.
func (b Booking) Window() (rental.Window, error) {
	return rental.NewWindow(b.Start, b.End)
}

// Corrupt reports an open booking whose stored window is unusable.
func (b Booking) Corrupt() bool {
	if b.Status.IsTerminal() {
		return false
	}
	_, err := b.Window()
	return err != nil
}

// ConflictingRentals returns the open bookings whose window overlaps w.
// Cancelled and Completed bookings never conflict. An open booking whose
// window cannot be read conflicts with every w.
func ConflictingRentals(bookings []Booking, w rental.Window) []uuid.UUID {
	var ids []uuid.UUID
	for _, b := range bookings {
		if b.Status.IsTerminal() {
			continue
		}
		existing, err := b.Window()
		if err != nil || existing.Overlaps(w) {
			ids = append(ids, b.RentalID)
		}
	}
	return ids
}

// DeriveStatus computes the status shown for one item. In Repair and Retired always win.
// Otherwise only Active bookings touching [today, tomorrow] make the item Rented; a Reserved
// booking for today does not count until it has been promoted to Active.
func DeriveStatus(manual Status, bookings []Booking, today, tomorrow time.Time) Status {
	if manual.IsManualOverride() {
		return manual
	}
	for _, b := range bookings {
		if b.Status != rental.StatusActive {
			continue
		}
		if !b.Start.After(tomorrow) && !b.End.Before(today) {
			return StatusRented
		}
	}
	return StatusAvailable
}
