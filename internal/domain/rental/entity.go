package rental

import (
	"errors"
	"strings"
	"time"

	"gear-rental/internal/domain/money"
	"gear-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid rental status")
	ErrCustomerRequired = errors.New("customer is required")
	ErrWindowEnded      = errors.New("rental window has already ended")
	ErrNotesTooLong     = errors.New("notes must be at most 2000 characters")
	ErrNotCancellable   = errors.New("rental cannot be cancelled from its current status")
	ErrVoidExceedsTotal = errors.New("void amount cannot exceed total price")
)

const maxNotesLength = 2000

type Rental struct {
	id         uuid.UUID
	customerID uuid.UUID
	window     Window
	status     Status
	totalPrice money.Money
	voidAmount *money.Money
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRental books a window for a customer. The initial status is derived from now,
// so a rental that starts immediately is created Active.
func NewRental(customerID uuid.UUID, window Window, total money.Money, notes string, now time.Time) (*Rental, error) {
	if customerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	if !window.End().After(now) {
		return nil, ErrWindowEnded
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	return &Rental{
		id:         uuid.New(),
		customerID: customerID,
		window:     window,
		status:     DeriveStatus(StatusReserved, window, now),
		totalPrice: total,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructRental rebuilds a rental from stored fields. Bad timestamps, a bad status
// or negative amounts come back as a DataIntegrityError for this record only.
func ReconstructRental(
	id, customerID uuid.UUID,
	start, end time.Time,
	status string,
	totalCents int64,
	voidCents *int64,
	notes string,
	createdAt, updatedAt time.Time,
) (*Rental, error) {
	if start.IsZero() {
		return nil, errs.NewDataIntegrityError("rental", id, "start_at", "missing timestamp")
	}
	if end.IsZero() {
		return nil, errs.NewDataIntegrityError("rental", id, "end_at", "missing timestamp")
	}
	window, err := NewWindow(start, end)
	if err != nil {
		return nil, errs.NewDataIntegrityError("rental", id, "end_at", "end is not after start")
	}
	st, err := NewStatus(status)
	if err != nil {
		return nil, errs.NewDataIntegrityError("rental", id, "status", "unknown status "+status)
	}
	total, err := money.New(totalCents)
	if err != nil {
		return nil, errs.NewDataIntegrityError("rental", id, "total_price_cents", err.Error())
	}
	var void *money.Money
	if voidCents != nil {
		v, verr := money.New(*voidCents)
		if verr != nil {
			return nil, errs.NewDataIntegrityError("rental", id, "void_amount_cents", verr.Error())
		}
		void = &v
	}

	return &Rental{
		id:         id,
		customerID: customerID,
		window:     window,
		status:     st,
		totalPrice: total,
		voidAmount: void,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// DeriveStatus maps a stored status and window to the status shown at now.
// Cancelled is returned unchanged.
func DeriveStatus(stored Status, w Window, now time.Time) Status {
	if stored == StatusCancelled {
		return StatusCancelled
	}
	switch {
	case now.Before(w.start):
		return StatusReserved
	case now.Before(w.end):
		return StatusActive
	default:
		return StatusCompleted
	}
}

func (r *Rental) DerivedStatus(now time.Time) Status {
	return DeriveStatus(r.status, r.window, now)
}

// Reconcile applies the derived status to an open rental. Terminal rentals are left alone.
func (r *Rental) Reconcile(now time.Time) (from Status, changed bool) {
	from = r.status
	if !r.status.IsBlocking() {
		return from, false
	}
	next := r.DerivedStatus(now)
	if next == r.status {
		return from, false
	}
	r.status = next
	r.updatedAt = now
	return from, true
}

// Snapshot is the state a cancellation must restore when it is rolled back.
type Snapshot struct {
	Status     Status
	VoidAmount *money.Money
}

func (r *Rental) Snapshot() Snapshot {
	return Snapshot{Status: r.status, VoidAmount: r.voidAmount}
}

// Cancel moves a Reserved or Active rental to Cancelled. The check uses the derived
// status so a rental whose window has passed counts as Completed.
func (r *Rental) Cancel(void money.Money, now time.Time) error {
	if r.DerivedStatus(now).IsTerminal() {
		return ErrNotCancellable
	}
	if void.GreaterThan(r.totalPrice) {
		return ErrVoidExceedsTotal
	}
	r.status = StatusCancelled
	r.voidAmount = &void
	r.updatedAt = now
	return nil
}

func (r *Rental) Restore(s Snapshot, now time.Time) {
	r.status = s.Status
	r.voidAmount = s.VoidAmount
	r.updatedAt = now
}

func (r *Rental) ID() uuid.UUID            { return r.id }
func (r *Rental) CustomerID() uuid.UUID    { return r.customerID }
func (r *Rental) Window() Window           { return r.window }
func (r *Rental) Status() Status           { return r.status }
func (r *Rental) TotalPrice() money.Money  { return r.totalPrice }
func (r *Rental) VoidAmount() *money.Money { return r.voidAmount }
func (r *Rental) Notes() string            { return r.notes }
func (r *Rental) CreatedAt() time.Time     { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time     { return r.updatedAt }
