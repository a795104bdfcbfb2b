package rental

import (
	"errors"
	"strings"
	"time"

	"gear-rental/internal/domain/money"

	"github.com/google/uuid"
)

var ErrReasonTooLong = errors.New("cancellation reason must be at most 500 characters")

const maxReasonLength = 500

// Cancellation is the audit record written with a rental's move to Cancelled.
type Cancellation struct {
	id          uuid.UUID
	rentalID    uuid.UUID
	cancelledBy uuid.UUID
	voidAmount  money.Money
	reason      string
	cancelledAt time.Time
}

// cancelledBy is uuid.Nil when no staff user is attached, e.g. from the CLI.
func NewCancellation(rentalID, cancelledBy uuid.UUID, void money.Money, reason string, now time.Time) (*Cancellation, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &Cancellation{
		id:          uuid.New(),
		rentalID:    rentalID,
		cancelledBy: cancelledBy,
		voidAmount:  void,
		reason:      reason,
		cancelledAt: now,
	}, nil
}

func ReconstructCancellation(id, rentalID, cancelledBy uuid.UUID, void money.Money, reason string, cancelledAt time.Time) *Cancellation {
	return &Cancellation{
		id:          id,
		rentalID:    rentalID,
		cancelledBy: cancelledBy,
		voidAmount:  void,
		reason:      reason,
		cancelledAt: cancelledAt,
	}
}

func (c *Cancellation) ID() uuid.UUID           { return c.id }
func (c *Cancellation) RentalID() uuid.UUID     { return c.rentalID }
func (c *Cancellation) CancelledBy() uuid.UUID  { return c.cancelledBy }
func (c *Cancellation) VoidAmount() money.Money { return c.voidAmount }
func (c *Cancellation) Reason() string          { return c.reason }
func (c *Cancellation) CancelledAt() time.Time  { return c.cancelledAt }
