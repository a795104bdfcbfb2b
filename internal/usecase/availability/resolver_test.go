//go:build unit

package availability_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type memorySource struct {
	mu       sync.Mutex
	bookings map[uuid.UUID][]equipment.Booking
	err      error
	calls    int
}

func newMemorySource() *memorySource {
	return &memorySource{bookings: map[uuid.UUID][]equipment.Booking{}}
}

func (m *memorySource) BookingsForEquipment(_ context.Context, id uuid.UUID) ([]equipment.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]equipment.Booking(nil), m.bookings[id]...), nil
}

func (m *memorySource) add(id uuid.UUID, b equipment.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[id] = append(m.bookings[id], b)
}

var day1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func hoursFrom(h int) time.Time {
	return day1.Add(time.Duration(h) * time.Hour)
}

func TestCheckConflict(t *testing.T) {
	ctx := context.Background()
	equipmentID := uuid.New()

	t.Run("success: free equipment", func(t *testing.T) {
		src := newMemorySource()
		err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(0), hoursFrom(24))
		assert.NoError(t, err)
	})

	t.Run("success: back-to-back bookings are allowed", func(t *testing.T) {
		src := newMemorySource()
		src.add(equipmentID, equipment.Booking{RentalID: uuid.New(), Start: hoursFrom(0), End: hoursFrom(24), Status: rental.StatusReserved})

		assert.NoError(t, availability.CheckConflict(ctx, src, equipmentID, hoursFrom(24), hoursFrom(48)))
		assert.NoError(t, availability.CheckConflict(ctx, src, equipmentID, hoursFrom(-24), hoursFrom(0)))
	})

	t.Run("error: overlapping booking conflicts", func(t *testing.T) {
		src := newMemorySource()
		existing := equipment.Booking{RentalID: uuid.New(), Start: hoursFrom(33), End: hoursFrom(81), Status: rental.StatusReserved}
		src.add(equipmentID, existing)

		err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(10), hoursFrom(58))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		var ce *errs.ConflictError
		require.True(t, errs.As(err, &ce))
		assert.Equal(t, equipmentID, ce.EquipmentID)
		assert.Equal(t, []uuid.UUID{existing.RentalID}, ce.ConflictingRentalIDs)
	})

	t.Run("error: an open booking with an inverted stored window conflicts", func(t *testing.T) {
		src := newMemorySource()
		broken := equipment.Booking{RentalID: uuid.New(), Start: hoursFrom(100), End: hoursFrom(90), Status: rental.StatusReserved}
		src.add(equipmentID, broken)

		err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(0), hoursFrom(1))

		var ce *errs.ConflictError
		require.True(t, errs.As(err, &ce))
		assert.Equal(t, []uuid.UUID{broken.RentalID}, ce.ConflictingRentalIDs)
	})

	t.Run("error: invalid window is rejected before store access", func(t *testing.T) {
		src := newMemorySource()

		err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(5), hoursFrom(5))

		assert.True(t, errs.Is(err, errs.ErrInvalidWindow))
		assert.Equal(t, 0, src.calls)
	})

	t.Run("error: store failure is not a conflict", func(t *testing.T) {
		src := newMemorySource()
		src.err = errors.New("connection refused")

		err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(0), hoursFrom(1))

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
		assert.False(t, errs.Is(err, errs.ErrConflict))
	})
}

// Accepting every window the resolver approves never yields two overlapping
// open bookings on one item.
func TestCheckConflictNeverDoubleBooks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		src := newMemorySource()
		equipmentID := uuid.New()

		n := rapid.IntRange(1, 30).Draw(t, "requests")
		for i := 0; i < n; i++ {
			start := rapid.IntRange(0, 240).Draw(t, "start")
			length := rapid.IntRange(1, 72).Draw(t, "length")
			status := rapid.SampledFrom([]rental.Status{
				rental.StatusReserved, rental.StatusActive, rental.StatusCancelled,
			}).Draw(t, "status")

			err := availability.CheckConflict(ctx, src, equipmentID, hoursFrom(start), hoursFrom(start+length))
			if err != nil {
				if !errs.Is(err, errs.ErrConflict) {
					t.Fatalf("unexpected error: %v", err)
				}
				continue
			}
			src.add(equipmentID, equipment.Booking{
				RentalID: uuid.New(),
				Start:    hoursFrom(start),
				End:      hoursFrom(start + length),
				Status:   status,
			})
		}

		var open []equipment.Booking
		for _, b := range src.bookings[equipmentID] {
			if !b.Status.IsTerminal() {
				open = append(open, b)
			}
		}
		for i := range open {
			for j := i + 1; j < len(open); j++ {
				a, b := open[i], open[j]
				if a.Start.Before(b.End) && b.Start.Before(a.End) {
					t.Fatalf("bookings %v and %v overlap", a, b)
				}
			}
		}
	})
}
