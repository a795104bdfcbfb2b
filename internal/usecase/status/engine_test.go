//go:build unit

package status_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/shared"
	"gear-rental/internal/usecase/status"
	"gear-rental/tests/common/builder"
	sharedmock "gear-rental/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineFixture struct {
	uow     *sharedmock.MockUnitOfWork
	reads   *sharedmock.MockCommandReads
	tx      *sharedmock.MockTx
	rentals *sharedmock.MockRentalRepository
	clock   *clock.MockClock
	engine  status.Engine
}

func newEngineFixture(t *testing.T, now time.Time) *engineFixture {
	ctrl := gomock.NewController(t)
	f := &engineFixture{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		rentals: sharedmock.NewMockRentalRepository(ctrl),
		clock:   clock.NewMockClock(now),
	}
	f.engine = status.NewEngine(f.uow, f.clock, time.UTC)
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Rentals().Return(f.rentals).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func TestReconcile(t *testing.T) {
	now := builder.FixedNow

	t.Run("success: promotes started and finished rentals", func(t *testing.T) {
		f := newEngineFixture(t, now)
		started := builder.NewRentalBuilder().WithWindow(now, now.Add(48*time.Hour)).BuildRecord()
		finished := builder.NewRentalBuilder().WithStatus("Active").WithWindow(now.Add(-72*time.Hour), now).BuildRecord()
		future := builder.NewRentalBuilder().BuildRecord()
		past := builder.NewRentalBuilder().WithWindow(now.Add(-96*time.Hour), now.Add(-48*time.Hour)).BuildRecord()

		f.reads.EXPECT().OpenRentals(gomock.Any()).Return([]rental.Record{started, finished, future, past}, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), started.ID, rental.StatusReserved, rental.StatusActive, now).Return(true, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), finished.ID, rental.StatusActive, rental.StatusCompleted, now).Return(true, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), past.ID, rental.StatusReserved, rental.StatusCompleted, now).Return(true, nil)

		report, err := f.engine.Reconcile(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, report.Scanned)
		assert.Equal(t, []status.Transition{
			{RentalID: started.ID, From: rental.StatusReserved, To: rental.StatusActive},
			{RentalID: finished.ID, From: rental.StatusActive, To: rental.StatusCompleted},
			{RentalID: past.ID, From: rental.StatusReserved, To: rental.StatusCompleted},
		}, report.Transitions)
		assert.False(t, report.HasFailures())
	})

	t.Run("success: second run writes nothing", func(t *testing.T) {
		f := newEngineFixture(t, now)
		active := builder.NewRentalBuilder().WithStatus("Active").WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).BuildRecord()
		reserved := builder.NewRentalBuilder().BuildRecord()
		f.reads.EXPECT().OpenRentals(gomock.Any()).Return([]rental.Record{active, reserved}, nil)

		report, err := f.engine.Reconcile(context.Background())

		require.NoError(t, err)
		assert.Empty(t, report.Transitions)
		assert.Equal(t, 2, report.Scanned)
	})

	t.Run("success: concurrent writer wins and the record is skipped", func(t *testing.T) {
		f := newEngineFixture(t, now)
		started := builder.NewRentalBuilder().WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).BuildRecord()
		f.reads.EXPECT().OpenRentals(gomock.Any()).Return([]rental.Record{started}, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), started.ID, rental.StatusReserved, rental.StatusActive, now).Return(false, nil)

		report, err := f.engine.Reconcile(context.Background())

		require.NoError(t, err)
		assert.Empty(t, report.Transitions)
		assert.Equal(t, 1, report.Skipped)
	})

	t.Run("success: corrupt record is isolated", func(t *testing.T) {
		f := newEngineFixture(t, now)
		corrupt := builder.NewRentalBuilder().WithWindow(now.Add(time.Hour), now.Add(-time.Hour)).BuildRecord()
		unknown := builder.NewRentalBuilder().WithStatus("OnHold").BuildRecord()
		started := builder.NewRentalBuilder().WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).BuildRecord()
		f.reads.EXPECT().OpenRentals(gomock.Any()).Return([]rental.Record{corrupt, unknown, started}, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), started.ID, rental.StatusReserved, rental.StatusActive, now).Return(true, nil)

		report, err := f.engine.Reconcile(context.Background())

		require.NoError(t, err)
		require.Len(t, report.Integrity, 2)
		assert.Equal(t, corrupt.ID, report.Integrity[0].RentalID)
		assert.Equal(t, unknown.ID, report.Integrity[1].RentalID)
		assert.Len(t, report.Transitions, 1)
		assert.True(t, report.HasFailures())
	})

	t.Run("success: write failure is reported and the batch continues", func(t *testing.T) {
		f := newEngineFixture(t, now)
		first := builder.NewRentalBuilder().WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).BuildRecord()
		second := builder.NewRentalBuilder().WithWindow(now.Add(-2*time.Hour), now.Add(time.Hour)).BuildRecord()
		f.reads.EXPECT().OpenRentals(gomock.Any()).Return([]rental.Record{first, second}, nil)
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), first.ID, gomock.Any(), gomock.Any(), now).Return(false, errors.New("connection reset"))
		f.rentals.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), second.ID, gomock.Any(), gomock.Any(), now).Return(true, nil)

		report, err := f.engine.Reconcile(context.Background())

		require.NoError(t, err)
		require.Len(t, report.WriteFailures, 1)
		assert.Equal(t, first.ID, report.WriteFailures[0].RentalID)
		assert.Len(t, report.Transitions, 1)
	})

	t.Run("error: store unavailable", func(t *testing.T) {
		f := newEngineFixture(t, now)
		f.reads.EXPECT().OpenRentals(gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

		report, err := f.engine.Reconcile(context.Background())

		assert.Nil(t, report)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func TestEquipmentStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	engine := status.NewEngine(sharedmock.NewMockUnitOfWork(ctrl), clock.NewMockClock(now), time.UTC)

	activeToday := equipment.Booking{
		RentalID: uuid.New(),
		Start:    now.Add(-2 * time.Hour),
		End:      now.Add(24 * time.Hour),
		Status:   rental.StatusActive,
	}
	reservedToday := activeToday
	reservedToday.Status = rental.StatusReserved

	tests := []struct {
		name     string
		manual   equipment.Status
		bookings []equipment.Booking
		want     equipment.Status
	}{
		{"success: no bookings", equipment.StatusAvailable, nil, equipment.StatusAvailable},
		{"success: active booking today", equipment.StatusAvailable, []equipment.Booking{activeToday}, equipment.StatusRented},
		{"success: reserved booking today is not rented", equipment.StatusAvailable, []equipment.Booking{reservedToday}, equipment.StatusAvailable},
		{"success: retired wins over active booking", equipment.StatusRetired, []equipment.Booking{activeToday}, equipment.StatusRetired},
		{"success: in repair wins over active booking", equipment.StatusInRepair, []equipment.Booking{activeToday}, equipment.StatusInRepair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.EquipmentStatus(tt.manual, tt.bookings))
		})
	}
}
