//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/usecase/shared"
	"gear-rental/tests/common/builder"
	sharedmock "gear-rental/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// uowFixture runs every Within callback against the same mocked transaction.
type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	rentals       *sharedmock.MockRentalRepository
	equipment     *sharedmock.MockEquipmentRepository
	customers     *sharedmock.MockCustomerRepository
	cancellations *sharedmock.MockCancellationRepository
	verifications *sharedmock.MockVerificationRepository
	users         *sharedmock.MockUserRepository
	clock         *clock.MockClock
}

func newUoWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		rentals:       sharedmock.NewMockRentalRepository(ctrl),
		equipment:     sharedmock.NewMockEquipmentRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		cancellations: sharedmock.NewMockCancellationRepository(ctrl),
		verifications: sharedmock.NewMockVerificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		clock:         clock.NewMockClock(builder.FixedNow),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Rentals().Return(f.rentals).AnyTimes()
	f.tx.EXPECT().Equipment().Return(f.equipment).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	f.tx.EXPECT().Cancellations().Return(f.cancellations).AnyTimes()
	f.tx.EXPECT().Verifications().Return(f.verifications).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	return f
}

func mustEquipment(t *testing.T, b *builder.EquipmentBuilder) *equipment.Equipment {
	t.Helper()
	e, err := b.BuildDomain()
	require.NoError(t, err)
	return e
}
