//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gear-rental/internal/domain/money"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/infra/repository"
	"gear-rental/tests/common/builder"
	repositorymock "gear-rental/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockDBTX is only passed through; the query mocks never touch it.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

var _ dbq.DBTX = mockDBTX{}

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: rental created"},
		{name: "error: database error", queryErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "error: unknown customer", queryErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			repo := repository.NewRentalRepository(mockQueries)
			rent, err := builder.NewRentalBuilder().BuildDomain()
			require.NoError(t, err)
			db := mockDBTX{}

			mockQueries.EXPECT().CreateRental(ctx, db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ dbq.DBTX, arg dbq.CreateRentalParams) error {
					assert.Equal(t, rent.ID(), arg.ID)
					assert.Equal(t, "Reserved", arg.Status)
					assert.False(t, arg.VoidCents.Valid)
					return tc.queryErr
				})

			err = repo.Create(ctx, db, rent)
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

func TestRentalRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		affected    int64
		queryErr    error
		wantChanged bool
		wantErr     bool
	}{
		{name: "success: row updated", affected: 1, wantChanged: true},
		{name: "success: another writer got there first", affected: 0, wantChanged: false},
		{name: "error: database error", queryErr: errors.New("timeout"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			repo := repository.NewRentalRepository(mockQueries)
			rent, err := builder.NewRentalBuilder().BuildDomain()
			require.NoError(t, err)
			db := mockDBTX{}

			mockQueries.EXPECT().TransitionRentalStatus(ctx, db, dbq.TransitionRentalStatusParams{
				ID:         rent.ID(),
				FromStatus: "Reserved",
				ToStatus:   "Active",
				UpdatedAt:  pgTime(now),
			}).Return(tc.affected, tc.queryErr)

			changed, err := repo.TransitionStatus(ctx, db, rent.ID(), rental.StatusReserved, rental.StatusActive, now)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}

func TestRentalRepository_SaveState(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cancelled state written with void amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
		repo := repository.NewRentalRepository(mockQueries)
		rent, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		void, _ := money.New(1500)
		require.NoError(t, rent.Cancel(void, builder.FixedNow))

		mockQueries.EXPECT().SetRentalStatusAndVoid(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ dbq.DBTX, arg dbq.SetRentalStatusAndVoidParams) (int64, error) {
				assert.Equal(t, "Reserved", arg.FromStatus)
				assert.Equal(t, "Cancelled", arg.ToStatus)
				assert.True(t, arg.VoidCents.Valid)
				assert.Equal(t, int64(1500), arg.VoidCents.Int64)
				return 1, nil
			})

		require.NoError(t, repo.SaveState(ctx, mockDBTX{}, rent, rental.StatusReserved))
	})

	t.Run("error: stored status moved on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
		repo := repository.NewRentalRepository(mockQueries)
		rent, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().SetRentalStatusAndVoid(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err = repo.SaveState(ctx, mockDBTX{}, rent, rental.StatusReserved)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConcurrentUpdate))
	})
}

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
