//go:build unit

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gear-rental/internal/cli"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/status"
	commandsmock "gear-rental/tests/mock/commands"
	queriesmock "gear-rental/tests/mock/queries"
	statusmock "gear-rental/tests/mock/status"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	rentalA     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	rentalB     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	rentalC     = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	equipmentID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	ranAt       = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	engine    *statusmock.MockEngine
	equipment *queriesmock.MockEquipmentQueries
	users     *commandsmock.MockUserCommands
	loads     int
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		engine:    statusmock.NewMockEngine(ctrl),
		equipment: queriesmock.NewMockEquipmentQueries(ctrl),
		users:     commandsmock.NewMockUserCommands(ctrl),
	}
}

func (f *fixture) load(_ context.Context) (*cli.Services, func(), error) {
	f.loads++
	return &cli.Services{
		Engine:    f.engine,
		Equipment: f.equipment,
		Users:     f.users,
		Location:  time.UTC,
	}, func() {}, nil
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(f.load)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestReconcile(t *testing.T) {
	t.Run("clean run renders the transitions", func(t *testing.T) {
		f := newFixture(t)
		f.engine.EXPECT().Reconcile(gomock.Any()).Return(&status.Report{
			RanAt:   ranAt,
			Scanned: 2,
			Transitions: []status.Transition{
				{RentalID: rentalA, From: rental.StatusReserved, To: rental.StatusActive},
			},
			Skipped: 1,
		}, nil)

		out, _, err := f.run(t, "", "reconcile")

		require.NoError(t, err)
		golden(t).Assert(t, "reconcile_clean", []byte(out))
	})

	t.Run("failed records exit 1 and are listed", func(t *testing.T) {
		f := newFixture(t)
		f.engine.EXPECT().Reconcile(gomock.Any()).Return(&status.Report{
			RanAt:   ranAt,
			Scanned: 4,
			Transitions: []status.Transition{
				{RentalID: rentalA, From: rental.StatusReserved, To: rental.StatusActive},
				{RentalID: rentalB, From: rental.StatusActive, To: rental.StatusCompleted},
			},
			Skipped:   1,
			Integrity: []status.RecordFailure{{RentalID: rentalC, Error: "start time is missing"}},
		}, nil)

		out, _, err := f.run(t, "", "reconcile")

		require.Error(t, err)
		assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
		golden(t).Assert(t, "reconcile_failures", []byte(out))
	})

	t.Run("json output wraps the report", func(t *testing.T) {
		f := newFixture(t)
		f.engine.EXPECT().Reconcile(gomock.Any()).Return(&status.Report{RanAt: ranAt, Scanned: 3, Skipped: 3}, nil)

		out, _, err := f.run(t, "", "--format", "json", "reconcile")

		require.NoError(t, err)
		var resp struct {
			Status string        `json:"status"`
			Data   status.Report `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, 3, resp.Data.Scanned)
		assert.True(t, resp.Data.RanAt.Equal(ranAt))
	})

	t.Run("store failure exits 2", func(t *testing.T) {
		f := newFixture(t)
		f.engine.EXPECT().Reconcile(gomock.Any()).Return(nil, errs.ErrStoreUnavailable)

		_, errOut, err := f.run(t, "", "reconcile")

		require.Error(t, err)
		assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
		assert.Contains(t, errOut, "reconcile failed")
	})

	t.Run("invalid schedule is rejected before anything runs", func(t *testing.T) {
		f := newFixture(t)

		_, errOut, err := f.run(t, "", "reconcile", "--schedule", "every tuesday")

		require.Error(t, err)
		assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
		assert.Contains(t, errOut, "invalid --schedule")
	})

	t.Run("scheduled mode stops with its context", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		root := cli.NewRootCommand(f.load)
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"reconcile", "--schedule", "0 3 * * *"})

		require.NoError(t, root.ExecuteContext(ctx))
		assert.Equal(t, 1, f.loads)
	})
}

func TestCheck(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	args := []string{"check", equipmentID.String(), "--start", "2025-06-02T09:00:00Z", "--end", "2025-06-04T09:00:00Z"}

	t.Run("available item shows the quote", func(t *testing.T) {
		f := newFixture(t)
		f.equipment.EXPECT().CheckAvailability(gomock.Any(), equipmentID, start, end).Return(&queries.AvailabilityView{
			EquipmentID: equipmentID,
			Start:       start,
			End:         end,
			Available:   true,
			QuoteCents:  10000,
		}, nil)

		out, _, err := f.run(t, "", args...)

		require.NoError(t, err)
		golden(t).Assert(t, "check_available", []byte(out))
	})

	t.Run("busy item exits 1 and lists the conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.equipment.EXPECT().CheckAvailability(gomock.Any(), equipmentID, start, end).Return(&queries.AvailabilityView{
			EquipmentID:          equipmentID,
			Start:                start,
			End:                  end,
			ConflictingRentalIDs: []uuid.UUID{rentalA, rentalB},
		}, nil)

		out, _, err := f.run(t, "", args...)

		require.Error(t, err)
		assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
		golden(t).Assert(t, "check_conflicts", []byte(out))
	})

	t.Run("unknown item exits 2", func(t *testing.T) {
		f := newFixture(t)
		f.equipment.EXPECT().CheckAvailability(gomock.Any(), equipmentID, start, end).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrEquipmentNotFound))

		_, errOut, err := f.run(t, "", args...)

		require.Error(t, err)
		assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
		assert.Contains(t, errOut, "equipment not found")
	})

	t.Run("bad input never opens the store", func(t *testing.T) {
		testCases := []struct {
			name string
			args []string
		}{
			{name: "id", args: []string{"check", "not-a-uuid", "--start", "2025-06-02T09:00:00Z", "--end", "2025-06-04T09:00:00Z"}},
			{name: "start", args: []string{"check", equipmentID.String(), "--start", "tomorrow", "--end", "2025-06-04T09:00:00Z"}},
			{name: "end", args: []string{"check", equipmentID.String(), "--start", "2025-06-02T09:00:00Z", "--end", "2025-06-04"}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)

				_, _, err := f.run(t, "", tc.args...)

				require.Error(t, err)
				assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
				assert.Zero(t, f.loads)
			})
		}
	})
}

func TestUserCreate(t *testing.T) {
	t.Run("reads the password from stdin", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.MustParse("55555555-5555-5555-5555-555555555555")
		f.users.EXPECT().Create(gomock.Any(), commands.CreateUserInput{
			Email:    "desk@example.com",
			Password: "correct horse",
			Role:     "admin",
		}).Return(id, nil)

		out, _, err := f.run(t, "correct horse\n", "user", "create", "--email", "desk@example.com", "--role", "admin", "--password-stdin")

		require.NoError(t, err)
		assert.Equal(t, "✓ created admin user desk@example.com (55555555-5555-5555-5555-555555555555)\n", out)
	})

	t.Run("duplicate email exits 1", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateUser)

		_, errOut, err := f.run(t, "secret-password\n", "user", "create", "--email", "desk@example.com", "--password-stdin")

		require.Error(t, err)
		assert.Equal(t, cli.ExitFailure, cli.GetExitCode(err))
		assert.Contains(t, errOut, "already exists")
	})

	t.Run("missing password exits 2", func(t *testing.T) {
		t.Setenv("RENTALCTL_PASSWORD", "")
		f := newFixture(t)

		_, _, err := f.run(t, "", "user", "create", "--email", "desk@example.com")

		require.Error(t, err)
		assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
		assert.Zero(t, f.loads)
	})
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	f := newFixture(t)

	_, errOut, err := f.run(t, "", "--format", "yaml", "reconcile")

	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
	assert.Contains(t, errOut, "invalid format")
}
