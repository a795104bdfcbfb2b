package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/infra/repository"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/pgconv"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var tracer = otel.Tracer("gear-rental/uow")

// retryPolicy bounds how often a write transaction is replayed after the
// database aborted it for a lock or serialization reason.
type retryPolicy struct {
	maxAttempts int
	base        time.Duration
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

var defaultRetry = retryPolicy{maxAttempts: 4, base: 100 * time.Millisecond}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *dbq.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *dbq.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: defaultRetry,
	}
}

// Within runs fn in a ReadCommitted transaction. Equipment rows are locked
// explicitly by the commands that need it.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, span := tracer.Start(ctx, "uow.Within")
	defer span.End()

	err := u.withRetry(ctx, func() error {
		return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction failed")
	}
	return err
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return infra.WrapRepoErr("begin read-only transaction", errs.Mark(err, errTransactionBegin))
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit read-only transaction", errs.Mark(err, errTransactionCommit))
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

func (u *PostgresUoW) withRetry(ctx context.Context, run func() error) error {
	var err error
	for attempt := 0; attempt < u.retry.maxAttempts; attempt++ {
		if err = run(); err == nil || !isRetryableError(err) {
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
		trace.SpanFromContext(ctx).AddEvent("retry", trace.WithAttributes(
			attribute.Int("attempt", attempt+1)))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errs.Wrap(ctx.Err(), "transaction retry aborted")
		case <-timer.C:
		}
	}

	slog.ErrorContext(ctx, "transaction failed after max retries",
		"attempts", u.retry.maxAttempts,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// runOnce owns exactly one pgx transaction so that no deferred rollback
// outlives its attempt.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return infra.WrapRepoErr("begin transaction", errs.Mark(err, errTransactionBegin))
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit transaction", errs.Mark(err, errTransactionCommit))
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	// after a commit this is a no-op returning ErrTxClosed
	if err := tx.Rollback(ctx); err != nil && !errs.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx dbq.DBTX
	uow  *PostgresUoW

	// built on first use, bound to this transaction
	rentalRepo       shared.RentalRepository
	equipmentRepo    shared.EquipmentRepository
	customerRepo     shared.CustomerRepository
	cancellationRepo shared.CancellationRepository
	verificationRepo shared.VerificationRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() dbq.DBTX {
	return t.dbtx
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.uow.q)
	}
	return t.rentalRepo
}

func (t *pgTx) Equipment() shared.EquipmentRepository {
	if t.equipmentRepo == nil {
		t.equipmentRepo = repository.NewEquipmentRepository(t.uow.q)
	}
	return t.equipmentRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q)
	}
	return t.customerRepo
}

func (t *pgTx) Cancellations() shared.CancellationRepository {
	if t.cancellationRepo == nil {
		t.cancellationRepo = repository.NewCancellationRepository(t.uow.q)
	}
	return t.cancellationRepo
}

func (t *pgTx) Verifications() shared.VerificationRepository {
	if t.verificationRepo == nil {
		t.verificationRepo = repository.NewVerificationRepository(t.uow.q)
	}
	return t.verificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.uow.q,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	q    *dbq.Queries
	dbtx dbq.DBTX
}

func (r *commandReads) RentalByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.q.FindRentalByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapFindErr("rental", err)
	}
	return converter.RentalFromInfra(row)
}

func (r *commandReads) EquipmentByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	row, err := r.q.FindEquipmentByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapFindErr("equipment", err)
	}
	return converter.EquipmentFromInfra(row)
}

func (r *commandReads) LockEquipment(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	row, err := r.q.LockEquipment(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapFindErr("equipment", err)
	}
	return converter.EquipmentFromInfra(row)
}

func (r *commandReads) BookingsForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]equipment.Booking, error) {
	rows, err := r.q.ListEquipmentBookings(ctx, r.dbtx, []uuid.UUID{equipmentID}, statusStrings(rental.TerminalStatuses()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment bookings", err)
	}
	bookings := make([]equipment.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, converter.BookingFromInfra(row))
	}
	return bookings, nil
}

func (r *commandReads) CountEquipmentRentals(ctx context.Context, equipmentID uuid.UUID) (int64, error) {
	n, err := r.q.CountEquipmentRentals(ctx, r.dbtx, equipmentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count equipment rentals", err)
	}
	return n, nil
}

func (r *commandReads) OpenRentals(ctx context.Context) ([]rental.Record, error) {
	rows, err := r.q.ListRentalsExcludingStatuses(ctx, r.dbtx, statusStrings(rental.TerminalStatuses()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open rentals", err)
	}
	records := make([]rental.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, converter.RentalRecordFromInfra(row))
	}
	return records, nil
}

func (r *commandReads) VerificationExists(ctx context.Context, rentalID uuid.UUID) (bool, error) {
	_, err := r.q.FindVerificationByRentalID(ctx, r.dbtx, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to find verification", err)
	}
	return true, nil
}

func wrapFindErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity, err)
}

func statusStrings(statuses []rental.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
