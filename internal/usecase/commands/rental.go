package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/money"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/saga"
	"gear-rental/internal/usecase/availability"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rental.go -destination=../../../tests/mock/commands/rental_mock.go -package=commandsmock

type CreateRentalInput struct {
	Start        time.Time
	End          time.Time
	EquipmentIDs []uuid.UUID
	Customer     CustomerInput
	// TotalCents overrides the quote computed from the equipment rate tiers.
	TotalCents *int64
	Notes      string
}

type CancelRentalInput struct {
	RentalID    uuid.UUID
	VoidCents   int64
	Reason      string
	CancelledBy uuid.UUID
}

// ItemResult is the outcome of attaching one equipment item.
type ItemResult struct {
	EquipmentID uuid.UUID
	Err         error
}

func (i ItemResult) Attached() bool {
	return i.Err == nil
}

type RentalResult struct {
	Rental   *rental.Rental
	Customer *customer.Customer
	Items    []ItemResult
}

// Failure reports the items that could not be attached, or nil when all were.
func (r *RentalResult) Failure() error {
	pf := &errs.PartialFailureError{Op: "attach equipment"}
	for _, item := range r.Items {
		if item.Attached() {
			pf.Succeeded = append(pf.Succeeded, item.EquipmentID.String())
			continue
		}
		pf.Failed = append(pf.Failed, errs.SubFailure{Name: item.EquipmentID.String(), Err: item.Err})
	}
	if len(pf.Failed) == 0 {
		return nil
	}
	return pf
}

type CancelResult struct {
	Rental       *rental.Rental
	Cancellation *rental.Cancellation
}

type RentalCommands interface {
	Create(ctx context.Context, input CreateRentalInput) (*RentalResult, error)
	AttachEquipment(ctx context.Context, rentalID uuid.UUID, equipmentIDs []uuid.UUID) (*RentalResult, error)
	Cancel(ctx context.Context, input CancelRentalInput) (*CancelResult, error)
}

type rentalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, clock clock.Clock) RentalCommands {
	return &rentalCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (r *rentalCommandsImpl) Create(ctx context.Context, input CreateRentalInput) (*RentalResult, error) {
	window, err := rental.NewWindow(input.Start, input.End)
	if err != nil {
		return nil, err
	}
	ids := uniqueIDs(input.EquipmentIDs)
	if len(ids) == 0 {
		return nil, ErrNoEquipment
	}

	now := r.clock.Now()
	candidate, err := input.Customer.ToDomain(now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	items, err := r.precheck(ctx, ids, window)
	if err != nil {
		return nil, err
	}

	total, err := r.resolveTotal(input.TotalCents, items, window)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := &RentalResult{}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, _, upsertErr := tx.Customers().Upsert(ctx, tx.DB(), candidate)
		if upsertErr != nil {
			return upsertErr
		}
		created, newErr := rental.NewRental(stored.ID(), window, total, input.Notes, now)
		if newErr != nil {
			return errs.Mark(newErr, ErrDomainValidation)
		}
		if createErr := tx.Rentals().Create(ctx, tx.DB(), created); createErr != nil {
			return createErr
		}
		result.Rental = created
		result.Customer = stored
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "create rental", nil)
	}

	result.Items = r.attachAll(ctx, result.Rental.ID(), ids, window)

	slog.Info("rental created",
		"rental_id", result.Rental.ID().String(),
		"customer_id", result.Customer.ID().String(),
		"items", len(ids),
		"failed_items", countFailed(result.Items))
	return result, nil
}

func (r *rentalCommandsImpl) AttachEquipment(ctx context.Context, rentalID uuid.UUID, equipmentIDs []uuid.UUID) (*RentalResult, error) {
	ids := uniqueIDs(equipmentIDs)
	if len(ids) == 0 {
		return nil, ErrNoEquipment
	}

	target, err := r.uow.CommandReads().RentalByID(ctx, rentalID)
	if err != nil {
		return nil, translateRepoErr(err, "load rental", ErrRentalNotFound)
	}
	if target.DerivedStatus(r.clock.Now()).IsTerminal() {
		return nil, ErrRentalNotOpen
	}

	result := &RentalResult{
		Rental: target,
		Items:  r.attachAll(ctx, rentalID, ids, target.Window()),
	}
	if failure := result.Failure(); failure != nil {
		slog.Warn("equipment attach partially failed",
			"rental_id", rentalID.String(),
			"error", failure.Error())
	}
	return result, nil
}

// precheck is lock-free and advisory. Every conflicting item is reported so
// the caller can fix the whole request at once.
func (r *rentalCommandsImpl) precheck(ctx context.Context, ids []uuid.UUID, window rental.Window) ([]*equipment.Equipment, error) {
	reads := r.uow.CommandReads()
	items := make([]*equipment.Equipment, 0, len(ids))
	var conflicts []*errs.ConflictError

	for _, id := range ids {
		item, err := reads.EquipmentByID(ctx, id)
		if err != nil {
			return nil, translateRepoErr(err, "load equipment", ErrEquipmentNotFound)
		}
		if !bookable(item) {
			return nil, errs.Wrap(ErrEquipmentNotBookable, id.String())
		}
		if err := availability.CheckWindow(ctx, reads, id, window); err != nil {
			var ce *errs.ConflictError
			if errs.As(err, &ce) {
				conflicts = append(conflicts, ce)
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}

	if len(conflicts) > 0 {
		return nil, &errs.ConflictReportError{Conflicts: conflicts}
	}
	return items, nil
}

func (r *rentalCommandsImpl) resolveTotal(override *int64, items []*equipment.Equipment, window rental.Window) (money.Money, error) {
	if override != nil {
		return money.New(*override)
	}
	total := money.Zero()
	for _, item := range items {
		total = total.Add(item.Rates().Quote(window.Days()))
	}
	return total, nil
}

// attachAll attaches every item in its own transaction, so one lost race
// does not undo the others.
func (r *rentalCommandsImpl) attachAll(ctx context.Context, rentalID uuid.UUID, ids []uuid.UUID, window rental.Window) []ItemResult {
	results := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		err := r.attachOne(ctx, rentalID, id, window)
		if err != nil {
			slog.Warn("failed to attach equipment",
				"rental_id", rentalID.String(),
				"equipment_id", id.String(),
				"error", err.Error())
		}
		results = append(results, ItemResult{EquipmentID: id, Err: err})
	}
	return results
}

// attachOne locks the equipment row before re-checking, so two concurrent
// attaches for the same item are serialized and the second sees the first.
func (r *rentalCommandsImpl) attachOne(ctx context.Context, rentalID, equipmentID uuid.UUID, window rental.Window) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Reads().LockEquipment(ctx, equipmentID)
		if err != nil {
			return err
		}
		if !bookable(item) {
			return ErrEquipmentNotBookable
		}
		if err := availability.CheckWindow(ctx, tx.Reads(), equipmentID, window); err != nil {
			var ce *errs.ConflictError
			if errs.As(err, &ce) && slices.Contains(ce.ConflictingRentalIDs, rentalID) {
				return ErrAlreadyAttached
			}
			return err
		}
		return tx.Rentals().AttachEquipment(ctx, tx.DB(), rentalID, equipmentID, r.clock.Now())
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrAlreadyAttached)
	}
	return translateRepoErr(err, "attach equipment", ErrEquipmentNotFound)
}

func (r *rentalCommandsImpl) Cancel(ctx context.Context, input CancelRentalInput) (*CancelResult, error) {
	void, err := money.New(input.VoidCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	target, err := r.uow.CommandReads().RentalByID(ctx, input.RentalID)
	if err != nil {
		return nil, translateRepoErr(err, "load rental", ErrRentalNotFound)
	}

	now := r.clock.Now()
	snapshot := target.Snapshot()
	if err := target.Cancel(void, now); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	audit, err := rental.NewCancellation(target.ID(), input.CancelledBy, void, input.Reason, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	run := saga.New("cancel_rental",
		saga.Step{
			Name: "cancel rental",
			Action: func(ctx context.Context) error {
				return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					return tx.Rentals().SaveState(ctx, tx.DB(), target, snapshot.Status)
				})
			},
			Compensate: func(ctx context.Context) error {
				target.Restore(snapshot, r.clock.Now())
				return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					return tx.Rentals().SaveState(ctx, tx.DB(), target, rental.StatusCancelled)
				})
			},
		},
		saga.Step{
			Name: "record cancellation",
			Action: func(ctx context.Context) error {
				return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					return tx.Cancellations().Create(ctx, tx.DB(), audit)
				})
			},
		},
	).With("rental_id", target.ID().String())

	if err := run.Run(ctx); err != nil {
		var pf *errs.PartialFailureError
		if errs.As(err, &pf) {
			return nil, pf
		}
		return nil, translateRepoErr(err, "cancel rental", ErrRentalNotFound)
	}

	slog.Info("rental cancelled",
		"rental_id", target.ID().String(),
		"from", snapshot.Status.String(),
		"void_cents", void.Cents())
	return &CancelResult{Rental: target, Cancellation: audit}, nil
}

func bookable(item *equipment.Equipment) bool {
	return item.IsActive() && !item.Status().IsManualOverride()
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func countFailed(items []ItemResult) int {
	n := 0
	for _, item := range items {
		if !item.Attached() {
			n++
		}
	}
	return n
}
