// Package status derives rental and equipment statuses from the clock and
// writes rental transitions back to the store.
package status

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=engine.go -destination=../../../tests/mock/status/engine_mock.go -package=statusmock

var tracer = otel.Tracer("gear-rental/status")

type Engine interface {
	// Reconcile writes the derived status of every open rental back to the
	// store. It is idempotent for a fixed clock.
	Reconcile(ctx context.Context) (*Report, error)
	// EquipmentStatus derives the displayed status of one item at the current time.
	EquipmentStatus(manual equipment.Status, bookings []equipment.Booking) equipment.Status
	Now() time.Time
}

type Transition struct {
	RentalID uuid.UUID     `json:"rental_id"`
	From     rental.Status `json:"from"`
	To       rental.Status `json:"to"`
}

type RecordFailure struct {
	RentalID uuid.UUID `json:"rental_id"`
	Error    string    `json:"error"`
}

type Report struct {
	RanAt         time.Time       `json:"ran_at"`
	Scanned       int             `json:"scanned"`
	Transitions   []Transition    `json:"transitions"`
	Skipped       int             `json:"skipped"`
	Integrity     []RecordFailure `json:"integrity_errors"`
	WriteFailures []RecordFailure `json:"write_failures"`
}

// HasFailures reports whether any record could not be derived or written.
func (r *Report) HasFailures() bool {
	return len(r.Integrity) > 0 || len(r.WriteFailures) > 0
}

type engineImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewEngine(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &engineImpl{uow: uow, clock: clk, loc: loc}
}

func (e *engineImpl) Now() time.Time {
	return e.clock.Now()
}

func (e *engineImpl) EquipmentStatus(manual equipment.Status, bookings []equipment.Booking) equipment.Status {
	today, tomorrow := clock.DayBounds(e.clock.Now(), e.loc)
	return equipment.DeriveStatus(manual, bookings, today, tomorrow)
}

func (e *engineImpl) Reconcile(ctx context.Context) (*Report, error) {
	ctx, span := tracer.Start(ctx, "status.Reconcile")
	defer span.End()

	now := e.clock.Now()
	report := &Report{RanAt: now}

	records, err := e.uow.CommandReads().OpenRentals(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing open rentals failed")
		return nil, errs.NewStoreUnavailableError("reconcile", err)
	}
	report.Scanned = len(records)

	for _, rec := range records {
		r, err := rec.Rental()
		if err != nil {
			slog.Warn("skipping rental with invalid stored data",
				"rental_id", rec.ID.String(),
				"error", err.Error())
			report.Integrity = append(report.Integrity, RecordFailure{RentalID: rec.ID, Error: err.Error()})
			continue
		}

		from, changed := r.Reconcile(now)
		if !changed {
			continue
		}

		var applied bool
		err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var txErr error
			applied, txErr = tx.Rentals().TransitionStatus(ctx, tx.DB(), r.ID(), from, r.Status(), now)
			return txErr
		})
		if err != nil {
			slog.Error("failed to write rental status",
				"rental_id", r.ID().String(),
				"from", from.String(),
				"to", r.Status().String(),
				"error", err.Error())
			report.WriteFailures = append(report.WriteFailures, RecordFailure{RentalID: r.ID(), Error: err.Error()})
			continue
		}
		if !applied {
			// another writer moved the rental first
			report.Skipped++
			continue
		}
		report.Transitions = append(report.Transitions, Transition{RentalID: r.ID(), From: from, To: r.Status()})
	}

	span.SetAttributes(
		attribute.Int("reconcile.scanned", report.Scanned),
		attribute.Int("reconcile.transitions", len(report.Transitions)),
		attribute.Int("reconcile.integrity_errors", len(report.Integrity)),
		attribute.Int("reconcile.write_failures", len(report.WriteFailures)),
	)
	if len(report.Transitions) > 0 || report.HasFailures() {
		slog.Info("reconcile finished",
			"scanned", report.Scanned,
			"transitions", len(report.Transitions),
			"skipped", report.Skipped,
			"integrity_errors", len(report.Integrity),
			"write_failures", len(report.WriteFailures))
	}
	return report, nil
}
