// Package availability decides whether equipment is free for a rental window.
package availability

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("gear-rental/availability")

// BookingSource lists the bookings that still hold an item.
// shared.CommandReads satisfies it, both inside and outside a transaction.
type BookingSource interface {
	BookingsForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]equipment.Booking, error)
}

// CheckConflict returns nil when equipmentID is free for [start, end).
// The window is validated before the store is touched.
func CheckConflict(ctx context.Context, src BookingSource, equipmentID uuid.UUID, start, end time.Time) error {
	w, err := rental.NewWindow(start, end)
	if err != nil {
		return err
	}
	return CheckWindow(ctx, src, equipmentID, w)
}

func CheckWindow(ctx context.Context, src BookingSource, equipmentID uuid.UUID, w rental.Window) error {
	ctx, span := tracer.Start(ctx, "availability.CheckConflict",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("equipment.id", equipmentID.String()),
			attribute.String("window.start", w.Start().Format(time.RFC3339)),
			attribute.String("window.end", w.End().Format(time.RFC3339)),
		),
	)
	defer span.End()

	bookings, err := src.BookingsForEquipment(ctx, equipmentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing bookings failed")
		return errs.NewStoreUnavailableError("check availability", err)
	}

	for _, b := range bookings {
		if b.Corrupt() {
			slog.WarnContext(ctx, "booking with unusable window blocks equipment",
				"equipment_id", equipmentID.String(),
				"rental_id", b.RentalID.String(),
				"start", b.Start, "end", b.End)
		}
	}

	conflicts := equipment.ConflictingRentals(bookings, w)
	if len(conflicts) > 0 {
		span.SetAttributes(attribute.Int("availability.conflicts", len(conflicts)))
		return errs.NewConflictError(equipmentID, conflicts)
	}
	return nil
}
