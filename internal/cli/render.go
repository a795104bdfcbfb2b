package cli

import (
	"fmt"
	"io"
	"time"

	"gear-rental/internal/domain/money"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/status"
)

func renderReport(w io.Writer, r *status.Report) error {
	if _, err := fmt.Fprintf(w, "Reconciled at %s\n", r.RanAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	fmt.Fprintf(w, "  scanned:     %d\n", r.Scanned)
	fmt.Fprintf(w, "  transitions: %d\n", len(r.Transitions))
	fmt.Fprintf(w, "  unchanged:   %d\n", r.Skipped)
	for _, t := range r.Transitions {
		fmt.Fprintf(w, "  %s  %s -> %s\n", t.RentalID, t.From, t.To)
	}
	writeFailures(w, "Integrity errors", r.Integrity)
	writeFailures(w, "Write failures", r.WriteFailures)
	if !r.HasFailures() {
		fmt.Fprintln(w, "✓ all records reconciled")
	}
	return nil
}

func writeFailures(w io.Writer, title string, failures []status.RecordFailure) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "  ✗ %s  %s\n", f.RentalID, f.Error)
	}
}

func renderAvailability(w io.Writer, a *queries.AvailabilityView) error {
	if _, err := fmt.Fprintf(w, "Equipment %s\n", a.EquipmentID); err != nil {
		return err
	}
	fmt.Fprintf(w, "  window: %s to %s\n", a.Start.UTC().Format(time.RFC3339), a.End.UTC().Format(time.RFC3339))
	if a.Available {
		fmt.Fprintln(w, "  ✓ available")
		quote, err := money.New(a.QuoteCents)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  quote:  %s\n", quote)
		return nil
	}
	fmt.Fprintf(w, "  ✗ unavailable, %d conflicting rental(s)\n", len(a.ConflictingRentalIDs))
	for _, id := range a.ConflictingRentalIDs {
		fmt.Fprintf(w, "    %s\n", id)
	}
	return nil
}
