package errs

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinels for errors.Is checks. The typed errors below match them.
var (
	ErrInvalidWindow    = New("invalid rental window")
	ErrConflict         = New("equipment unavailable for requested window")
	ErrDataIntegrity    = New("stored record failed integrity check")
	ErrStoreUnavailable = New("record store unavailable")
	ErrPartialFailure   = New("operation partially failed")
)

type InvalidWindowError struct {
	Start time.Time
	End   time.Time
}

func NewInvalidWindowError(start, end time.Time) *InvalidWindowError {
	return &InvalidWindowError{Start: start, End: end}
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid window: start %s must be before end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

func (e *InvalidWindowError) Is(target error) bool { return target == ErrInvalidWindow }

type ConflictError struct {
	EquipmentID          uuid.UUID
	ConflictingRentalIDs []uuid.UUID
}

func NewConflictError(equipmentID uuid.UUID, rentalIDs []uuid.UUID) *ConflictError {
	return &ConflictError{EquipmentID: equipmentID, ConflictingRentalIDs: rentalIDs}
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.ConflictingRentalIDs))
	for i, id := range e.ConflictingRentalIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("equipment %s conflicts with rentals [%s]", e.EquipmentID, strings.Join(ids, ", "))
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type DataIntegrityError struct {
	Entity   string
	RecordID uuid.UUID
	Field    string
	Reason   string
}

func NewDataIntegrityError(entity string, id uuid.UUID, field, reason string) *DataIntegrityError {
	return &DataIntegrityError{Entity: entity, RecordID: id, Field: field, Reason: reason}
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s %s: field %q: %s", e.Entity, e.RecordID, e.Field, e.Reason)
}

func (e *DataIntegrityError) Is(target error) bool { return target == ErrDataIntegrity }

type StoreUnavailableError struct {
	Op  string
	Err error
}

func NewStoreUnavailableError(op string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Err: err}
}

func (e *StoreUnavailableError) Error() string {
	if e.Err == nil {
		return "store unavailable during " + e.Op
	}
	return "store unavailable during " + e.Op + ": " + e.Err.Error()
}

func (e *StoreUnavailableError) Is(target error) bool { return target == ErrStoreUnavailable }

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// SubFailure names one failed sub-operation of a multi-step or multi-item operation.
type SubFailure struct {
	Name string
	Err  error
}

type PartialFailureError struct {
	Op         string
	Succeeded  []string
	Failed     []SubFailure
	RolledBack []string
}

func (e *PartialFailureError) Error() string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = f.Name + ": " + f.Err.Error()
	}
	return fmt.Sprintf("%s: %d succeeded, %d failed (%s), %d rolled back",
		e.Op, len(e.Succeeded), len(e.Failed), strings.Join(names, "; "), len(e.RolledBack))
}

func (e *PartialFailureError) Is(target error) bool { return target == ErrPartialFailure }

// Unwrap exposes the sub-failures so callers can still ask errors.Is(err, ErrConflict).
func (e *PartialFailureError) Unwrap() []error {
	out := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		out = append(out, f.Err)
	}
	return out
}

// IsBusinessRejection reports whether err is a recoverable, user-facing rejection.
func IsBusinessRejection(err error) bool {
	return Is(err, ErrInvalidWindow) || Is(err, ErrConflict)
}

// ConflictReportError lists every requested item that conflicted in a pre-check.
type ConflictReportError struct {
	Conflicts []*ConflictError
}

func (e *ConflictReportError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ConflictReportError) Is(target error) bool { return target == ErrConflict }
