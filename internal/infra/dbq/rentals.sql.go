package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentalColumns = `id, customer_id, start_at, end_at, status, total_cents, void_cents, notes, created_at, updated_at`

const createRental = `-- name: CreateRental :exec
INSERT INTO rentals (id, customer_id, start_at, end_at, status, total_cents, void_cents, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateRentalParams struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	StartAt    pgtype.Timestamptz `json:"start_at"`
	EndAt      pgtype.Timestamptz `json:"end_at"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"total_cents"`
	VoidCents  pgtype.Int8        `json:"void_cents"`
	Notes      string             `json:"notes"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg CreateRentalParams) error {
	_, err := db.Exec(ctx, createRental,
		arg.ID,
		arg.CustomerID,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.TotalCents,
		arg.VoidCents,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findRentalByID = `-- name: FindRentalByID :one
SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1
`

func (q *Queries) FindRentalByID(ctx context.Context, db DBTX, id uuid.UUID) (Rentals, error) {
	row := db.QueryRow(ctx, findRentalByID, id)
	return scanRental(row)
}

const listRentals = `-- name: ListRentals :many
SELECT ` + rentalColumns + `
FROM rentals
WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))
  AND ($2::uuid IS NULL OR customer_id = $2::uuid)
ORDER BY start_at DESC NULLS LAST, id
LIMIT $3 OFFSET $4
`

type ListRentalsParams struct {
	Statuses   []string    `json:"statuses"`
	CustomerID pgtype.UUID `json:"customer_id"`
	Limit      int32       `json:"limit"`
	Offset     int32       `json:"offset"`
}

func (q *Queries) ListRentals(ctx context.Context, db DBTX, arg ListRentalsParams) ([]Rentals, error) {
	statuses := arg.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := db.Query(ctx, listRentals, statuses, arg.CustomerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

const listRentalsByStatuses = `-- name: ListRentalsByStatuses :many
SELECT ` + rentalColumns + `
FROM rentals
WHERE status = ANY($1::text[])
ORDER BY start_at NULLS FIRST, id
`

func (q *Queries) ListRentalsByStatuses(ctx context.Context, db DBTX, statuses []string) ([]Rentals, error) {
	rows, err := db.Query(ctx, listRentalsByStatuses, statuses)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

const listRentalsExcludingStatuses = `-- name: ListRentalsExcludingStatuses :many
SELECT ` + rentalColumns + `
FROM rentals
WHERE status <> ALL($1::text[])
ORDER BY start_at NULLS FIRST, id
`

// ListRentalsExcludingStatuses also returns rows whose status is not a known value.
func (q *Queries) ListRentalsExcludingStatuses(ctx context.Context, db DBTX, excluded []string) ([]Rentals, error) {
	rows, err := db.Query(ctx, listRentalsExcludingStatuses, excluded)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

const listRentalsInRange = `-- name: ListRentalsInRange :many
SELECT ` + rentalColumns + `
FROM rentals
WHERE start_at < $2 AND end_at > $1
ORDER BY start_at, id
`

// ListRentalsInRange returns rentals whose [start_at, end_at) intersects [from, to).
func (q *Queries) ListRentalsInRange(ctx context.Context, db DBTX, from, to pgtype.Timestamptz) ([]Rentals, error) {
	rows, err := db.Query(ctx, listRentalsInRange, from, to)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

const transitionRentalStatus = `-- name: TransitionRentalStatus :execrows
UPDATE rentals SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2
`

type TransitionRentalStatusParams struct {
	ID         uuid.UUID          `json:"id"`
	FromStatus string             `json:"from_status"`
	ToStatus   string             `json:"to_status"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) TransitionRentalStatus(ctx context.Context, db DBTX, arg TransitionRentalStatusParams) (int64, error) {
	result, err := db.Exec(ctx, transitionRentalStatus, arg.ID, arg.FromStatus, arg.ToStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const setRentalStatusAndVoid = `-- name: SetRentalStatusAndVoid :execrows
UPDATE rentals SET status = $3, void_cents = $4, updated_at = $5 WHERE id = $1 AND status = $2
`

type SetRentalStatusAndVoidParams struct {
	ID         uuid.UUID          `json:"id"`
	FromStatus string             `json:"from_status"`
	ToStatus   string             `json:"to_status"`
	VoidCents  pgtype.Int8        `json:"void_cents"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) SetRentalStatusAndVoid(ctx context.Context, db DBTX, arg SetRentalStatusAndVoidParams) (int64, error) {
	result, err := db.Exec(ctx, setRentalStatusAndVoid,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.VoidCents,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type rowsCollector interface {
	rowScanner
	Next() bool
	Err() error
	Close()
}

func collectRentals(rows rowsCollector) ([]Rentals, error) {
	defer rows.Close()
	var items []Rentals
	for rows.Next() {
		i, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanRental(row rowScanner) (Rentals, error) {
	var i Rentals
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.TotalCents,
		&i.VoidCents,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
