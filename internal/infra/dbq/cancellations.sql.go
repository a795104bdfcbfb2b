package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createRentalCancellation = `-- name: CreateRentalCancellation :exec
INSERT INTO rental_cancellations (id, rental_id, void_cents, reason, cancelled_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateRentalCancellationParams struct {
	ID          uuid.UUID          `json:"id"`
	RentalID    uuid.UUID          `json:"rental_id"`
	VoidCents   int64              `json:"void_cents"`
	Reason      string             `json:"reason"`
	CancelledBy pgtype.UUID        `json:"cancelled_by"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateRentalCancellation(ctx context.Context, db DBTX, arg CreateRentalCancellationParams) error {
	_, err := db.Exec(ctx, createRentalCancellation,
		arg.ID,
		arg.RentalID,
		arg.VoidCents,
		arg.Reason,
		arg.CancelledBy,
		arg.CreatedAt,
	)
	return err
}

const findRentalCancellationByRentalID = `-- name: FindRentalCancellationByRentalID :one
SELECT id, rental_id, void_cents, reason, cancelled_by, created_at
FROM rental_cancellations
WHERE rental_id = $1
`

func (q *Queries) FindRentalCancellationByRentalID(ctx context.Context, db DBTX, rentalID uuid.UUID) (RentalCancellations, error) {
	row := db.QueryRow(ctx, findRentalCancellationByRentalID, rentalID)
	var i RentalCancellations
	err := row.Scan(
		&i.ID,
		&i.RentalID,
		&i.VoidCents,
		&i.Reason,
		&i.CancelledBy,
		&i.CreatedAt,
	)
	return i, err
}
