package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const attachRentalEquipment = `-- name: AttachRentalEquipment :exec
INSERT INTO rental_equipment (rental_id, equipment_id, created_at) VALUES ($1, $2, $3)
`

func (q *Queries) AttachRentalEquipment(ctx context.Context, db DBTX, rentalID, equipmentID uuid.UUID, createdAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, attachRentalEquipment, rentalID, equipmentID, createdAt)
	return err
}

const listEquipmentBookings = `-- name: ListEquipmentBookings :many
SELECT re.equipment_id, r.id, r.start_at, r.end_at, r.status
FROM rental_equipment re
JOIN rentals r ON r.id = re.rental_id
WHERE re.equipment_id = ANY($1::uuid[])
  AND r.status <> ALL($2::text[])
ORDER BY re.equipment_id, r.start_at NULLS FIRST
`

type ListEquipmentBookingsRow struct {
	EquipmentID uuid.UUID          `json:"equipment_id"`
	RentalID    uuid.UUID          `json:"rental_id"`
	StartAt     pgtype.Timestamptz `json:"start_at"`
	EndAt       pgtype.Timestamptz `json:"end_at"`
	Status      string             `json:"status"`
}

// ListEquipmentBookings returns the rentals attached to the given equipment,
// leaving out rentals whose stored status is in excludedStatuses.
func (q *Queries) ListEquipmentBookings(ctx context.Context, db DBTX, equipmentIDs []uuid.UUID, excludedStatuses []string) ([]ListEquipmentBookingsRow, error) {
	if excludedStatuses == nil {
		excludedStatuses = []string{}
	}
	rows, err := db.Query(ctx, listEquipmentBookings, equipmentIDs, excludedStatuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListEquipmentBookingsRow
	for rows.Next() {
		var i ListEquipmentBookingsRow
		if err := rows.Scan(
			&i.EquipmentID,
			&i.RentalID,
			&i.StartAt,
			&i.EndAt,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRentalEquipment = `-- name: ListRentalEquipment :many
SELECT re.rental_id, e.id, e.name, e.type
FROM rental_equipment re
JOIN equipment e ON e.id = re.equipment_id
WHERE re.rental_id = ANY($1::uuid[])
ORDER BY re.rental_id, re.created_at, e.name
`

type ListRentalEquipmentRow struct {
	RentalID      uuid.UUID `json:"rental_id"`
	EquipmentID   uuid.UUID `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	EquipmentType string    `json:"equipment_type"`
}

func (q *Queries) ListRentalEquipment(ctx context.Context, db DBTX, rentalIDs []uuid.UUID) ([]ListRentalEquipmentRow, error) {
	rows, err := db.Query(ctx, listRentalEquipment, rentalIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRentalEquipmentRow
	for rows.Next() {
		var i ListRentalEquipmentRow
		if err := rows.Scan(
			&i.RentalID,
			&i.EquipmentID,
			&i.EquipmentName,
			&i.EquipmentType,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
