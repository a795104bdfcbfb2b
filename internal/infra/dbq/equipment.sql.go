package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const equipmentColumns = `id, name, type, quantity, status, active, rate_tiers, created_at, updated_at`

const createEquipment = `-- name: CreateEquipment :exec
INSERT INTO equipment (id, name, type, quantity, status, active, rate_tiers, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateEquipmentParams struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Quantity  int32              `json:"quantity"`
	Status    string             `json:"status"`
	Active    bool               `json:"active"`
	RateTiers []byte             `json:"rate_tiers"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateEquipment(ctx context.Context, db DBTX, arg CreateEquipmentParams) error {
	_, err := db.Exec(ctx, createEquipment,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Quantity,
		arg.Status,
		arg.Active,
		arg.RateTiers,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findEquipmentByID = `-- name: FindEquipmentByID :one
SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1
`

func (q *Queries) FindEquipmentByID(ctx context.Context, db DBTX, id uuid.UUID) (Equipment, error) {
	row := db.QueryRow(ctx, findEquipmentByID, id)
	return scanEquipment(row)
}

const lockEquipment = `-- name: LockEquipment :one
SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 FOR UPDATE
`

// LockEquipment takes a row lock held until the surrounding transaction ends.
func (q *Queries) LockEquipment(ctx context.Context, db DBTX, id uuid.UUID) (Equipment, error) {
	row := db.QueryRow(ctx, lockEquipment, id)
	return scanEquipment(row)
}

const listEquipment = `-- name: ListEquipment :many
SELECT ` + equipmentColumns + `
FROM equipment
WHERE ($1::boolean OR active)
  AND ($2::text = '' OR type = $2::text)
ORDER BY name, id
`

type ListEquipmentParams struct {
	IncludeInactive bool   `json:"include_inactive"`
	Type            string `json:"type"`
}

func (q *Queries) ListEquipment(ctx context.Context, db DBTX, arg ListEquipmentParams) ([]Equipment, error) {
	rows, err := db.Query(ctx, listEquipment, arg.IncludeInactive, arg.Type)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Equipment
	for rows.Next() {
		i, err := scanEquipment(rows)
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

const listEquipmentByIDs = `-- name: ListEquipmentByIDs :many
SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ANY($1::uuid[]) ORDER BY name, id
`

func (q *Queries) ListEquipmentByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Equipment, error) {
	rows, err := db.Query(ctx, listEquipmentByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Equipment
	for rows.Next() {
		i, err := scanEquipment(rows)
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

const updateEquipment = `-- name: UpdateEquipment :execrows
UPDATE equipment
SET name = $2, type = $3, quantity = $4, status = $5, active = $6, rate_tiers = $7, updated_at = $8
WHERE id = $1
`

type UpdateEquipmentParams struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Quantity  int32              `json:"quantity"`
	Status    string             `json:"status"`
	Active    bool               `json:"active"`
	RateTiers []byte             `json:"rate_tiers"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateEquipment(ctx context.Context, db DBTX, arg UpdateEquipmentParams) (int64, error) {
	result, err := db.Exec(ctx, updateEquipment,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Quantity,
		arg.Status,
		arg.Active,
		arg.RateTiers,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deactivateEquipment = `-- name: DeactivateEquipment :execrows
UPDATE equipment SET active = FALSE, updated_at = $2 WHERE id = $1
`

func (q *Queries) DeactivateEquipment(ctx context.Context, db DBTX, id uuid.UUID, updatedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deactivateEquipment, id, updatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteEquipment = `-- name: DeleteEquipment :execrows
DELETE FROM equipment WHERE id = $1
`

func (q *Queries) DeleteEquipment(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteEquipment, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countEquipmentRentals = `-- name: CountEquipmentRentals :one
SELECT count(*) FROM rental_equipment WHERE equipment_id = $1
`

func (q *Queries) CountEquipmentRentals(ctx context.Context, db DBTX, equipmentID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countEquipmentRentals, equipmentID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanEquipment(row rowScanner) (Equipment, error) {
	var i Equipment
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Type,
		&i.Quantity,
		&i.Status,
		&i.Active,
		&i.RateTiers,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
