package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const customerColumns = `id, name, email, phone, address_line1, address_line2, city, region, postal_code, country, created_at, updated_at`

const upsertCustomer = `-- name: UpsertCustomer :one
INSERT INTO customers (id, name, email, phone, address_line1, address_line2, city, region, postal_code, country, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
ON CONFLICT (email) DO UPDATE SET
    name          = EXCLUDED.name,
    phone         = CASE WHEN EXCLUDED.phone = '' THEN customers.phone ELSE EXCLUDED.phone END,
    address_line1 = CASE WHEN EXCLUDED.address_line1 = '' THEN customers.address_line1 ELSE EXCLUDED.address_line1 END,
    address_line2 = CASE WHEN EXCLUDED.address_line1 = '' THEN customers.address_line2 ELSE EXCLUDED.address_line2 END,
    city          = CASE WHEN EXCLUDED.city = '' THEN customers.city ELSE EXCLUDED.city END,
    region        = CASE WHEN EXCLUDED.region = '' THEN customers.region ELSE EXCLUDED.region END,
    postal_code   = CASE WHEN EXCLUDED.postal_code = '' THEN customers.postal_code ELSE EXCLUDED.postal_code END,
    country       = CASE WHEN EXCLUDED.country = '' THEN customers.country ELSE EXCLUDED.country END,
    updated_at    = EXCLUDED.updated_at
RETURNING ` + customerColumns + `, (xmax = 0) AS inserted
`

type UpsertCustomerParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	AddressLine1 string             `json:"address_line1"`
	AddressLine2 string             `json:"address_line2"`
	City         string             `json:"city"`
	Region       string             `json:"region"`
	PostalCode   string             `json:"postal_code"`
	Country      string             `json:"country"`
	Now          pgtype.Timestamptz `json:"now"`
}

type UpsertCustomerRow struct {
	Customers
	Inserted bool `json:"inserted"`
}

func (q *Queries) UpsertCustomer(ctx context.Context, db DBTX, arg UpsertCustomerParams) (UpsertCustomerRow, error) {
	row := db.QueryRow(ctx, upsertCustomer,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.AddressLine1,
		arg.AddressLine2,
		arg.City,
		arg.Region,
		arg.PostalCode,
		arg.Country,
		arg.Now,
	)
	var i UpsertCustomerRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.AddressLine1,
		&i.AddressLine2,
		&i.City,
		&i.Region,
		&i.PostalCode,
		&i.Country,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Inserted,
	)
	return i, err
}

const findCustomerByID = `-- name: FindCustomerByID :one
SELECT ` + customerColumns + ` FROM customers WHERE id = $1
`

func (q *Queries) FindCustomerByID(ctx context.Context, db DBTX, id uuid.UUID) (Customers, error) {
	row := db.QueryRow(ctx, findCustomerByID, id)
	return scanCustomer(row)
}

const findCustomerByEmail = `-- name: FindCustomerByEmail :one
SELECT ` + customerColumns + ` FROM customers WHERE email = $1
`

func (q *Queries) FindCustomerByEmail(ctx context.Context, db DBTX, email string) (Customers, error) {
	row := db.QueryRow(ctx, findCustomerByEmail, email)
	return scanCustomer(row)
}

const listCustomers = `-- name: ListCustomers :many
SELECT ` + customerColumns + `
FROM customers
WHERE $1::text = '' OR name ILIKE '%' || $1::text || '%' OR email ILIKE '%' || $1::text || '%'
ORDER BY name, id
LIMIT $2 OFFSET $3
`

type ListCustomersParams struct {
	Search string `json:"search"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) ListCustomers(ctx context.Context, db DBTX, arg ListCustomersParams) ([]Customers, error) {
	rows, err := db.Query(ctx, listCustomers, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customers
	for rows.Next() {
		i, err := scanCustomer(rows)
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

const listCustomersByIDs = `-- name: ListCustomersByIDs :many
SELECT ` + customerColumns + ` FROM customers WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListCustomersByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Customers, error) {
	rows, err := db.Query(ctx, listCustomersByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customers
	for rows.Next() {
		i, err := scanCustomer(rows)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (Customers, error) {
	var i Customers
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.AddressLine1,
		&i.AddressLine2,
		&i.City,
		&i.Region,
		&i.PostalCode,
		&i.Country,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
