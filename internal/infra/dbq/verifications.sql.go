package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createSignatureImage = `-- name: CreateSignatureImage :exec
INSERT INTO signature_images (id, content_type, data, width, height, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateSignatureImageParams struct {
	ID          uuid.UUID          `json:"id"`
	ContentType string             `json:"content_type"`
	Data        []byte             `json:"data"`
	Width       int32              `json:"width"`
	Height      int32              `json:"height"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateSignatureImage(ctx context.Context, db DBTX, arg CreateSignatureImageParams) error {
	_, err := db.Exec(ctx, createSignatureImage,
		arg.ID,
		arg.ContentType,
		arg.Data,
		arg.Width,
		arg.Height,
		arg.CreatedAt,
	)
	return err
}

const findSignatureImageByID = `-- name: FindSignatureImageByID :one
SELECT id, content_type, data, width, height, created_at FROM signature_images WHERE id = $1
`

func (q *Queries) FindSignatureImageByID(ctx context.Context, db DBTX, id uuid.UUID) (SignatureImages, error) {
	row := db.QueryRow(ctx, findSignatureImageByID, id)
	var i SignatureImages
	err := row.Scan(
		&i.ID,
		&i.ContentType,
		&i.Data,
		&i.Width,
		&i.Height,
		&i.CreatedAt,
	)
	return i, err
}

const createVerification = `-- name: CreateVerification :exec
INSERT INTO verifications (id, rental_id, id_type, id_number, signature_image_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateVerificationParams struct {
	ID               uuid.UUID          `json:"id"`
	RentalID         uuid.UUID          `json:"rental_id"`
	IDType           string             `json:"id_type"`
	IDNumber         string             `json:"id_number"`
	SignatureImageID uuid.UUID          `json:"signature_image_id"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateVerification(ctx context.Context, db DBTX, arg CreateVerificationParams) error {
	_, err := db.Exec(ctx, createVerification,
		arg.ID,
		arg.RentalID,
		arg.IDType,
		arg.IDNumber,
		arg.SignatureImageID,
		arg.CreatedAt,
	)
	return err
}

const findVerificationByRentalID = `-- name: FindVerificationByRentalID :one
SELECT id, rental_id, id_type, id_number, signature_image_id, created_at
FROM verifications
WHERE rental_id = $1
`

func (q *Queries) FindVerificationByRentalID(ctx context.Context, db DBTX, rentalID uuid.UUID) (Verifications, error) {
	row := db.QueryRow(ctx, findVerificationByRentalID, rentalID)
	var i Verifications
	err := row.Scan(
		&i.ID,
		&i.RentalID,
		&i.IDType,
		&i.IDNumber,
		&i.SignatureImageID,
		&i.CreatedAt,
	)
	return i, err
}
