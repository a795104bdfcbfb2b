package readstore

import (
	"context"

	"gear-rental/internal/domain/verification"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type VerificationReadQueries interface {
	FindVerificationByRentalID(ctx context.Context, db dbq.DBTX, rentalID uuid.UUID) (dbq.Verifications, error)
	FindSignatureImageByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.SignatureImages, error)
}

type VerificationReadStore struct {
	queries VerificationReadQueries
	db      dbq.DBTX
}

func NewVerificationReadStore(queries VerificationReadQueries, db dbq.DBTX) *VerificationReadStore {
	return &VerificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VerificationReadStore) FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*queries.VerificationView, error) {
	row, err := r.queries.FindVerificationByRentalID(ctx, r.db, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find verification", err)
	}

	return &queries.VerificationView{
		ID:               row.ID,
		RentalID:         row.RentalID,
		IDType:           row.IDType,
		IDNumberMasked:   verification.MaskIDNumber(row.IDNumber),
		SignatureImageID: row.SignatureImageID,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *VerificationReadStore) FindSignatureByRentalID(ctx context.Context, rentalID uuid.UUID) (*queries.SignatureView, error) {
	v, err := r.queries.FindVerificationByRentalID(ctx, r.db, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find verification", err)
	}

	img, err := r.queries.FindSignatureImageByID(ctx, r.db, v.SignatureImageID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("signature image not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find signature image", err)
	}

	return &queries.SignatureView{
		ID:          img.ID,
		ContentType: img.ContentType,
		Data:        img.Data,
		Width:       int(img.Width),
		Height:      int(img.Height),
	}, nil
}
