package repository

import (
	"context"

	"gear-rental/internal/domain/verification"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/repository/verification_mock.go -package=repositorymock

type VerificationWriteQueries interface {
	CreateSignatureImage(ctx context.Context, db dbq.DBTX, arg dbq.CreateSignatureImageParams) error
	CreateVerification(ctx context.Context, db dbq.DBTX, arg dbq.CreateVerificationParams) error
}

type VerificationRepository struct {
	queries VerificationWriteQueries
}

func NewVerificationRepository(queries VerificationWriteQueries) *VerificationRepository {
	return &VerificationRepository{queries: queries}
}

func (r *VerificationRepository) CreateSignature(ctx context.Context, tx dbq.DBTX, img *verification.SignatureImage) error {
	if err := r.queries.CreateSignatureImage(ctx, tx, converter.SignatureImageToInfra(img)); err != nil {
		return infra.WrapRepoErr("failed to store signature image", err)
	}
	return nil
}

func (r *VerificationRepository) Create(ctx context.Context, tx dbq.DBTX, v *verification.Verification) error {
	if err := r.queries.CreateVerification(ctx, tx, converter.VerificationToInfra(v)); err != nil {
		return infra.WrapRepoErr("failed to create verification", err)
	}
	return nil
}
