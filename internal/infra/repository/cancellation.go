package repository

import (
	"context"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
)

//go:generate mockgen -source=cancellation.go -destination=../../../tests/mock/repository/cancellation_mock.go -package=repositorymock

type CancellationWriteQueries interface {
	CreateRentalCancellation(ctx context.Context, db dbq.DBTX, arg dbq.CreateRentalCancellationParams) error
}

type CancellationRepository struct {
	queries CancellationWriteQueries
}

func NewCancellationRepository(queries CancellationWriteQueries) *CancellationRepository {
	return &CancellationRepository{queries: queries}
}

func (r *CancellationRepository) Create(ctx context.Context, tx dbq.DBTX, c *rental.Cancellation) error {
	if err := r.queries.CreateRentalCancellation(ctx, tx, converter.CancellationToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to create rental cancellation", err)
	}
	return nil
}
