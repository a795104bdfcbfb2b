package repository

import (
	"context"
	"time"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=rental.go -destination=../../../tests/mock/repository/rental_mock.go -package=repositorymock

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db dbq.DBTX, arg dbq.CreateRentalParams) error
	AttachRentalEquipment(ctx context.Context, db dbq.DBTX, rentalID, equipmentID uuid.UUID, createdAt pgtype.Timestamptz) error
	TransitionRentalStatus(ctx context.Context, db dbq.DBTX, arg dbq.TransitionRentalStatusParams) (int64, error)
	SetRentalStatusAndVoid(ctx context.Context, db dbq.DBTX, arg dbq.SetRentalStatusAndVoidParams) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
}

func NewRentalRepository(queries RentalWriteQueries) *RentalRepository {
	return &RentalRepository{queries: queries}
}

func (r *RentalRepository) Create(ctx context.Context, tx dbq.DBTX, rent *rental.Rental) error {
	if err := r.queries.CreateRental(ctx, tx, converter.RentalToInfra(rent)); err != nil {
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) AttachEquipment(ctx context.Context, tx dbq.DBTX, rentalID, equipmentID uuid.UUID, at time.Time) error {
	if err := r.queries.AttachRentalEquipment(ctx, tx, rentalID, equipmentID, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to attach equipment", err)
	}
	return nil
}

func (r *RentalRepository) TransitionStatus(ctx context.Context, tx dbq.DBTX, id uuid.UUID, from, to rental.Status, at time.Time) (bool, error) {
	n, err := r.queries.TransitionRentalStatus(ctx, tx, dbq.TransitionRentalStatusParams{
		ID:         id,
		FromStatus: from.String(),
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition rental status", err)
	}
	return n == 1, nil
}

func (r *RentalRepository) SaveState(ctx context.Context, tx dbq.DBTX, rent *rental.Rental, from rental.Status) error {
	params := dbq.SetRentalStatusAndVoidParams{
		ID:         rent.ID(),
		FromStatus: from.String(),
		ToStatus:   rent.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(rent.UpdatedAt()),
	}
	if void := rent.VoidAmount(); void != nil {
		params.VoidCents = pgtype.Int8{Int64: void.Cents(), Valid: true}
	}

	n, err := r.queries.SetRentalStatusAndVoid(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to save rental state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rental status changed concurrently", nil, infra.KindConcurrentUpdate)
	}
	return nil
}
