package repository

import (
	"context"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/infra"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/repository/equipment_mock.go -package=repositorymock

type EquipmentWriteQueries interface {
	CreateEquipment(ctx context.Context, db dbq.DBTX, arg dbq.CreateEquipmentParams) error
	UpdateEquipment(ctx context.Context, db dbq.DBTX, arg dbq.UpdateEquipmentParams) (int64, error)
	DeactivateEquipment(ctx context.Context, db dbq.DBTX, id uuid.UUID, updatedAt pgtype.Timestamptz) (int64, error)
	DeleteEquipment(ctx context.Context, db dbq.DBTX, id uuid.UUID) (int64, error)
}

type EquipmentRepository struct {
	queries EquipmentWriteQueries
}

func NewEquipmentRepository(queries EquipmentWriteQueries) *EquipmentRepository {
	return &EquipmentRepository{queries: queries}
}

func (r *EquipmentRepository) Create(ctx context.Context, tx dbq.DBTX, e *equipment.Equipment) error {
	params, err := converter.EquipmentToInfra(e)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rate tiers", err)
	}
	if err := r.queries.CreateEquipment(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create equipment", err)
	}
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, tx dbq.DBTX, e *equipment.Equipment) error {
	params, err := converter.EquipmentUpdateToInfra(e)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rate tiers", err)
	}
	n, err := r.queries.UpdateEquipment(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Deactivate(ctx context.Context, tx dbq.DBTX, id uuid.UUID, at time.Time) error {
	n, err := r.queries.DeactivateEquipment(ctx, tx, id, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate equipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, tx dbq.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteEquipment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}
