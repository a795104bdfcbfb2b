package commands

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/commands/equipment_mock.go -package=commandsmock

type RateTierInput struct {
	Label      string
	Days       int
	PriceCents int64
}

type EquipmentInput struct {
	Name      string
	Type      string
	Quantity  int
	RateTiers []RateTierInput
}

// EquipmentPatch is a partial update; nil fields are left unchanged.
type EquipmentPatch struct {
	Name      *string
	Type      *string
	Quantity  *int
	Status    *string
	Active    *bool
	RateTiers *[]RateTierInput
}

type DeleteEquipmentResult struct {
	// SoftDeleted is true when the item had rental history and was deactivated instead.
	SoftDeleted bool
}

type EquipmentCommands interface {
	Create(ctx context.Context, input EquipmentInput) (*equipment.Equipment, error)
	Update(ctx context.Context, id uuid.UUID, patch EquipmentPatch) (*equipment.Equipment, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteEquipmentResult, error)
}

type equipmentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEquipmentCommands(uow shared.UnitOfWork, clock clock.Clock) EquipmentCommands {
	return &equipmentCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (e *equipmentCommandsImpl) Create(ctx context.Context, input EquipmentInput) (*equipment.Equipment, error) {
	rates, err := toRateCard(input.RateTiers)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	item, err := equipment.NewEquipment(input.Name, input.Type, input.Quantity, rates, e.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, tx.DB(), item)
	})
	if err != nil {
		return nil, translateRepoErr(err, "create equipment", nil)
	}

	slog.Info("equipment created", "equipment_id", item.ID().String(), "name", item.Name())
	return item, nil
}

func (e *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch EquipmentPatch) (*equipment.Equipment, error) {
	changes, err := patch.toChanges()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var updated *equipment.Equipment
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, lockErr := tx.Reads().LockEquipment(ctx, id)
		if lockErr != nil {
			return lockErr
		}
		if applyErr := item.Apply(changes, e.clock.Now()); applyErr != nil {
			return errs.Mark(applyErr, ErrDomainValidation)
		}
		if updateErr := tx.Equipment().Update(ctx, tx.DB(), item); updateErr != nil {
			return updateErr
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "update equipment", ErrEquipmentNotFound)
	}

	slog.Info("equipment updated",
		"equipment_id", id.String(),
		"status", updated.Status().String(),
		"active", updated.IsActive())
	return updated, nil
}

// Delete refuses while an open rental holds the item. Items with only
// terminal history are deactivated; items never rented are removed.
func (e *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (*DeleteEquipmentResult, error) {
	result := &DeleteEquipmentResult{}
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().LockEquipment(ctx, id); err != nil {
			return err
		}

		bookings, err := tx.Reads().BookingsForEquipment(ctx, id)
		if err != nil {
			return err
		}
		now := e.clock.Now()
		for _, b := range bookings {
			if holdsEquipment(b, now) {
				return errs.Wrap(equipment.ErrInUse, b.RentalID.String())
			}
		}

		count, err := tx.Reads().CountEquipmentRentals(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			result.SoftDeleted = true
			return tx.Equipment().Deactivate(ctx, tx.DB(), id, now)
		}
		return tx.Equipment().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return nil, translateRepoErr(err, "delete equipment", ErrEquipmentNotFound)
	}

	slog.Info("equipment deleted", "equipment_id", id.String(), "soft", result.SoftDeleted)
	return result, nil
}

// holdsEquipment uses the derived status so a stale Reserved row whose window
// has passed does not block deletion. Unknown statuses always block.
func holdsEquipment(b equipment.Booking, now time.Time) bool {
	if !b.Status.IsValid() {
		return true
	}
	w, err := b.Window()
	if err != nil {
		slog.Warn("booking with unusable window blocks equipment", "rental_id", b.RentalID.String(), "start", b.Start, "end", b.End)
		return true
	}
	return rental.DeriveStatus(b.Status, w, now).IsBlocking()
}

func (p EquipmentPatch) toChanges() (equipment.Changes, error) {
	changes := equipment.Changes{
		Name:     p.Name,
		Type:     p.Type,
		Quantity: p.Quantity,
		Active:   p.Active,
	}
	if p.Status != nil {
		status, err := equipment.NewStatus(*p.Status)
		if err != nil {
			return equipment.Changes{}, err
		}
		changes.Status = &status
	}
	if p.RateTiers != nil {
		rates, err := toRateCard(*p.RateTiers)
		if err != nil {
			return equipment.Changes{}, err
		}
		changes.Rates = &rates
	}
	return changes, nil
}

func toRateCard(inputs []RateTierInput) (equipment.RateCard, error) {
	tiers := make([]equipment.RateTier, 0, len(inputs))
	for _, in := range inputs {
		tier, err := equipment.NewRateTier(in.Label, in.Days, in.PriceCents)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return equipment.NewRateCard(tiers)
}
