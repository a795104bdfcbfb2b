//go:build unit || e2e

package builder

import (
	"encoding/json"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/infra/converter"
	"gear-rental/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TierSpec struct {
	Label      string
	Days       int
	PriceCents int64
}

type EquipmentBuilder struct {
	ID       uuid.UUID
	Name     string
	Type     string
	Quantity int
	Status   string
	Active   bool
	Tiers    []TierSpec
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:       uuid.New(),
		Name:     "Sony FX3",
		Type:     "camera",
		Quantity: 1,
		Status:   "Available",
		Active:   true,
		Tiers: []TierSpec{
			{Label: "day", Days: 1, PriceCents: 5000},
			{Label: "week", Days: 7, PriceCents: 25000},
		},
	}
}

func (e *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(e)
	return e
}

func (e *EquipmentBuilder) rateCard() (equipment.RateCard, error) {
	tiers := make([]equipment.RateTier, 0, len(e.Tiers))
	for _, t := range e.Tiers {
		tier, err := equipment.NewRateTier(t.Label, t.Days, t.PriceCents)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return equipment.NewRateCard(tiers)
}

// Build methods
func (e *EquipmentBuilder) BuildDomain() (*equipment.Equipment, error) {
	rates, err := e.rateCard()
	if err != nil {
		return nil, err
	}
	status, err := equipment.NewStatus(e.Status)
	if err != nil {
		return nil, err
	}
	return equipment.ReconstructEquipment(e.ID, e.Name, e.Type, e.Quantity, status, e.Active, rates, FixedNow, FixedNow), nil
}

func (e *EquipmentBuilder) BuildInfra() dbq.Equipment {
	tiers := make([]converter.RateTierJSON, len(e.Tiers))
	for i, t := range e.Tiers {
		tiers[i] = converter.RateTierJSON{Label: t.Label, Days: t.Days, PriceCents: t.PriceCents}
	}
	raw, _ := json.Marshal(tiers)

	return dbq.Equipment{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		Quantity:  int32(e.Quantity),
		Status:    e.Status,
		Active:    e.Active,
		RateTiers: raw,
		CreatedAt: pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

// Fluent builder methods
func (e *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	e.Name = name
	return e
}

func (e *EquipmentBuilder) WithStatus(status string) *EquipmentBuilder {
	e.Status = status
	return e
}

// WithDailyRate replaces the card with a single one-day tier.
func (e *EquipmentBuilder) WithDailyRate(cents int64) *EquipmentBuilder {
	e.Tiers = []TierSpec{{Label: "day", Days: 1, PriceCents: cents}}
	return e
}

func (e *EquipmentBuilder) WithoutRates() *EquipmentBuilder {
	e.Tiers = nil
	return e
}

func (e *EquipmentBuilder) AsInactive() *EquipmentBuilder {
	e.Active = false
	return e
}
