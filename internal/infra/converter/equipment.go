package converter

import (
	"encoding/json"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/pgconv"
)

// RateTierJSON is the jsonb element stored in equipment.rate_tiers.
type RateTierJSON struct {
	Label      string `json:"label"`
	Days       int    `json:"days"`
	PriceCents int64  `json:"price_cents"`
}

func RateCardToJSON(card equipment.RateCard) ([]byte, error) {
	out := make([]RateTierJSON, len(card))
	for i, t := range card {
		out[i] = RateTierJSON{Label: t.Label(), Days: t.Days(), PriceCents: t.Price().Cents()}
	}
	return json.Marshal(out)
}

func RateCardFromJSON(data []byte) (equipment.RateCard, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []RateTierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errs.Wrap(err, "decoding rate tiers")
	}
	tiers := make([]equipment.RateTier, 0, len(raw))
	for _, r := range raw {
		t, err := equipment.NewRateTier(r.Label, r.Days, r.PriceCents)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return equipment.NewRateCard(tiers)
}

func EquipmentToInfra(e *equipment.Equipment) (dbq.CreateEquipmentParams, error) {
	rates, err := RateCardToJSON(e.Rates())
	if err != nil {
		return dbq.CreateEquipmentParams{}, err
	}
	return dbq.CreateEquipmentParams{
		ID:        e.ID(),
		Name:      e.Name(),
		Type:      e.Type(),
		Quantity:  int32(e.Quantity()),
		Status:    e.Status().String(),
		Active:    e.IsActive(),
		RateTiers: rates,
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(e.UpdatedAt()),
	}, nil
}

func EquipmentUpdateToInfra(e *equipment.Equipment) (dbq.UpdateEquipmentParams, error) {
	rates, err := RateCardToJSON(e.Rates())
	if err != nil {
		return dbq.UpdateEquipmentParams{}, err
	}
	return dbq.UpdateEquipmentParams{
		ID:        e.ID(),
		Name:      e.Name(),
		Type:      e.Type(),
		Quantity:  int32(e.Quantity()),
		Status:    e.Status().String(),
		Active:    e.IsActive(),
		RateTiers: rates,
		UpdatedAt: pgconv.TimeToPgtype(e.UpdatedAt()),
	}, nil
}

func EquipmentFromInfra(row dbq.Equipment) (*equipment.Equipment, error) {
	status, err := equipment.NewStatus(row.Status)
	if err != nil {
		return nil, errs.NewDataIntegrityError("equipment", row.ID, "status", "unknown status "+row.Status)
	}
	rates, err := RateCardFromJSON(row.RateTiers)
	if err != nil {
		return nil, errs.NewDataIntegrityError("equipment", row.ID, "rate_tiers", err.Error())
	}
	return equipment.ReconstructEquipment(
		row.ID,
		row.Name,
		row.Type,
		int(row.Quantity),
		status,
		row.Active,
		rates,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// BookingFromInfra keeps an unknown stored status as is. Such a status is
// neither terminal nor Active, so the booking still blocks its window.
func BookingFromInfra(row dbq.ListEquipmentBookingsRow) equipment.Booking {
	return equipment.Booking{
		RentalID: row.RentalID,
		Start:    pgconv.TimeFromPgtype(row.StartAt),
		End:      pgconv.TimeFromPgtype(row.EndAt),
		Status:   rental.Status(row.Status),
	}
}
