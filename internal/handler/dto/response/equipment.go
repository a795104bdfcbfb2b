package response

import (
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	Quantity     int                    `json:"quantity"`
	Status       string                 `json:"status"`
	ManualStatus string                 `json:"manual_status"`
	Active       bool                   `json:"active"`
	RateTiers    []queries.RateTierView `json:"rate_tiers"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func FromEquipmentView(v *queries.EquipmentView) *EquipmentResponse {
	tiers := v.RateTiers
	if tiers == nil {
		tiers = []queries.RateTierView{}
	}
	return &EquipmentResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Quantity:     v.Quantity,
		Status:       v.Status,
		ManualStatus: v.ManualStatus,
		Active:       v.Active,
		RateTiers:    tiers,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromEquipment renders a freshly written item. Its stored status is returned
// as both the derived and the manual status.
func FromEquipment(e *equipment.Equipment) *EquipmentResponse {
	tiers := make([]queries.RateTierView, 0, len(e.Rates()))
	for _, t := range e.Rates() {
		tiers = append(tiers, queries.RateTierView{
			Label:      t.Label(),
			Days:       t.Days(),
			PriceCents: t.Price().Cents(),
		})
	}
	return &EquipmentResponse{
		ID:           e.ID(),
		Name:         e.Name(),
		Type:         e.Type(),
		Quantity:     e.Quantity(),
		Status:       e.Status().String(),
		ManualStatus: e.Status().String(),
		Active:       e.IsActive(),
		RateTiers:    tiers,
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

func FromEquipmentViews(views []*queries.EquipmentView) []*EquipmentResponse {
	out := make([]*EquipmentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromEquipmentView(v))
	}
	return out
}

type DeleteEquipmentResponse struct {
	ID          uuid.UUID `json:"id"`
	SoftDeleted bool      `json:"soft_deleted"`
}
