package request

import (
	"strings"

	"gear-rental/internal/usecase/commands"
)

type RateTierRequest struct {
	Label      string `json:"label" binding:"required,max=50"`
	Days       int    `json:"days" binding:"required,min=1"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
}

type CreateEquipmentRequest struct {
	Name      string            `json:"name" binding:"required,max=200"`
	Type      string            `json:"type" binding:"required,max=100"`
	Quantity  int               `json:"quantity" binding:"omitempty,min=1"`
	RateTiers []RateTierRequest `json:"rate_tiers" binding:"omitempty,max=10,dive"`
}

func (r CreateEquipmentRequest) ToInput() commands.EquipmentInput {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return commands.EquipmentInput{
		Name:      strings.TrimSpace(r.Name),
		Type:      strings.TrimSpace(r.Type),
		Quantity:  quantity,
		RateTiers: toTierInputs(r.RateTiers),
	}
}

// UpdateEquipmentRequest is a partial update. Status accepts the manual
// statuses; an unknown value is rejected by the domain.
type UpdateEquipmentRequest struct {
	Name      *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Type      *string            `json:"type" binding:"omitempty,min=1,max=100"`
	Quantity  *int               `json:"quantity" binding:"omitempty,min=1"`
	Status    *string            `json:"status" binding:"omitempty,min=1"`
	Active    *bool              `json:"active"`
	RateTiers *[]RateTierRequest `json:"rate_tiers" binding:"omitempty,dive"`
}

func (r UpdateEquipmentRequest) ToPatch() commands.EquipmentPatch {
	patch := commands.EquipmentPatch{
		Name:     r.Name,
		Type:     r.Type,
		Quantity: r.Quantity,
		Status:   r.Status,
		Active:   r.Active,
	}
	if r.RateTiers != nil {
		tiers := toTierInputs(*r.RateTiers)
		patch.RateTiers = &tiers
	}
	return patch
}

func (r UpdateEquipmentRequest) IsEmpty() bool {
	return r.Name == nil && r.Type == nil && r.Quantity == nil &&
		r.Status == nil && r.Active == nil && r.RateTiers == nil
}

type AvailabilityQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func toTierInputs(reqs []RateTierRequest) []commands.RateTierInput {
	out := make([]commands.RateTierInput, 0, len(reqs))
	for _, t := range reqs {
		out = append(out, commands.RateTierInput{
			Label:      strings.TrimSpace(t.Label),
			Days:       t.Days,
			PriceCents: t.PriceCents,
		})
	}
	return out
}
