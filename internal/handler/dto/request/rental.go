package request

import (
	"strings"
	"time"

	"gear-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	Start        time.Time       `json:"start" binding:"required"`
	End          time.Time       `json:"end" binding:"required"`
	EquipmentIDs []uuid.UUID     `json:"equipment_ids" binding:"required,min=1,max=50"`
	Customer     CustomerRequest `json:"customer"`
	// TotalPriceCents overrides the quote computed from the rate tiers.
	TotalPriceCents *int64 `json:"total_price_cents" binding:"omitempty,min=0"`
	Notes           string `json:"notes" binding:"max=2000"`
}

func (r CreateRentalRequest) ToInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		Start:        r.Start,
		End:          r.End,
		EquipmentIDs: r.EquipmentIDs,
		Customer:     r.Customer.ToInput(),
		TotalCents:   r.TotalPriceCents,
		Notes:        strings.TrimSpace(r.Notes),
	}
}

type AttachEquipmentRequest struct {
	EquipmentIDs []uuid.UUID `json:"equipment_ids" binding:"required,min=1,max=50"`
}

type CancelRentalRequest struct {
	VoidAmountCents int64  `json:"void_amount_cents" binding:"min=0"`
	Reason          string `json:"reason" binding:"required,max=500"`
}

func (r CancelRentalRequest) ToInput(rentalID, staffID uuid.UUID) commands.CancelRentalInput {
	return commands.CancelRentalInput{
		RentalID:    rentalID,
		VoidCents:   r.VoidAmountCents,
		Reason:      strings.TrimSpace(r.Reason),
		CancelledBy: staffID,
	}
}

type ListRentalsQuery struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

// Statuses splits a comma separated status filter.
func (q ListRentalsQuery) Statuses() []string {
	if strings.TrimSpace(q.Status) == "" {
		return nil
	}
	parts := strings.Split(q.Status, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type CalendarQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type VerificationForm struct {
	IDType   string `form:"id_type" binding:"required"`
	IDNumber string `form:"id_number" binding:"required,max=64"`
}
