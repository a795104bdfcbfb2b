package response

import (
	"time"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_price_cents"`
	VoidCents  *int64    `json:"void_amount_cents,omitempty"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromRental(r *rental.Rental, now time.Time) *RentalResponse {
	resp := &RentalResponse{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		Start:      r.Window().Start(),
		End:        r.Window().End(),
		Status:     r.DerivedStatus(now).String(),
		TotalCents: r.TotalPrice().Cents(),
		Notes:      r.Notes(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if v := r.VoidAmount(); v != nil {
		cents := v.Cents()
		resp.VoidCents = &cents
	}
	return resp
}

// ItemResponse reports the outcome of attaching one equipment item.
type ItemResponse struct {
	EquipmentID          uuid.UUID   `json:"equipment_id"`
	Attached             bool        `json:"attached"`
	Error                string      `json:"error,omitempty"`
	ConflictingRentalIDs []uuid.UUID `json:"conflicting_rental_ids,omitempty"`
}

type RentalResultResponse struct {
	Rental   *RentalResponse   `json:"rental"`
	Customer *CustomerResponse `json:"customer,omitempty"`
	Items    []ItemResponse    `json:"items"`
	// Partial is set when at least one item could not be attached.
	Partial bool `json:"partial"`
}

func FromRentalResult(res *commands.RentalResult, now time.Time) *RentalResultResponse {
	out := &RentalResultResponse{
		Rental: FromRental(res.Rental, now),
		Items:  make([]ItemResponse, 0, len(res.Items)),
	}
	if res.Customer != nil {
		out.Customer = FromCustomer(res.Customer)
	}
	for _, it := range res.Items {
		item := ItemResponse{EquipmentID: it.EquipmentID, Attached: it.Attached()}
		if it.Err != nil {
			out.Partial = true
			item.Error = itemMessage(it.Err)
			var ce *errs.ConflictError
			if errs.As(it.Err, &ce) {
				item.ConflictingRentalIDs = ce.ConflictingRentalIDs
			}
		}
		out.Items = append(out.Items, item)
	}
	return out
}

// itemMessage keeps store details out of the response.
func itemMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrConflict):
		return "equipment is not available for the requested window"
	case errs.Is(err, commands.ErrEquipmentNotFound):
		return commands.ErrEquipmentNotFound.Error()
	case errs.Is(err, commands.ErrEquipmentNotBookable):
		return commands.ErrEquipmentNotBookable.Error()
	case errs.Is(err, commands.ErrAlreadyAttached):
		return commands.ErrAlreadyAttached.Error()
	default:
		return "could not attach equipment"
	}
}

type CancellationResponse struct {
	ID          uuid.UUID `json:"id"`
	RentalID    uuid.UUID `json:"rental_id"`
	CancelledBy uuid.UUID `json:"cancelled_by"`
	VoidCents   int64     `json:"void_amount_cents"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type CancelRentalResponse struct {
	Rental       *RentalResponse       `json:"rental"`
	Cancellation *CancellationResponse `json:"cancellation"`
}

func FromCancelResult(res *commands.CancelResult, now time.Time) *CancelRentalResponse {
	c := res.Cancellation
	return &CancelRentalResponse{
		Rental: FromRental(res.Rental, now),
		Cancellation: &CancellationResponse{
			ID:          c.ID(),
			RentalID:    c.RentalID(),
			CancelledBy: c.CancelledBy(),
			VoidCents:   c.VoidAmount().Cents(),
			Reason:      c.Reason(),
			CancelledAt: c.CancelledAt(),
		},
	}
}

type RentalListResponse struct {
	Items  []*queries.RentalView `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
