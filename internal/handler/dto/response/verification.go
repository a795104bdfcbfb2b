package response

import (
	"time"

	"gear-rental/internal/domain/verification"

	"github.com/google/uuid"
)

type VerificationResponse struct {
	ID               uuid.UUID `json:"id"`
	RentalID         uuid.UUID `json:"rental_id"`
	IDType           string    `json:"id_type"`
	IDNumberMasked   string    `json:"id_number_masked"`
	SignatureImageID uuid.UUID `json:"signature_image_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromVerification(v *verification.Verification) *VerificationResponse {
	return &VerificationResponse{
		ID:               v.ID(),
		RentalID:         v.RentalID(),
		IDType:           string(v.IDType()),
		IDNumberMasked:   verification.MaskIDNumber(v.IDNumber()),
		SignatureImageID: v.SignatureKey(),
		CreatedAt:        v.CreatedAt(),
	}
}
