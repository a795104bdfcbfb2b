package converter

import (
	"gear-rental/internal/domain/verification"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/pgconv"
)

func VerificationToInfra(v *verification.Verification) dbq.CreateVerificationParams {
	return dbq.CreateVerificationParams{
		ID:               v.ID(),
		RentalID:         v.RentalID(),
		IDType:           string(v.IDType()),
		IDNumber:         v.IDNumber(),
		SignatureImageID: v.SignatureKey(),
		CreatedAt:        pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func SignatureImageToInfra(img *verification.SignatureImage) dbq.CreateSignatureImageParams {
	return dbq.CreateSignatureImageParams{
		ID:          img.ID,
		ContentType: img.ContentType,
		Data:        img.Data,
		Width:       int32(img.Width),
		Height:      int32(img.Height),
		CreatedAt:   pgconv.TimeToPgtype(img.CreatedAt),
	}
}
