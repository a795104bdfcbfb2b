package verification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidIDType     = errors.New("invalid id type")
	ErrIDNumberRequired  = errors.New("id number is required")
	ErrIDNumberTooLong   = errors.New("id number must be at most 64 characters")
	ErrSignatureRequired = errors.New("signature image is required")
	ErrRentalRequired    = errors.New("rental is required")
)

type IDType string

const (
	IDTypeDriversLicense IDType = "drivers_license"
	IDTypePassport       IDType = "passport"
	IDTypeNationalID     IDType = "national_id"
	IDTypeOther          IDType = "other"
)

func (t IDType) IsValid() bool {
	switch t {
	case IDTypeDriversLicense, IDTypePassport, IDTypeNationalID, IDTypeOther:
		return true
	default:
		return false
	}
}

func NewIDType(s string) (IDType, error) {
	t := IDType(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", ErrInvalidIDType
	}
	return t, nil
}

const maxIDNumberLength = 64

// Verification is captured once at pickup and never changed afterwards.
type Verification struct {
	id           uuid.UUID
	rentalID     uuid.UUID
	idType       IDType
	idNumber     string
	signatureKey uuid.UUID
	createdAt    time.Time
}

func NewVerification(rentalID uuid.UUID, idType IDType, idNumber string, signatureKey uuid.UUID, now time.Time) (*Verification, error) {
	if rentalID == uuid.Nil {
		return nil, ErrRentalRequired
	}
	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return nil, ErrIDNumberRequired
	}
	if len(idNumber) > maxIDNumberLength {
		return nil, ErrIDNumberTooLong
	}
	if signatureKey == uuid.Nil {
		return nil, ErrSignatureRequired
	}
	return &Verification{
		id:           uuid.New(),
		rentalID:     rentalID,
		idType:       idType,
		idNumber:     idNumber,
		signatureKey: signatureKey,
		createdAt:    now,
	}, nil
}

// MaskIDNumber keeps the last four characters visible.
func MaskIDNumber(n string) string {
	if len(n) <= 4 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}

func (v *Verification) ID() uuid.UUID           { return v.id }
func (v *Verification) RentalID() uuid.UUID     { return v.rentalID }
func (v *Verification) IDType() IDType          { return v.idType }
func (v *Verification) IDNumber() string        { return v.idNumber }
func (v *Verification) SignatureKey() uuid.UUID { return v.signatureKey }
func (v *Verification) CreatedAt() time.Time    { return v.createdAt }

// SignatureImage is the normalized signature stored alongside a verification.
type SignatureImage struct {
	ID          uuid.UUID
	ContentType string
	Data        []byte
	Width       int
	Height      int
	CreatedAt   time.Time
}

func NewSignatureImage(contentType string, data []byte, width, height int, now time.Time) (*SignatureImage, error) {
	if len(data) == 0 {
		return nil, ErrSignatureRequired
	}
	return &SignatureImage{
		ID:          uuid.New(),
		ContentType: contentType,
		Data:        data,
		Width:       width,
		Height:      height,
		CreatedAt:   now,
	}, nil
}

func ReconstructVerification(id, rentalID uuid.UUID, idType IDType, idNumber string, signatureKey uuid.UUID, createdAt time.Time) *Verification {
	return &Verification{
		id:           id,
		rentalID:     rentalID,
		idType:       idType,
		idNumber:     idNumber,
		signatureKey: signatureKey,
		createdAt:    createdAt,
	}
}
