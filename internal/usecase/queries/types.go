package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RateTierView struct {
	Label      string `json:"label"`
	Days       int    `json:"days"`
	PriceCents int64  `json:"price_cents"`
}

// EquipmentView carries the stored (manual) status and the status derived for today.
type EquipmentView struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Quantity     int            `json:"quantity"`
	Status       string         `json:"status"`
	ManualStatus string         `json:"manual_status"`
	Active       bool           `json:"active"`
	RateTiers    []RateTierView `json:"rate_tiers"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type AvailabilityView struct {
	EquipmentID          uuid.UUID   `json:"equipment_id"`
	Start                time.Time   `json:"start"`
	End                  time.Time   `json:"end"`
	Available            bool        `json:"available"`
	ConflictingRentalIDs []uuid.UUID `json:"conflicting_rental_ids,omitempty"`
	QuoteCents           int64       `json:"quote_cents"`
}

type RentalEquipmentView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// RentalView is filled with the stored status by the read store. Queries replace
// it with the derived status, or set IntegrityError when the record cannot be derived.
type RentalView struct {
	ID             uuid.UUID             `json:"id"`
	CustomerID     uuid.UUID             `json:"customer_id"`
	CustomerName   string                `json:"customer_name,omitempty"`
	CustomerEmail  string                `json:"customer_email,omitempty"`
	Start          time.Time             `json:"start"`
	End            time.Time             `json:"end"`
	Status         string                `json:"status"`
	TotalCents     int64                 `json:"total_price_cents"`
	VoidCents      *int64                `json:"void_amount_cents,omitempty"`
	Notes          string                `json:"notes"`
	Equipment      []RentalEquipmentView `json:"equipment"`
	IntegrityError string                `json:"integrity_error,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type CustomerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `json:"city"`
	Region       string    `json:"region"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VerificationView never exposes the full ID number.
type VerificationView struct {
	ID               uuid.UUID `json:"id"`
	RentalID         uuid.UUID `json:"rental_id"`
	IDType           string    `json:"id_type"`
	IDNumberMasked   string    `json:"id_number_masked"`
	SignatureImageID uuid.UUID `json:"signature_image_id"`
	CreatedAt        time.Time `json:"created_at"`
}

type SignatureView struct {
	ID          uuid.UUID
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

type EquipmentFilter struct {
	IncludeInactive bool
	Type            string
}

type RentalFilter struct {
	Statuses   []string
	CustomerID *uuid.UUID
	Limit      int
	Offset     int
}

type CustomerFilter struct {
	Search string
	Limit  int
	Offset int
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ValidateLimit clamps a client supplied page size.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
