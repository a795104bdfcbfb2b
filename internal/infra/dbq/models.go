package dbq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Customers struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	AddressLine1 string             `json:"address_line1"`
	AddressLine2 string             `json:"address_line2"`
	City         string             `json:"city"`
	Region       string             `json:"region"`
	PostalCode   string             `json:"postal_code"`
	Country      string             `json:"country"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Equipment struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Quantity  int32              `json:"quantity"`
	Status    string             `json:"status"`
	Active    bool               `json:"active"`
	RateTiers []byte             `json:"rate_tiers"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Rentals struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	StartAt    pgtype.Timestamptz `json:"start_at"`
	EndAt      pgtype.Timestamptz `json:"end_at"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"total_cents"`
	VoidCents  pgtype.Int8        `json:"void_cents"`
	Notes      string             `json:"notes"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type RentalEquipment struct {
	RentalID    uuid.UUID          `json:"rental_id"`
	EquipmentID uuid.UUID          `json:"equipment_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type RentalCancellations struct {
	ID          uuid.UUID          `json:"id"`
	RentalID    uuid.UUID          `json:"rental_id"`
	VoidCents   int64              `json:"void_cents"`
	Reason      string             `json:"reason"`
	CancelledBy pgtype.UUID        `json:"cancelled_by"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type SignatureImages struct {
	ID          uuid.UUID          `json:"id"`
	ContentType string             `json:"content_type"`
	Data        []byte             `json:"data"`
	Width       int32              `json:"width"`
	Height      int32              `json:"height"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Verifications struct {
	ID               uuid.UUID          `json:"id"`
	RentalID         uuid.UUID          `json:"rental_id"`
	IDType           string             `json:"id_type"`
	IDNumber         string             `json:"id_number"`
	SignatureImageID uuid.UUID          `json:"signature_image_id"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}
