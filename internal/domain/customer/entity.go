package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("customer name is required")
	ErrNameTooLong  = errors.New("customer name must be at most 200 characters")
)

const maxNameLength = 200

// Customer is unique by email. Saving a customer whose email already exists
// updates that record instead of creating a second one.
type Customer struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     string
	address   Address
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name string, email Email, phone string, address Address, now time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	p, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	return &Customer{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     p,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name string, email Email, phone string, address Address, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() Address     { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
