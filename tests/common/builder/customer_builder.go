//go:build unit || e2e

package builder

import (
	"gear-rental/internal/domain/customer"
	reqdto "gear-rental/internal/handler/dto/request"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address customer.Address
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    uuid.New(),
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "+81-90-1234-5678",
		Address: customer.Address{
			Line1:      "1-2-3 Jingumae",
			City:       "Shibuya",
			Region:     "Tokyo",
			PostalCode: "150-0001",
			Country:    "JP",
		},
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(c.Name, email, c.Phone, c.Address, FixedNow)
}

func (c *CustomerBuilder) BuildInfra() dbq.Customers {
	return dbq.Customers{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		AddressLine1: c.Address.Line1,
		AddressLine2: c.Address.Line2,
		City:         c.Address.City,
		Region:       c.Address.Region,
		PostalCode:   c.Address.PostalCode,
		Country:      c.Address.Country,
		CreatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (c *CustomerBuilder) BuildInput() commands.CustomerInput {
	return commands.CustomerInput{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func (c *CustomerBuilder) BuildDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		AddressLine1: c.Address.Line1,
		AddressLine2: c.Address.Line2,
		City:         c.Address.City,
		Region:       c.Address.Region,
		PostalCode:   c.Address.PostalCode,
		Country:      c.Address.Country,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	c.Email = email
	return c
}

func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}
