package response

import (
	"time"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
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

func FromCustomer(c *customer.Customer) *CustomerResponse {
	addr := c.Address()
	return &CustomerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email().Value(),
		Phone:        c.Phone(),
		AddressLine1: addr.Line1,
		AddressLine2: addr.Line2,
		City:         addr.City,
		Region:       addr.Region,
		PostalCode:   addr.PostalCode,
		Country:      addr.Country,
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		City:         v.City,
		Region:       v.Region,
		PostalCode:   v.PostalCode,
		Country:      v.Country,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCustomerView(v))
	}
	return out
}

type UpsertCustomerResponse struct {
	Customer *CustomerResponse `json:"customer"`
	Created  bool              `json:"created"`
}
