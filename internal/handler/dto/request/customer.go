package request

import (
	"strings"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/usecase/commands"
)

// CustomerRequest is matched to an existing customer by email.
type CustomerRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"max=30"`
	AddressLine1 string `json:"address_line1" binding:"max=200"`
	AddressLine2 string `json:"address_line2" binding:"max=200"`
	City         string `json:"city" binding:"max=100"`
	Region       string `json:"region" binding:"max=100"`
	PostalCode   string `json:"postal_code" binding:"max=20"`
	Country      string `json:"country" binding:"max=100"`
}

func (r CustomerRequest) ToInput() commands.CustomerInput {
	return commands.CustomerInput{
		Name:  strings.TrimSpace(r.Name),
		Email: r.Email,
		Phone: r.Phone,
		Address: customer.Address{
			Line1:      strings.TrimSpace(r.AddressLine1),
			Line2:      strings.TrimSpace(r.AddressLine2),
			City:       strings.TrimSpace(r.City),
			Region:     strings.TrimSpace(r.Region),
			PostalCode: strings.TrimSpace(r.PostalCode),
			Country:    strings.TrimSpace(r.Country),
		},
	}
}
