package converter

import (
	"gear-rental/internal/domain/customer"
	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/pgconv"
)

func CustomerToInfra(c *customer.Customer) dbq.UpsertCustomerParams {
	addr := c.Address()
	return dbq.UpsertCustomerParams{
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
		Now:          pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CustomerFromInfra(row dbq.Customers) (*customer.Customer, error) {
	email, err := customer.NewEmail(row.Email)
	if err != nil {
		return nil, errs.NewDataIntegrityError("customer", row.ID, "email", err.Error())
	}
	return customer.ReconstructCustomer(
		row.ID,
		row.Name,
		email,
		row.Phone,
		customer.Address{
			Line1:      row.AddressLine1,
			Line2:      row.AddressLine2,
			City:       row.City,
			Region:     row.Region,
			PostalCode: row.PostalCode,
			Country:    row.Country,
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
