package commands

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/shared"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/commands/customer_mock.go -package=commandsmock

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address customer.Address
}

// ToDomain validates the input as a new customer. The id is replaced by the
// stored one when the email already exists.
func (in CustomerInput) ToDomain(now time.Time) (*customer.Customer, error) {
	email, err := customer.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(in.Name, email, in.Phone, in.Address, now)
}

type UpsertCustomerResult struct {
	Customer *customer.Customer
	Created  bool
}

type CustomerCommands interface {
	Upsert(ctx context.Context, input CustomerInput) (*UpsertCustomerResult, error)
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clock clock.Clock) CustomerCommands {
	return &customerCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *customerCommandsImpl) Upsert(ctx context.Context, input CustomerInput) (*UpsertCustomerResult, error) {
	candidate, err := input.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result UpsertCustomerResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, created, upsertErr := tx.Customers().Upsert(ctx, tx.DB(), candidate)
		if upsertErr != nil {
			return upsertErr
		}
		result = UpsertCustomerResult{Customer: stored, Created: created}
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "upsert customer", nil)
	}

	slog.Info("customer saved",
		"customer_id", result.Customer.ID().String(),
		"created", result.Created)
	return &result, nil
}
