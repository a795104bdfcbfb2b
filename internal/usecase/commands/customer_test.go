//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerCommands_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("success: existing email updates the stored customer", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewCustomerCommands(f.uow, f.clock)
		stored := storedCustomer(t)
		input := builder.NewCustomerBuilder().WithEmail("  Jane.Doe@Example.com ").BuildInput()

		f.customers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *customer.Customer) (*customer.Customer, bool, error) {
				assert.Equal(t, "jane.doe@example.com", c.Email().Value())
				return stored, false, nil
			})

		result, err := sut.Upsert(ctx, input)

		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, stored.ID(), result.Customer.ID())
	})

	t.Run("error: invalid email", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewCustomerCommands(f.uow, f.clock)

		_, err := sut.Upsert(ctx, builder.NewCustomerBuilder().WithEmail("not-an-email").BuildInput())

		assert.True(t, errs.Is(err, customer.ErrInvalidEmail))
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("error: store failure", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewCustomerCommands(f.uow, f.clock)
		f.customers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, false, infra.WrapRepoErr("failed to upsert customer", errors.New("broken pipe")))

		_, err := sut.Upsert(ctx, builder.NewCustomerBuilder().BuildInput())

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func errDuplicate() error {
	return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
}
