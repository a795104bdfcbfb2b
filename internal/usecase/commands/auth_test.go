//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/jwt"
	"gear-rental/internal/pkg/password"
	"gear-rental/internal/usecase/commands"
	"gear-rental/tests/common/builder"
	queriesmock "gear-rental/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	setup := func(t *testing.T) (*uowFixture, *queriesmock.MockUserReadStore, commands.AuthCommands) {
		f := newUoWFixture(t)
		readStore := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		return f, readStore, commands.NewAuthCommands(f.uow, readStore, jwtService)
	}

	t.Run("success: issues a token carrying the role", func(t *testing.T) {
		f, readStore, sut := setup(t)
		staff := builder.NewUserBuilder().WithEmail("staff@example.com").WithRole("operator")
		creds, err := builder.NewAuthBuilder().BuildCredentials()
		require.NoError(t, err)

		readStore.EXPECT().FindByEmail(gomock.Any(), "staff@example.com").Return(staff.BuildReadModel(), hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), staff.ID).Return(nil)

		result, err := sut.Login(ctx, creds)

		require.NoError(t, err)
		assert.Equal(t, staff.ID, result.UserID)
		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("success: last login failure does not block login", func(t *testing.T) {
		f, readStore, sut := setup(t)
		staff := builder.NewUserBuilder().WithEmail("staff@example.com")
		creds, err := builder.NewAuthBuilder().BuildCredentials()
		require.NoError(t, err)

		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(staff.BuildReadModel(), hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), staff.ID).Return(errors.New("timeout"))

		_, err = sut.Login(ctx, creds)

		assert.NoError(t, err)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, readStore, sut := setup(t)
		creds, err := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Password = "wrong-password" }).BuildCredentials()
		require.NoError(t, err)
		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().BuildReadModel(), hash, nil)

		_, err = sut.Login(ctx, creds)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: unknown email looks like a wrong password", func(t *testing.T) {
		_, readStore, sut := setup(t)
		creds, err := builder.NewAuthBuilder().BuildCredentials()
		require.NoError(t, err)
		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("not found"))

		_, err = sut.Login(ctx, creds)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: inactive user with a wrong password is not revealed", func(t *testing.T) {
		_, readStore, sut := setup(t)
		creds, err := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Password = "wrong-password" }).BuildCredentials()
		require.NoError(t, err)
		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), hash, nil)

		_, err = sut.Login(ctx, creds)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: store failure is not reported as bad credentials", func(t *testing.T) {
		_, readStore, sut := setup(t)
		creds, err := builder.NewAuthBuilder().BuildCredentials()
		require.NoError(t, err)
		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("failed to find user by email", errors.New("conn refused"), infra.KindDBFailure))

		_, err = sut.Login(ctx, creds)

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
		assert.False(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: inactive user", func(t *testing.T) {
		_, readStore, sut := setup(t)
		creds, err := builder.NewAuthBuilder().BuildCredentials()
		require.NoError(t, err)
		readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), hash, nil)

		_, err = sut.Login(ctx, creds)

		assert.True(t, errs.Is(err, commands.ErrUserInactive))
	})
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewUserCommands(f.uow, f.clock)
		id := builder.NewUserBuilder().ID
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(id, nil)

		got, err := sut.Create(ctx, commands.CreateUserInput{Email: "ops@example.com", Password: "password123", Role: "operator"})

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewUserCommands(f.uow, f.clock)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().ID, errDuplicate())

		_, err := sut.Create(ctx, commands.CreateUserInput{Email: "ops@example.com", Password: "password123", Role: "operator"})

		assert.True(t, errs.Is(err, commands.ErrDuplicateUser))
	})

	t.Run("error: unknown role", func(t *testing.T) {
		f := newUoWFixture(t)
		sut := commands.NewUserCommands(f.uow, f.clock)

		_, err := sut.Create(ctx, commands.CreateUserInput{Email: "ops@example.com", Password: "password123", Role: "root"})

		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})
}
