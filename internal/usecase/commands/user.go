package commands

import (
	"context"
	"log/slog"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/password"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

// UserCommands provisions staff accounts. It is used by the CLI only.
type UserCommands interface {
	Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *userCommandsImpl) Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	staff := user.NewUser(email, hash, role, u.clock.Now())
	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, tx.DB(), staff)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateUser)
		}
		return uuid.Nil, translateRepoErr(err, "create user", nil)
	}

	slog.Info("staff user created", "user_id", id.String(), "role", role.String())
	return id, nil
}
